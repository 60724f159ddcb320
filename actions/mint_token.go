// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/ava-labs/relayvm/consts"
	"github.com/ava-labs/relayvm/storage"
)

var (
	_ codec.Typed  = (*MintTokenResult)(nil)
	_ chain.Action = (*MintToken)(nil)
)

type MintTokenResult struct {
	TotalSupply uint64 `serialize:"true" json:"totalSupply"`
}

func (*MintTokenResult) GetTypeID() uint8 {
	return consts.MintTokenID
}

// MintToken issues new tokens. Only the token's issuing account may mint.
// Issuance is booked in two hops: supply grows and the issuer is credited,
// then the quantity moves issuer -> [To] as an internal transfer. The
// issuer's own balance is unchanged net of the two hops, which keeps the
// audit trail symmetric with ordinary transfers.
type MintToken struct {
	To    codec.Address `serialize:"true" json:"to"`
	Token codec.Address `serialize:"true" json:"token"`
	Value uint64        `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*MintToken) ComputeUnits(chain.Rules) uint64 {
	return MintTokenComputeUnits
}

// Execute implements chain.Action.
func (m *MintToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	// Check invariants
	if m.Value == 0 {
		return nil, ErrOutputMintValueZero
	}

	// Check that token exists and actor holds the issuing capability
	_, _, _, totalSupply, owner, err := storage.GetTokenInfoNoController(ctx, mu, m.Token)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	if actor != owner {
		return nil, ErrOutputTokenNotOwner
	}

	if err = storage.MintToken(ctx, mu, m.Token, actor, m.Value); err != nil {
		return nil, err
	}
	if err = storage.TransferToken(ctx, mu, m.Token, actor, m.To, m.Value); err != nil {
		return nil, err
	}

	return &MintTokenResult{
		TotalSupply: totalSupply + m.Value,
	}, nil
}

// GetTypeID implements chain.Action.
func (*MintToken) GetTypeID() uint8 {
	return consts.MintTokenID
}

// StateKeys implements chain.Action.
func (m *MintToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(m.Token)):                  state.All,
		string(storage.TokenAccountBalanceKey(m.Token, actor)): state.All,
		string(storage.TokenAccountBalanceKey(m.Token, m.To)):  state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*MintToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenInfoChunks, storage.TokenAccountBalanceChunks, storage.TokenAccountBalanceChunks}
}

// ValidRange implements chain.Action.
func (*MintToken) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}
