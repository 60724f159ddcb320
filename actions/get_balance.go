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
	_ codec.Typed  = (*GetBalanceResult)(nil)
	_ chain.Action = (*GetBalance)(nil)
)

type GetBalanceResult struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (*GetBalanceResult) GetTypeID() uint8 {
	return consts.GetBalanceID
}

type GetBalance struct {
	Token   codec.Address `serialize:"true" json:"token"`
	Account codec.Address `serialize:"true" json:"account"`
}

func (*GetBalance) ComputeUnits(chain.Rules) uint64 {
	return GetBalanceComputeUnits
}

// Execute implements chain.Action.
func (g *GetBalance) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, _ ids.ID) (codec.Typed, error) {
	balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, g.Token, g.Account)
	if err != nil {
		return nil, err
	}
	return &GetBalanceResult{
		Balance: balance,
	}, nil
}

// GetTypeID implements chain.Action.
func (*GetBalance) GetTypeID() uint8 {
	return consts.GetBalanceID
}

// StateKeys implements chain.Action.
func (g *GetBalance) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenAccountBalanceKey(g.Token, g.Account)): state.Read,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*GetBalance) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenAccountBalanceChunks}
}

// ValidRange implements chain.Action.
func (*GetBalance) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}
