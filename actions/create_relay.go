// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/relayvm/consts"
	"github.com/ava-labs/relayvm/storage"
)

var (
	_ codec.Typed  = (*CreateRelayResult)(nil)
	_ chain.Action = (*CreateRelay)(nil)
)

type CreateRelayResult struct {
	RelayAddress codec.Address `serialize:"true" json:"relayAddress"`
}

func (*CreateRelayResult) GetTypeID() uint8 {
	return consts.CreateRelayID
}

// CreateRelay binds a relay token to two connector currencies and opens the
// pool account that mediates conversions between them. The connector
// weights are fixed-point fractions over [Base] and must sum to it. The
// pool starts with a nonzero virtual relay supply and balance; both sides
// of the curve divide by supply, so a pool created empty could never
// convert.
type CreateRelay struct {
	RelayToken codec.Address `serialize:"true" json:"relayToken"`
	TokenX     codec.Address `serialize:"true" json:"tokenX"`
	TokenY     codec.Address `serialize:"true" json:"tokenY"`
	WeightX    uint64        `serialize:"true" json:"weightX"`
	WeightY    uint64        `serialize:"true" json:"weightY"`
	Base       uint64        `serialize:"true" json:"base"`

	InitialSupply  uint64 `serialize:"true" json:"initialSupply"`
	InitialBalance uint64 `serialize:"true" json:"initialBalance"`
}

// ComputeUnits implements chain.Action.
func (*CreateRelay) ComputeUnits(chain.Rules) uint64 {
	return CreateRelayComputeUnits
}

// Execute implements chain.Action.
func (c *CreateRelay) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, _ ids.ID) (codec.Typed, error) {
	// Check invariants
	if c.RelayToken == c.TokenX || c.RelayToken == c.TokenY || c.TokenX == c.TokenY {
		return nil, ErrOutputIdenticalTokens
	}
	if c.WeightX == 0 || c.WeightY == 0 || c.Base == 0 {
		return nil, ErrOutputInvalidWeights
	}
	weightSum, err := smath.Add(c.WeightX, c.WeightY)
	if err != nil || weightSum != c.Base {
		return nil, ErrOutputInvalidWeights
	}
	if c.InitialSupply == 0 {
		return nil, ErrOutputSupplyZero
	}

	// Check that all three currencies exist
	if _, _, _, _, _, err := storage.GetTokenInfoNoController(ctx, mu, c.RelayToken); err != nil {
		return nil, ErrOutputRelayTokenDoesNotExist
	}
	if _, _, _, _, _, err := storage.GetTokenInfoNoController(ctx, mu, c.TokenX); err != nil {
		return nil, ErrOutputTokenXDoesNotExist
	}
	if _, _, _, _, _, err := storage.GetTokenInfoNoController(ctx, mu, c.TokenY); err != nil {
		return nil, ErrOutputTokenYDoesNotExist
	}

	// Continue only if the relay doesn't exist
	relayAddress := storage.RelayAddress(c.RelayToken, c.TokenX, c.TokenY)
	if _, err := mu.GetValue(ctx, storage.RelayKey(relayAddress)); err == nil {
		return nil, ErrOutputRelayAlreadyExists
	}

	if err := storage.SetRelay(ctx, mu, relayAddress, c.RelayToken, c.TokenX, c.WeightX, c.TokenY, c.WeightY, c.Base, c.InitialSupply, c.InitialBalance); err != nil {
		return nil, err
	}

	return &CreateRelayResult{
		RelayAddress: relayAddress,
	}, nil
}

// GetTypeID implements chain.Action.
func (*CreateRelay) GetTypeID() uint8 {
	return consts.CreateRelayID
}

// StateKeys implements chain.Action.
func (c *CreateRelay) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.RelayKey(storage.RelayAddress(c.RelayToken, c.TokenX, c.TokenY))): state.All,
		string(storage.TokenInfoKey(c.RelayToken)):                                       state.Read,
		string(storage.TokenInfoKey(c.TokenX)):                                           state.Read,
		string(storage.TokenInfoKey(c.TokenY)):                                           state.Read,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*CreateRelay) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.RelayChunks, storage.TokenInfoChunks, storage.TokenInfoChunks, storage.TokenInfoChunks}
}

// ValidRange implements chain.Action.
func (*CreateRelay) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}
