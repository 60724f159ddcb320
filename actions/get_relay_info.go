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
	_ codec.Typed  = (*GetRelayInfoResult)(nil)
	_ chain.Action = (*GetRelayInfo)(nil)
)

type GetRelayInfoResult struct {
	RelayToken codec.Address `serialize:"true" json:"relayToken"`
	TokenX     codec.Address `serialize:"true" json:"tokenX"`
	WeightX    uint64        `serialize:"true" json:"weightX"`
	TokenY     codec.Address `serialize:"true" json:"tokenY"`
	WeightY    uint64        `serialize:"true" json:"weightY"`
	Base       uint64        `serialize:"true" json:"base"`
	Supply     uint64        `serialize:"true" json:"supply"`
	Balance    uint64        `serialize:"true" json:"balance"`
}

func (*GetRelayInfoResult) GetTypeID() uint8 {
	return consts.GetRelayInfoID
}

type GetRelayInfo struct {
	Relay codec.Address `serialize:"true" json:"relay"`
}

func (*GetRelayInfo) ComputeUnits(chain.Rules) uint64 {
	return GetRelayInfoComputeUnits
}

// Execute implements chain.Action.
func (g *GetRelayInfo) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, _ codec.Address, _ ids.ID) (codec.Typed, error) {
	relayToken, tokenX, weightX, tokenY, weightY, base, supply, balance, err := storage.GetRelayNoController(ctx, mu, g.Relay)
	if err != nil {
		return nil, ErrOutputRelayDoesNotExist
	}
	return &GetRelayInfoResult{
		RelayToken: relayToken,
		TokenX:     tokenX,
		WeightX:    weightX,
		TokenY:     tokenY,
		WeightY:    weightY,
		Base:       base,
		Supply:     supply,
		Balance:    balance,
	}, nil
}

// GetTypeID implements chain.Action.
func (*GetRelayInfo) GetTypeID() uint8 {
	return consts.GetRelayInfoID
}

// StateKeys implements chain.Action.
func (g *GetRelayInfo) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.RelayKey(g.Relay)): state.Read,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*GetRelayInfo) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.RelayChunks}
}

// ValidRange implements chain.Action.
func (*GetRelayInfo) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}
