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
	"github.com/ava-labs/relayvm/relay"
	"github.com/ava-labs/relayvm/storage"
)

const MaxMemoSize = 256

var (
	_ codec.Typed  = (*TransferTokenResult)(nil)
	_ chain.Action = (*TransferToken)(nil)
)

type TransferTokenResult struct {
	SenderBalance   uint64 `serialize:"true" json:"senderBalance"`
	ReceiverBalance uint64 `serialize:"true" json:"receiverBalance"`

	// Set when the transfer settled a conversion.
	OutputToken codec.Address `serialize:"true" json:"outputToken"`
	OutputValue uint64        `serialize:"true" json:"outputValue"`
}

func (*TransferTokenResult) GetTypeID() uint8 {
	return consts.TransferTokenID
}

// TransferToken moves [Value] of [Token] from the actor to [To]. When [To]
// is a relay pool, the transfer doubles as a conversion order: [Memo] must
// carry a packed relay.Request and the relay settles the output back to the
// actor within the same invocation.
type TransferToken struct {
	To    codec.Address `serialize:"true" json:"to"`
	Token codec.Address `serialize:"true" json:"token"`
	Value uint64        `serialize:"true" json:"value"`

	// Optional message to accompany the transfer; carries the conversion
	// request when transferring into a relay pool.
	Memo []byte `serialize:"true" json:"memo"`

	// The three currencies bound to the destination relay. Only consulted by
	// StateKeys(), which must enumerate every balance a conversion may touch
	// without reading state.
	RelayToken codec.Address `serialize:"true" json:"relayToken"`
	TokenX     codec.Address `serialize:"true" json:"tokenX"`
	TokenY     codec.Address `serialize:"true" json:"tokenY"`
}

// ComputeUnits implements chain.Action.
func (*TransferToken) ComputeUnits(chain.Rules) uint64 {
	return TransferTokenComputeUnits
}

// Execute implements chain.Action.
func (t *TransferToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	// Check invariants
	if t.Value == 0 {
		return nil, ErrOutputTransferValueZero
	}
	if len(t.Memo) > MaxMemoSize {
		return nil, ErrOutputMemoTooLarge
	}

	// Check that token exists
	if _, _, _, _, _, err := storage.GetTokenInfoNoController(ctx, mu, t.Token); err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	// Check that balance is sufficient
	balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.Token, actor)
	if err != nil {
		return nil, err
	}
	if balance < t.Value {
		return nil, ErrOutputInsufficientTokenBalance
	}

	if err := storage.TransferToken(ctx, mu, t.Token, actor, t.To, t.Value); err != nil {
		return nil, err
	}

	result := &TransferTokenResult{}

	// Notify the relay if it is a party to this transfer. The ledger
	// mutation above has already landed, so the pool's balance reflects
	// this credit by the time the dispatcher prices it.
	if relay.IsRelayAddress(t.To) || relay.IsRelayAddress(actor) {
		out, err := relay.OnTransfer(ctx, mu, &relay.TransferEvent{
			Token: t.Token,
			From:  actor,
			To:    t.To,
			Value: t.Value,
			Memo:  t.Memo,
		})
		if err != nil {
			return nil, err
		}
		if out != nil {
			result.OutputToken = out.Token
			result.OutputValue = out.Value
		}
	}

	senderBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.Token, actor)
	if err != nil {
		return nil, err
	}
	receiverBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, t.Token, t.To)
	if err != nil {
		return nil, err
	}
	result.SenderBalance = senderBalance
	result.ReceiverBalance = receiverBalance

	return result, nil
}

// GetTypeID implements chain.Action.
func (*TransferToken) GetTypeID() uint8 {
	return consts.TransferTokenID
}

// StateKeys implements chain.Action.
func (t *TransferToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	keys := state.Keys{
		string(storage.TokenInfoKey(t.Token)):                  state.All,
		string(storage.TokenAccountBalanceKey(t.Token, actor)): state.All,
		string(storage.TokenAccountBalanceKey(t.Token, t.To)):  state.All,
	}
	if relay.IsRelayAddress(t.To) {
		keys.Add(string(storage.RelayKey(t.To)), state.All)
		for _, token := range []codec.Address{t.RelayToken, t.TokenX, t.TokenY} {
			keys.Add(string(storage.TokenAccountBalanceKey(token, t.To)), state.All)
			keys.Add(string(storage.TokenAccountBalanceKey(token, actor)), state.All)
		}
	}
	return keys
}

// StateKeysMaxChunks implements chain.Action.
func (*TransferToken) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.TokenInfoChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.RelayChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
	}
}

// ValidRange implements chain.Action.
func (*TransferToken) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}
