// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/ava-labs/relayvm/consts"
	"github.com/ava-labs/relayvm/pricing"
	"github.com/ava-labs/relayvm/storage"
)

// TransferEvent is the notification handed to the relay after the token
// ledger has applied a transfer. Balances for [Token] already reflect the
// debit of [From] and the credit of [To] when the relay observes the event.
type TransferEvent struct {
	Token codec.Address
	From  codec.Address
	To    codec.Address
	Value uint64
	Memo  []byte
}

// IsRelayAddress reports whether [addr] was derived for a relay pool.
func IsRelayAddress(addr codec.Address) bool {
	return addr[0] == consts.RelayID
}

// OnTransfer routes a transfer notification touching a relay pool. A
// transfer into the pool starts a conversion; a transfer out of the pool is
// the relay's own settlement leg and is already fully processed; anything
// else means the relay was notified of a transfer it is not a party to.
//
// On success the returned Amount is the settled output. Any error aborts the
// invocation with no observable state change: pool state is priced against a
// working copy and only persisted after the slippage check, and the
// transaction layer discards every ledger write when an error surfaces.
func OnTransfer(ctx context.Context, mu state.Mutable, ev *TransferEvent) (*Amount, error) {
	switch {
	case IsRelayAddress(ev.To):
		return convert(ctx, mu, ev)
	case IsRelayAddress(ev.From):
		return nil, nil
	default:
		return nil, ErrUnexpectedNotification
	}
}

func convert(ctx context.Context, mu state.Mutable, ev *TransferEvent) (*Amount, error) {
	req, err := UnmarshalRequest(ev.Memo)
	if err != nil {
		return nil, err
	}
	if req.TargetToken == ev.Token {
		return nil, ErrSelfConversion
	}

	pool := ev.To
	relayToken, tokenX, weightX, tokenY, weightY, base, supply, balance, err := storage.GetRelayNoController(ctx, mu, pool)
	if err != nil {
		return nil, err
	}

	// Working copy; persisted only after the slippage check passes.
	st := pricing.State{Supply: supply, Balance: balance}

	var (
		outToken codec.Address
		out      uint64
	)
	switch ev.Token {
	case relayToken:
		// Relay tokens in, one connector currency out.
		var conn pricing.Connector
		switch req.TargetToken {
		case tokenX:
			conn = pricing.Connector{Weight: weightX, Base: base}
		case tokenY:
			conn = pricing.Connector{Weight: weightY, Base: base}
		default:
			return nil, ErrUnknownCurrency
		}
		toBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, req.TargetToken, pool)
		if err != nil {
			return nil, err
		}
		out, err = conn.ConvertFromRelay(ev.Value, toBalance, &st)
		if err != nil {
			return nil, err
		}
		outToken = req.TargetToken
	case tokenX, tokenY:
		srcConn := pricing.Connector{Weight: weightX, Base: base}
		otherToken := tokenY
		otherConn := pricing.Connector{Weight: weightY, Base: base}
		if ev.Token == tokenY {
			srcConn, otherConn = otherConn, srcConn
			otherToken = tokenX
		}

		// The pool's balance of the source connector already includes
		// this transfer's credit.
		srcBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, ev.Token, pool)
		if err != nil {
			return nil, err
		}
		relayOut, err := srcConn.ConvertToRelay(ev.Value, srcBalance, &st)
		if err != nil {
			return nil, err
		}

		switch req.TargetToken {
		case relayToken:
			outToken = relayToken
			out = relayOut
		case otherToken:
			// Two-hop path: chain the intermediate relay amount into
			// the other connector.
			otherBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, otherToken, pool)
			if err != nil {
				return nil, err
			}
			out, err = otherConn.ConvertFromRelay(relayOut, otherBalance, &st)
			if err != nil {
				return nil, err
			}
			outToken = otherToken
		default:
			return nil, ErrUnknownCurrency
		}
	default:
		return nil, ErrUnknownCurrency
	}

	final := NewAmount(outToken, out)
	below, err := final.Less(NewAmount(req.TargetToken, req.MinReturn))
	if err != nil {
		return nil, err
	}
	if below {
		return nil, ErrSlippageExceeded
	}

	if err := storage.SetRelay(ctx, mu, pool, relayToken, tokenX, weightX, tokenY, weightY, base, st.Supply, st.Balance); err != nil {
		return nil, err
	}
	// Settlement leg: pay the original sender from the pool's reserves.
	if err := storage.TransferToken(ctx, mu, outToken, pool, ev.From, out); err != nil {
		return nil, err
	}
	return &final, nil
}
