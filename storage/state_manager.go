// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// StateManager routes fee accounting through the native coin's ledger
// entries, so fee payment obeys the same conservation rules as every other
// token operation.
type StateManager struct{}

func (*StateManager) HeightKey() []byte {
	return []byte{heightPrefix}
}

func (*StateManager) TimestampKey() []byte {
	return []byte{timestampPrefix}
}

func (*StateManager) FeeKey() []byte {
	return []byte{feePrefix}
}

func (*StateManager) SponsorStateKeys(addr codec.Address) state.Keys {
	return state.Keys{
		string(TokenAccountBalanceKey(CoinAddress, addr)): state.Read | state.Write,
	}
}

func (*StateManager) CanDeduct(
	ctx context.Context,
	addr codec.Address,
	im state.Immutable,
	amount uint64,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, im, CoinAddress, addr)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInvalidBalance
	}
	return nil
}

func (*StateManager) Deduct(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, mu, CoinAddress, addr)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInvalidBalance
	}
	return SetTokenAccountBalance(ctx, mu, CoinAddress, addr, balance-amount)
}

func (*StateManager) AddBalance(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
	_ bool,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, mu, CoinAddress, addr)
	if err != nil {
		return err
	}
	newBalance, err := smath.Add(balance, amount)
	if err != nil {
		return err
	}
	return SetTokenAccountBalance(ctx, mu, CoinAddress, addr, newBalance)
}

func (*StateManager) GetBalance(
	ctx context.Context,
	addr codec.Address,
	im state.Immutable,
) (uint64, error) {
	return GetTokenAccountBalanceNoController(ctx, im, CoinAddress, addr)
}
