// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/utils"

	hconsts "github.com/ava-labs/hypersdk/consts"

	"github.com/ava-labs/relayvm/consts"
)

func RelayKey(relayAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = relayPrefix
	copy(k[1:1+codec.AddressLen], relayAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], RelayChunks)
	return k
}

// RelayAddress derives the pool account for a relay instance. The pool
// account holds the connector reserves and the relay tokens it pays out.
func RelayAddress(relayToken codec.Address, tokenX codec.Address, tokenY codec.Address) codec.Address {
	v := make([]byte, codec.AddressLen+codec.AddressLen+codec.AddressLen)
	copy(v, relayToken[:])
	copy(v[codec.AddressLen:], tokenX[:])
	copy(v[codec.AddressLen+codec.AddressLen:], tokenY[:])
	id := utils.ToID(v)
	return codec.CreateAddress(consts.RelayID, id)
}

// SetRelay persists one relay pool record: the three bound currencies, the
// connector weights over [base], and the relay-denominated pool state
// ([supply] held outside the pool, [balance] redeemable by the pool).
func SetRelay(
	ctx context.Context,
	mu state.Mutable,
	relayAddress codec.Address,
	relayToken codec.Address,
	tokenX codec.Address,
	weightX uint64,
	tokenY codec.Address,
	weightY uint64,
	base uint64,
	supply uint64,
	balance uint64,
) error {
	k := RelayKey(relayAddress)
	v := make([]byte, codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen+hconsts.Uint64Len+hconsts.Uint64Len+hconsts.Uint64Len+hconsts.Uint64Len)
	// Inserting relayToken
	copy(v, relayToken[:])
	// Inserting tokenX
	copy(v[codec.AddressLen:], tokenX[:])
	// Inserting weightX
	binary.BigEndian.PutUint64(v[codec.AddressLen+codec.AddressLen:], weightX)
	// Inserting tokenY
	copy(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len:], tokenY[:])
	// Inserting weightY
	binary.BigEndian.PutUint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen:], weightY)
	// Inserting base
	binary.BigEndian.PutUint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen+hconsts.Uint64Len:], base)
	// Inserting supply
	binary.BigEndian.PutUint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen+hconsts.Uint64Len+hconsts.Uint64Len:], supply)
	// Inserting balance
	binary.BigEndian.PutUint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen+hconsts.Uint64Len+hconsts.Uint64Len+hconsts.Uint64Len:], balance)
	return mu.Insert(ctx, k, v)
}

func GetRelayNoController(
	ctx context.Context,
	mu state.Immutable,
	relayAddress codec.Address,
) (codec.Address, codec.Address, uint64, codec.Address, uint64, uint64, uint64, uint64, error) {
	k := RelayKey(relayAddress)
	v, err := mu.GetValue(ctx, k)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, codec.EmptyAddress, 0, 0, 0, 0, err
	}
	return innerGetRelay(v)
}

func GetRelayFromState(
	ctx context.Context,
	f ReadState,
	relayAddress codec.Address,
) (codec.Address, codec.Address, uint64, codec.Address, uint64, uint64, uint64, uint64, error) {
	k := RelayKey(relayAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return codec.EmptyAddress, codec.EmptyAddress, 0, codec.EmptyAddress, 0, 0, 0, 0, errs[0]
	}
	return innerGetRelay(values[0])
}

func innerGetRelay(
	v []byte,
) (codec.Address, codec.Address, uint64, codec.Address, uint64, uint64, uint64, uint64, error) {
	relayToken := codec.Address(v[:codec.AddressLen])
	tokenX := codec.Address(v[codec.AddressLen : codec.AddressLen+codec.AddressLen])
	weightX := binary.BigEndian.Uint64(v[codec.AddressLen+codec.AddressLen:])
	tokenY := codec.Address(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len : codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen])
	weightY := binary.BigEndian.Uint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen:])
	base := binary.BigEndian.Uint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen+hconsts.Uint64Len:])
	supply := binary.BigEndian.Uint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen+hconsts.Uint64Len+hconsts.Uint64Len:])
	balance := binary.BigEndian.Uint64(v[codec.AddressLen+codec.AddressLen+hconsts.Uint64Len+codec.AddressLen+hconsts.Uint64Len+hconsts.Uint64Len+hconsts.Uint64Len:])
	return relayToken, tokenX, weightX, tokenY, weightY, base, supply, balance, nil
}
