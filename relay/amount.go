// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"github.com/ava-labs/hypersdk/codec"
)

// Amount is a quantity tagged with the token it is denominated in.
// Quantities of different tokens are never comparable; mixing them is a
// programming error surfaced as ErrTokenMismatch rather than a silent
// cross-currency comparison.
type Amount struct {
	Token codec.Address
	Value uint64
}

func NewAmount(token codec.Address, value uint64) Amount {
	return Amount{Token: token, Value: value}
}

func (a Amount) Less(b Amount) (bool, error) {
	if a.Token != b.Token {
		return false, ErrTokenMismatch
	}
	return a.Value < b.Value, nil
}
