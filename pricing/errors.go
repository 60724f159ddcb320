// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var (
	ErrZeroInput  = errors.New("zero input")
	ErrWeightZero = errors.New("connector weight is zero")
	ErrSupplyZero = errors.New("relay supply is zero")
)
