// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import "errors"

var (
	ErrMalformedRequest       = errors.New("malformed conversion request")
	ErrSelfConversion         = errors.New("cannot convert a currency to itself")
	ErrUnknownCurrency        = errors.New("currency is not bound to this relay")
	ErrSlippageExceeded       = errors.New("output is below the requested minimum return")
	ErrUnexpectedNotification = errors.New("received unexpected notification of transfer")
	ErrTokenMismatch          = errors.New("amounts are denominated in different tokens")
)
