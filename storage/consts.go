// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/hypersdk/codec"

	"github.com/ava-labs/relayvm/consts"
)

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Required for RelayVM
	tokenInfoPrefix
	tokenAccountBalancePrefix
	relayPrefix
)

// Chunks
const (
	TokenInfoChunks           uint16 = 2
	TokenAccountBalanceChunks uint16 = 1
	RelayChunks               uint16 = 1
)

// Related to action invariants
const (
	MaxTokenNameSize     = 64
	MaxTokenSymbolSize   = 8
	MaxTokenMetadataSize = 256
)

// Data for the native RelayVM coin (used for fee payment)
const (
	Symbol   = "RVM"
	Metadata = "A bonding-curve relay VM implementation"
)

var CoinAddress codec.Address

func init() {
	CoinAddress = TokenAddress([]byte(consts.Name), []byte(Symbol), []byte(Metadata))
}
