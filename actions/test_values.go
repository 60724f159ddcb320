// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"strings"

	"github.com/ava-labs/relayvm/storage"
)

const (
	RelayTokenName     = "Relay Note"
	RelayTokenSymbol   = "RLY"
	RelayTokenMetadata = "The smart currency mediating every conversion" // #nosec G101

	TokenXName     = "Karma"
	TokenXSymbol   = "KRM"
	TokenXMetadata = "First connector currency" // #nosec G101

	TokenYName     = "Vigor"
	TokenYSymbol   = "VGR"
	TokenYMetadata = "Second connector currency" // #nosec G101

	TooLargeTokenSymbol = "RELAYNOTE"

	TokenMintValue     = 1
	TokenBurnValue     = 1
	TokenTransferValue = 1

	RelayWeight         = 500_000
	RelayBase           = 1_000_000
	RelayInitialSupply  = 2_000
	RelayInitialBalance = 2_000
)

var (
	TooLargeTokenName     = strings.Repeat("n", storage.MaxTokenNameSize+1)
	TooLargeTokenMetadata = strings.Repeat("m", storage.MaxTokenMetadataSize+1)

	relayTokenAddress = storage.TokenAddress([]byte(RelayTokenName), []byte(RelayTokenSymbol), []byte(RelayTokenMetadata))
	tokenXAddress     = storage.TokenAddress([]byte(TokenXName), []byte(TokenXSymbol), []byte(TokenXMetadata))
	tokenYAddress     = storage.TokenAddress([]byte(TokenYName), []byte(TokenYSymbol), []byte(TokenYMetadata))

	relayAddress = storage.RelayAddress(relayTokenAddress, tokenXAddress, tokenYAddress)
)
