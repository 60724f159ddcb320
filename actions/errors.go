// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Token-related errors
	ErrOutputTokenNameEmpty           = errors.New("token name is empty")
	ErrOutputTokenNameTooLarge        = errors.New("token name is too large")
	ErrOutputTokenSymbolEmpty         = errors.New("token symbol is empty")
	ErrOutputTokenSymbolTooLarge      = errors.New("token symbol is too large")
	ErrOutputTokenMetadataEmpty       = errors.New("token metadata is empty")
	ErrOutputTokenMetadataTooLarge    = errors.New("token metadata is too large")
	ErrOutputTokenAlreadyExists       = errors.New("token already exists")
	ErrOutputTokenDoesNotExist        = errors.New("token does not exist")
	ErrOutputTokenNotOwner            = errors.New("actor is not token owner")
	ErrOutputMintValueZero            = errors.New("mint value is zero")
	ErrOutputBurnValueZero            = errors.New("burn value is zero")
	ErrOutputTransferValueZero        = errors.New("transfer value is zero")
	ErrOutputMemoTooLarge             = errors.New("memo is too large")
	ErrOutputInsufficientTokenBalance = errors.New("insufficient token balance")

	// Relay-related errors
	ErrOutputRelayTokenDoesNotExist = errors.New("relay token does not exist")
	ErrOutputTokenXDoesNotExist     = errors.New("token X does not exist")
	ErrOutputTokenYDoesNotExist     = errors.New("token Y does not exist")
	ErrOutputIdenticalTokens        = errors.New("relay currencies are not pairwise distinct")
	ErrOutputInvalidWeights         = errors.New("connector weights must be nonzero and sum to the base")
	ErrOutputSupplyZero             = errors.New("initial relay supply is zero")
	ErrOutputRelayAlreadyExists     = errors.New("relay already exists")
	ErrOutputRelayDoesNotExist      = errors.New("relay does not exist")
)
