// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	CreateTokenComputeUnits   = 1
	MintTokenComputeUnits     = 1
	BurnTokenComputeUnits     = 1
	TransferTokenComputeUnits = 1
	CreateRelayComputeUnits   = 1
	GetTokenInfoComputeUnits  = 1
	GetBalanceComputeUnits    = 1
	GetRelayInfoComputeUnits  = 1
)
