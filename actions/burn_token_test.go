// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/state/tstate"

	"github.com/ava-labs/relayvm/storage"
)

func TestBurnToken(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)

	addr := codectest.NewRandomAddress()

	parentState := ts.NewView(
		state.Keys{
			string(storage.TokenInfoKey(tokenXAddress)):                 state.All,
			string(storage.TokenAccountBalanceKey(tokenXAddress, addr)): state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	tests := []chaintest.ActionTest{
		{
			Name: "Burn value must be positive",
			Action: &BurnToken{
				Token: tokenXAddress,
				Value: 0,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputBurnValueZero,
			State:           parentState,
		},
		{
			Name: "Can only burn existing tokens",
			Action: &BurnToken{
				Token: tokenXAddress,
				Value: TokenBurnValue,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenDoesNotExist,
			State:           parentState,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}

	req.NoError(storage.SetTokenInfo(context.Background(), parentState, tokenXAddress, []byte(TokenXName), []byte(TokenXSymbol), []byte(TokenXMetadata), 0, addr))

	tests = []chaintest.ActionTest{
		{
			Name: "Cannot burn more than balance",
			Action: &BurnToken{
				Token: tokenXAddress,
				Value: TokenBurnValue,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInsufficientTokenBalance,
			State:           parentState,
			Actor:           addr,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}

	req.NoError(storage.MintToken(context.Background(), parentState, tokenXAddress, addr, TokenMintValue))

	tests = []chaintest.ActionTest{
		{
			Name: "Correct burns can occur",
			Action: &BurnToken{
				Token: tokenXAddress,
				Value: TokenBurnValue,
			},
			ExpectedOutputs: &BurnTokenResult{
				TotalSupply: TokenMintValue - TokenBurnValue,
			},
			ExpectedErr: nil,
			State:       parentState,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, _, _, totalSupply, _, err := storage.GetTokenInfoNoController(ctx, m, tokenXAddress)
				require.NoError(err)
				require.Equal(uint64(TokenMintValue-TokenBurnValue), totalSupply)
				balance, err := storage.GetTokenAccountBalanceNoController(ctx, m, tokenXAddress, addr)
				require.NoError(err)
				require.Equal(uint64(TokenMintValue-TokenBurnValue), balance)
			},
			Actor: addr,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
