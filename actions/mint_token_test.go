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

func TestMintToken(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)

	addr := codectest.NewRandomAddress()
	addrTwo := codectest.NewRandomAddress()

	parentState := ts.NewView(
		state.Keys{
			string(storage.TokenInfoKey(tokenXAddress)):                    state.All,
			string(storage.TokenAccountBalanceKey(tokenXAddress, addr)):    state.All,
			string(storage.TokenAccountBalanceKey(tokenXAddress, addrTwo)): state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	tests := []chaintest.ActionTest{
		{
			Name: "Mint value must be positive",
			Action: &MintToken{
				To:    addr,
				Token: tokenXAddress,
				Value: 0,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputMintValueZero,
			State:           parentState,
		},
		{
			Name: "Can only mint existing tokens",
			Action: &MintToken{
				To:    addr,
				Token: tokenXAddress,
				Value: TokenMintValue,
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
			Name: "Correct mints can occur",
			Action: &MintToken{
				To:    addr,
				Token: tokenXAddress,
				Value: TokenMintValue,
			},
			ExpectedOutputs: &MintTokenResult{
				TotalSupply: TokenMintValue,
			},
			ExpectedErr: nil,
			State:       parentState,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, _, _, totalSupply, _, err := storage.GetTokenInfoNoController(ctx, m, tokenXAddress)
				require.NoError(err)
				require.Equal(uint64(TokenMintValue), totalSupply)
				balance, err := storage.GetTokenAccountBalanceNoController(ctx, m, tokenXAddress, addr)
				require.NoError(err)
				require.Equal(uint64(TokenMintValue), balance)
			},
			Actor: addr,
		},
		{
			Name: "Only owner can mint",
			Action: &MintToken{
				To:    addr,
				Token: tokenXAddress,
				Value: TokenMintValue,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenNotOwner,
			State:           parentState,
			Actor:           addrTwo,
		},
		{
			Name: "Minting to a third party leaves the issuer flat",
			Action: &MintToken{
				To:    addrTwo,
				Token: tokenXAddress,
				Value: TokenMintValue,
			},
			ExpectedOutputs: &MintTokenResult{
				TotalSupply: 2 * TokenMintValue,
			},
			ExpectedErr: nil,
			State:       parentState,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, _, _, totalSupply, _, err := storage.GetTokenInfoNoController(ctx, m, tokenXAddress)
				require.NoError(err)
				require.Equal(uint64(2*TokenMintValue), totalSupply)
				issuerBalance, err := storage.GetTokenAccountBalanceNoController(ctx, m, tokenXAddress, addr)
				require.NoError(err)
				require.Equal(uint64(TokenMintValue), issuerBalance)
				recipientBalance, err := storage.GetTokenAccountBalanceNoController(ctx, m, tokenXAddress, addrTwo)
				require.NoError(err)
				require.Equal(uint64(TokenMintValue), recipientBalance)
			},
			Actor: addr,
		},
		{
			Name: "Minting to the issuer credits the issuer exactly once",
			Action: &MintToken{
				To:    addr,
				Token: tokenXAddress,
				Value: TokenMintValue,
			},
			ExpectedOutputs: &MintTokenResult{
				TotalSupply: 3 * TokenMintValue,
			},
			ExpectedErr: nil,
			State:       parentState,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				issuerBalance, err := storage.GetTokenAccountBalanceNoController(ctx, m, tokenXAddress, addr)
				require.NoError(err)
				require.Equal(uint64(2*TokenMintValue), issuerBalance)
				recipientBalance, err := storage.GetTokenAccountBalanceNoController(ctx, m, tokenXAddress, addrTwo)
				require.NoError(err)
				require.Equal(uint64(TokenMintValue), recipientBalance)
				_, _, _, totalSupply, _, err := storage.GetTokenInfoNoController(ctx, m, tokenXAddress)
				require.NoError(err)
				require.Equal(issuerBalance+recipientBalance, totalSupply)
			},
			Actor: addr,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
