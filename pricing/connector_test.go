// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

const (
	testWeight = 500_000
	testBase   = 1_000_000
)

func TestConvertToRelay(t *testing.T) {
	req := require.New(t)
	conn := Connector{Weight: testWeight, Base: testBase}

	st := State{Supply: 2000, Balance: 2000}
	_, err := conn.ConvertToRelay(0, 1100, &st)
	req.ErrorIs(err, ErrZeroInput)

	_, err = Connector{Weight: 0, Base: testBase}.ConvertToRelay(100, 1100, &st)
	req.ErrorIs(err, ErrWeightZero)

	empty := State{Supply: 0, Balance: 0}
	_, err = conn.ConvertToRelay(100, 1100, &empty)
	req.ErrorIs(err, ErrSupplyZero)

	// The connector balance must already include the credit being priced.
	_, err = conn.ConvertToRelay(100, 99, &st)
	req.ErrorIs(err, smath.ErrUnderflow)

	// Two-point pricing: a marginal price of 1 off the 1000 pre-credit
	// reserve holds at the refined point, so 100 in yields 100 out.
	out, err := conn.ConvertToRelay(100, 1100, &st)
	req.NoError(err)
	req.Equal(uint64(100), out)
	req.Equal(uint64(2100), st.Supply)
	req.Equal(uint64(2100), st.Balance)
}

func TestConvertToRelayDoesNotMutateOnError(t *testing.T) {
	req := require.New(t)
	conn := Connector{Weight: testWeight, Base: testBase}

	st := State{Supply: 2000, Balance: 2000}
	_, err := conn.ConvertToRelay(100, 99, &st)
	req.Error(err)
	req.Equal(uint64(2000), st.Supply)
	req.Equal(uint64(2000), st.Balance)
}

func TestConvertFromRelay(t *testing.T) {
	req := require.New(t)
	conn := Connector{Weight: testWeight, Base: testBase}

	st := State{Supply: 2000, Balance: 2000}
	_, err := conn.ConvertFromRelay(0, 4000, &st)
	req.ErrorIs(err, ErrZeroInput)

	_, err = Connector{Weight: 0, Base: testBase}.ConvertFromRelay(100, 4000, &st)
	req.ErrorIs(err, ErrWeightZero)

	empty := State{Supply: 0, Balance: 0}
	_, err = conn.ConvertFromRelay(100, 4000, &empty)
	req.ErrorIs(err, ErrSupplyZero)

	out, err := conn.ConvertFromRelay(100, 4000, &st)
	req.NoError(err)
	req.Equal(uint64(300), out)
	req.Equal(uint64(1900), st.Supply)
	req.Equal(uint64(1900), st.Balance)
}

func TestConvertFromRelayCannotDrainSupply(t *testing.T) {
	req := require.New(t)
	conn := Connector{Weight: testWeight, Base: testBase}

	st := State{Supply: 100, Balance: 100}
	_, err := conn.ConvertFromRelay(100, 4000, &st)
	req.ErrorIs(err, ErrSupplyZero)

	st = State{Supply: 100, Balance: 100}
	_, err = conn.ConvertFromRelay(101, 4000, &st)
	req.ErrorIs(err, smath.ErrUnderflow)
}

func TestConvertFromRelayDoesNotMutateOnError(t *testing.T) {
	req := require.New(t)
	conn := Connector{Weight: testWeight, Base: testBase}

	// Draining the supply exactly fails after the decrement is computed;
	// the caller's state must still read as it did before the call.
	st := State{Supply: 100, Balance: 100}
	_, err := conn.ConvertFromRelay(100, 4000, &st)
	req.ErrorIs(err, ErrSupplyZero)
	req.Equal(uint64(100), st.Supply)
	req.Equal(uint64(100), st.Balance)

	st = State{Supply: 2000, Balance: 50}
	_, err = conn.ConvertFromRelay(100, 4000, &st)
	req.ErrorIs(err, smath.ErrUnderflow)
	req.Equal(uint64(2000), st.Supply)
	req.Equal(uint64(50), st.Balance)
}

// Redeeming every relay token bought by a deposit returns the relay side
// of the pool to where it started.
func TestRoundTripRestoresRelaySide(t *testing.T) {
	req := require.New(t)
	conn := Connector{Weight: testWeight, Base: testBase}

	st := State{Supply: 2000, Balance: 2000}
	relayOut, err := conn.ConvertToRelay(100, 4100, &st)
	req.NoError(err)
	req.Equal(uint64(300), relayOut)

	back, err := conn.ConvertFromRelay(relayOut, 4100, &st)
	req.NoError(err)
	req.Equal(uint64(900), back)
	req.Equal(uint64(2000), st.Supply)
	req.Equal(uint64(2000), st.Balance)
}
