// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	smath "github.com/ava-labs/avalanchego/utils/math"
)

// State is the relay-denominated side of a pool: [Supply] is the total relay
// tokens held outside the pool, [Balance] is the relay value the pool will
// redeem against its connector reserves.
type State struct {
	Supply  uint64
	Balance uint64
}

// Connector prices one connector currency against the relay token. [Weight]
// is the connector's fraction of total connector value, expressed as a
// numerator over [Base] (e.g. 500000/1000000 = 50%).
type Connector struct {
	Weight uint64
	Base   uint64
}

// ConvertToRelay prices [in] connector tokens into relay tokens and grows
// [st] by the result.
//
// Precondition: [connectorBalance] is the pool's connector balance with this
// transfer's credit already applied; the pre-transfer balance is re-derived
// as connectorBalance - in. The output is a two-point estimate: a marginal
// price off the pre-transfer reserves, then a refined price off the
// post-transfer reserves with the supply inflated by the first estimate. All
// divisions truncate toward zero.
func (c Connector) ConvertToRelay(in uint64, connectorBalance uint64, st *State) (uint64, error) {
	if in == 0 {
		return 0, ErrZeroInput
	}
	if c.Weight == 0 || c.Base == 0 {
		return 0, ErrWeightZero
	}
	if st.Supply == 0 {
		return 0, ErrSupplyZero
	}

	previousBalance, err := smath.Sub(connectorBalance, in)
	if err != nil {
		return 0, err
	}

	initNum, err := smath.Mul(previousBalance, c.Base)
	if err != nil {
		return 0, err
	}
	initDenom, err := smath.Mul(c.Weight, st.Supply)
	if err != nil {
		return 0, err
	}
	initPrice := initNum / initDenom
	initOut, err := smath.Mul(initPrice, in)
	if err != nil {
		return 0, err
	}

	outNum, err := smath.Mul(connectorBalance, c.Base)
	if err != nil {
		return 0, err
	}
	inflatedSupply, err := smath.Add(st.Supply, initOut)
	if err != nil {
		return 0, err
	}
	outDenom, err := smath.Mul(c.Weight, inflatedSupply)
	if err != nil {
		return 0, err
	}
	outPrice := outNum / outDenom
	finalOut, err := smath.Mul(outPrice, in)
	if err != nil {
		return 0, err
	}

	newBalance, err := smath.Add(st.Balance, finalOut)
	if err != nil {
		return 0, err
	}
	newSupply, err := smath.Add(st.Supply, finalOut)
	if err != nil {
		return 0, err
	}
	st.Balance = newBalance
	st.Supply = newSupply

	return finalOut, nil
}

// ConvertFromRelay prices [relayIn] relay tokens into connector tokens and
// shrinks [st] by [relayIn].
//
// The pricing deliberately mirrors ConvertToRelay asymmetrically: the
// initial price reads the current supply while the refined price reads the
// supply with [relayIn] already deducted. Early redemptions therefore see a
// different refined price than late ones; this directional price impact is a
// core property of the curve, not an artifact. Like ConvertToRelay, [st] is
// only written once every step has succeeded.
func (c Connector) ConvertFromRelay(relayIn uint64, connectorBalance uint64, st *State) (uint64, error) {
	if relayIn == 0 {
		return 0, ErrZeroInput
	}
	if c.Weight == 0 || c.Base == 0 {
		return 0, ErrWeightZero
	}
	if st.Supply == 0 {
		return 0, ErrSupplyZero
	}

	initNum, err := smath.Mul(connectorBalance, c.Base)
	if err != nil {
		return 0, err
	}
	initDenom, err := smath.Mul(c.Weight, st.Supply)
	if err != nil {
		return 0, err
	}
	initPrice := initNum / initDenom
	initOut, err := smath.Mul(initPrice, relayIn)
	if err != nil {
		return 0, err
	}

	newSupply, err := smath.Sub(st.Supply, relayIn)
	if err != nil {
		return 0, err
	}
	if newSupply == 0 {
		return 0, ErrSupplyZero
	}
	newBalance, err := smath.Sub(st.Balance, relayIn)
	if err != nil {
		return 0, err
	}

	remaining, err := smath.Sub(connectorBalance, initOut)
	if err != nil {
		return 0, err
	}
	outNum, err := smath.Mul(remaining, c.Base)
	if err != nil {
		return 0, err
	}
	outDenom, err := smath.Mul(c.Weight, newSupply)
	if err != nil {
		return 0, err
	}
	outPrice := outNum / outDenom
	out, err := smath.Mul(outPrice, relayIn)
	if err != nil {
		return 0, err
	}
	st.Supply = newSupply
	st.Balance = newBalance

	return out, nil
}
