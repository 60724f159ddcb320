// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/codec/codectest"
)

func TestRequestRoundTrip(t *testing.T) {
	req := require.New(t)

	original := &Request{
		TargetToken: codectest.NewRandomAddress(),
		MinReturn:   1234,
	}
	memo, err := original.Marshal()
	req.NoError(err)
	req.Len(memo, RequestSize)

	decoded, err := UnmarshalRequest(memo)
	req.NoError(err)
	req.Equal(original, decoded)
}

func TestUnmarshalRequestRejectsMalformedMemos(t *testing.T) {
	req := require.New(t)

	memo, err := (&Request{TargetToken: codectest.NewRandomAddress(), MinReturn: 1}).Marshal()
	req.NoError(err)

	_, err = UnmarshalRequest(nil)
	req.ErrorIs(err, ErrMalformedRequest)

	_, err = UnmarshalRequest(memo[:len(memo)-1])
	req.ErrorIs(err, ErrMalformedRequest)

	_, err = UnmarshalRequest(append(memo, 0x00))
	req.ErrorIs(err, ErrMalformedRequest)

	_, err = UnmarshalRequest([]byte("just a friendly note"))
	req.ErrorIs(err, ErrMalformedRequest)
}
