// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"github.com/ava-labs/hypersdk/codec"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// RequestSize is the exact wire size of a packed Request.
const RequestSize = codec.AddressLen + hconsts.Uint64Len

// Request is the conversion order carried in a transfer's memo: convert the
// transferred quantity into [TargetToken], rejecting the conversion if the
// output would be below [MinReturn] (denominated in the target token).
type Request struct {
	TargetToken codec.Address
	MinReturn   uint64
}

func (r *Request) Marshal() ([]byte, error) {
	p := codec.NewWriter(RequestSize, RequestSize)
	p.PackAddress(r.TargetToken)
	p.PackUint64(r.MinReturn)
	return p.Bytes(), p.Err()
}

// UnmarshalRequest decodes a memo into a Request. Any decode failure,
// including trailing bytes, is reported as ErrMalformedRequest.
func UnmarshalRequest(memo []byte) (*Request, error) {
	p := codec.NewReader(memo, RequestSize)
	var req Request
	p.UnpackAddress(&req.TargetToken)
	req.MinReturn = p.UnpackUint64(false)
	if err := p.Err(); err != nil {
		return nil, ErrMalformedRequest
	}
	if !p.Empty() {
		return nil, ErrMalformedRequest
	}
	return &req, nil
}
