// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire centralizes the length-exact byte framing every proof type
// in this module uses for its MarshalBinary/UnmarshalBinary
// implementations, keeping the field order and size checks in one place.
package wire

import (
	"errors"
	"math/big"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
)

// ErrMalformedProof is returned by UnmarshalBinary on any size mismatch
// or non-canonical point/scalar encoding.
var ErrMalformedProof = errors.New("wire: malformed proof encoding")

// Fixed sizes from the protocol's wire contract.
const (
	ScalarSize         = field.ByteSize
	PointSize          = curve.CompressedSize
	SchnorrProofSize   = ScalarSize + 3*PointSize   // s || g || y || t
	BinaryProofSize    = 3*PointSize + 3*ScalarSize // L || a0 || a1 || c1 || r0 || r1
	AssetProofSize     = 6*PointSize + 5*ScalarSize + BinaryProofSize
	LiabilityBits      = 51
	LiabilityCIDSize   = 32
	LiabilitySaltSize  = 32
	LiabilityFixedSize = LiabilityCIDSize + LiabilityBits*BinaryProofSize + LiabilitySaltSize
)

// AppendScalar appends the 32-byte big-endian encoding of x.
func AppendScalar(dst []byte, x field.Fq) []byte {
	b := x.BytesBE()
	return append(dst, b[:]...)
}

// AppendPoint appends the 33-byte compressed encoding of p. p must not be
// the identity.
func AppendPoint(dst []byte, p curve.G1) ([]byte, error) {
	b, err := p.Compressed()
	if err != nil {
		return nil, err
	}
	return append(dst, b[:]...), nil
}

// ReadScalar consumes the next 32 bytes of b as an Fq element. Encodings
// of values >= q are rejected as non-canonical.
func ReadScalar(b []byte) (field.Fq, []byte, error) {
	if len(b) < ScalarSize {
		return field.Fq{}, nil, ErrMalformedProof
	}
	if new(big.Int).SetBytes(b[:ScalarSize]).Cmp(field.Order()) >= 0 {
		return field.Fq{}, nil, ErrMalformedProof
	}
	return field.FromBytesBE(b[:ScalarSize]), b[ScalarSize:], nil
}

// ReadPoint consumes the next 33 bytes of b as a compressed point.
func ReadPoint(b []byte) (curve.G1, []byte, error) {
	if len(b) < PointSize {
		return curve.G1{}, nil, ErrMalformedProof
	}
	p, err := curve.Decompress(b[:PointSize])
	if err != nil {
		return curve.G1{}, nil, ErrMalformedProof
	}
	return p, b[PointSize:], nil
}

// ExpectLen fails fast with ErrMalformedProof when b is not exactly n
// bytes, the common case for every fixed-size proof encoding.
func ExpectLen(b []byte, n int) error {
	if len(b) != n {
		return ErrMalformedProof
	}
	return nil
}

// ExpectMinLen fails with ErrMalformedProof when b is shorter than n
// bytes, used by the variable-length liability trailer.
func ExpectMinLen(b []byte, n int) error {
	if len(b) < n {
		return ErrMalformedProof
	}
	return nil
}
