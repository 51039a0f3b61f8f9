// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binaryproof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/wire"
)

func TestCreateVerifyBothBranches(t *testing.T) {
	g, h := curve.G(), curve.H()
	for _, bit := range []uint64{0, 1} {
		x := field.FromUint64(bit)
		y, err := field.Rand()
		require.NoError(t, err)

		p, err := Create(x, y, g, h)
		require.NoError(t, err)
		require.True(t, p.Verify())
	}
}

func TestCreateRejectsNonBinary(t *testing.T) {
	g, h := curve.G(), curve.H()
	y, err := field.Rand()
	require.NoError(t, err)

	_, err = Create(field.FromUint64(25), y, g, h)
	require.ErrorIs(t, err, ErrNonBinary)
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	g, h := curve.G(), curve.H()
	y, err := field.Rand()
	require.NoError(t, err)

	p, err := Create(field.Zero(), y, g, h)
	require.NoError(t, err)
	require.True(t, p.Verify())

	p.R1 = p.R1.Add(field.One())
	require.False(t, p.Verify())
}

func TestRoundTrip(t *testing.T) {
	g, h := curve.G(), curve.H()
	y, err := field.Rand()
	require.NoError(t, err)

	p, err := Create(field.One(), y, g, h)
	require.NoError(t, err)

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, wire.BinaryProofSize)

	var got Proof
	require.NoError(t, got.UnmarshalBinary(b))
	require.True(t, got.Verify())
	require.True(t, got.L.Equal(p.L))
}

func TestUnmarshalRejectsWrongLength(t *testing.T) {
	var p Proof
	require.ErrorIs(t, p.UnmarshalBinary(make([]byte, wire.BinaryProofSize-1)), wire.ErrMalformedProof)
}
