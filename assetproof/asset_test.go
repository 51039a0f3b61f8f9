// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package assetproof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/wire"
)

func TestCreateVerifyHeldAccount(t *testing.T) {
	g, h := curve.G(), curve.H()
	x, err := field.Rand()
	require.NoError(t, err)
	y := g.Mul(x)

	p, err := Create(&x, y, 123, g, h)
	require.NoError(t, err)
	require.True(t, p.Verify())
	require.True(t, p.Commitment().Equal(g.Mul(field.FromUint64(123)).Add(h.Mul(p.V))))
}

func TestCreateVerifyUnheldAccount(t *testing.T) {
	g, h := curve.G(), curve.H()
	x, err := field.Rand()
	require.NoError(t, err)
	y := g.Mul(x)

	p, err := Create(nil, y, 7, g, h)
	require.NoError(t, err)
	require.True(t, p.Verify())
	require.True(t, p.Commitment().Equal(h.Mul(p.V)))
}

func TestVerifyRejectsTampering(t *testing.T) {
	g, h := curve.G(), curve.H()
	x, err := field.Rand()
	require.NoError(t, err)
	y := g.Mul(x)

	p, err := Create(&x, y, 10, g, h)
	require.NoError(t, err)

	p.Rs = p.Rs.Add(field.One())
	require.False(t, p.Verify())
}

func TestRoundTrip(t *testing.T) {
	g, h := curve.G(), curve.H()
	x, err := field.Rand()
	require.NoError(t, err)
	y := g.Mul(x)

	p, err := Create(&x, y, 123, g, h)
	require.NoError(t, err)

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, wire.AssetProofSize)

	var got Proof
	require.NoError(t, got.UnmarshalBinary(b))
	require.True(t, got.Verify())
	require.True(t, got.Commitment().Equal(p.Commitment()))
}
