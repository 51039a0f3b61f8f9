// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schnorrproof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/wire"
)

func TestCreateVerify(t *testing.T) {
	x, err := field.Rand()
	require.NoError(t, err)
	g := curve.G()
	y := g.Mul(x)

	p, err := Create(x, g, y)
	require.NoError(t, err)
	require.True(t, p.Verify())
}

func TestVerifyRejectsWrongWitness(t *testing.T) {
	x, err := field.Rand()
	require.NoError(t, err)
	g := curve.G()
	y := g.Mul(x)

	p, err := Create(x, g, y)
	require.NoError(t, err)

	p.S = p.S.Add(field.One())
	require.False(t, p.Verify())
}

func TestRoundTrip(t *testing.T) {
	x, err := field.Rand()
	require.NoError(t, err)
	g := curve.G()
	y := g.Mul(x)

	p, err := Create(x, g, y)
	require.NoError(t, err)

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, wire.SchnorrProofSize)

	var got Proof
	require.NoError(t, got.UnmarshalBinary(b))
	require.True(t, got.Verify())
}
