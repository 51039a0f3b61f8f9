// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pedersen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
)

func TestCommitmentHomomorphism(t *testing.T) {
	g, h := curve.G(), curve.H()
	x1, err := field.Rand()
	require.NoError(t, err)
	x2, err := field.Rand()
	require.NoError(t, err)
	r1, err := field.Rand()
	require.NoError(t, err)
	r2, err := field.Rand()
	require.NoError(t, err)

	lhs := Commit(g, x1, h, r1).Add(Commit(g, x2, h, r2))
	rhs := Commit(g, x1.Add(x2), h, r1.Add(r2))
	require.True(t, lhs.Equal(rhs))
}

func TestComputeChallengeDeterministic(t *testing.T) {
	g, h := curve.G(), curve.H()
	c1, err := ComputeChallenge(g, h)
	require.NoError(t, err)
	c2, err := ComputeChallenge(g, h)
	require.NoError(t, err)
	require.True(t, c1.Equal(c2))

	c3, err := ComputeChallenge(h, g)
	require.NoError(t, err)
	require.False(t, c1.Equal(c3))
}
