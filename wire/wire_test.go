// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
)

func TestScalarRoundTrip(t *testing.T) {
	s, err := field.Rand()
	require.NoError(t, err)
	buf := AppendScalar(nil, s)
	got, rest, err := ReadScalar(buf)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, got.Equal(s))
}

func TestPointRoundTrip(t *testing.T) {
	g := curve.G()
	buf, err := AppendPoint(nil, g)
	require.NoError(t, err)
	got, rest, err := ReadPoint(buf)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.True(t, got.Equal(g))
}

func TestReadPointRejectsShortInput(t *testing.T) {
	_, _, err := ReadPoint(make([]byte, PointSize-1))
	require.ErrorIs(t, err, ErrMalformedProof)
}

func TestExpectLen(t *testing.T) {
	require.NoError(t, ExpectLen(make([]byte, 10), 10))
	require.ErrorIs(t, ExpectLen(make([]byte, 9), 10), ErrMalformedProof)
}
