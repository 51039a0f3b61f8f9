// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	s, err := Rand()
	require.NoError(t, err)
	b := s.BytesBE()
	require.True(t, FromBytesBE(b[:]).Equal(s))
}

func TestFromBigIntNegativeWraps(t *testing.T) {
	neg := FromBigInt(big.NewInt(-1))
	want := FromBigInt(new(big.Int).Sub(Order(), big.NewInt(1)))
	require.True(t, neg.Equal(want))
}

func TestIsBinary(t *testing.T) {
	require.True(t, Zero().IsBinary())
	require.True(t, One().IsBinary())
	require.False(t, FromUint64(2).IsBinary())
}

func TestArithmetic(t *testing.T) {
	a := FromUint64(5)
	b := FromUint64(3)
	require.True(t, a.Add(b).Equal(FromUint64(8)))
	require.True(t, a.Sub(b).Equal(FromUint64(2)))
	require.True(t, a.Mul(b).Equal(FromUint64(15)))
	require.True(t, a.Add(a.Neg()).IsZero())
}
