// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package record

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/solvency/assetproof"
	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/liabilityproof"
)

func TestBuilderEndToEndSolvent(t *testing.T) {
	g, h := curve.G(), curve.H()
	x, err := field.Rand()
	require.NoError(t, err)
	y := g.Mul(x)

	accounts := NewSliceAccountSource([]AccountRecord{
		{PrivateKey: &x, PublicKey: y, Balance: uint256.NewInt(10)},
	})
	customers := NewSliceCustomerSource([]CustomerRecord{
		{Identifier: []byte("testuser"), Balance: uint256.NewInt(10)},
	})

	b := NewBuilder(g, h, 4)

	var assets []*assetproof.Proof
	require.NoError(t, b.BuildAssets(accounts, func(p *assetproof.Proof) error {
		assets = append(assets, p)
		return nil
	}))

	var liabilities []*liabilityproof.Proof
	require.NoError(t, b.BuildLiabilities(customers, func(p *liabilityproof.Proof) error {
		liabilities = append(liabilities, p)
		return nil
	}))

	proof, err := b.BuildSolvency(assets, liabilities)
	require.NoError(t, err)
	require.True(t, proof.Verify())
}

func TestBuilderRejectsOversizedBalance(t *testing.T) {
	g, h := curve.G(), curve.H()
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)

	customers := NewSliceCustomerSource([]CustomerRecord{
		{Identifier: []byte("whale"), Balance: huge},
	})
	b := NewBuilder(g, h, 2)

	err := b.BuildLiabilities(customers, func(p *liabilityproof.Proof) error { return nil })
	require.ErrorIs(t, err, ErrBalanceTooLarge)
}
