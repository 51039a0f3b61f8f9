// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package solvencyproof implements Π₅: the aggregation protocol that
// ties the asset and liability commitment sums together via a single
// Schnorr proof.
package solvencyproof

import (
	"math/big"

	"github.com/luxfi/solvency/assetproof"
	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/liabilityproof"
	"github.com/luxfi/solvency/schnorrproof"
)

// Proof is Π₅: a single SchnorrProof whose g is H and whose y is the
// asset/liability commitment difference Z.
type Proof struct {
	Inner *schnorrproof.Proof
}

// Create aggregates every asset and liability proof into Π₅. h must be
// the fixed second generator, curve.H().
func Create(assets []*assetproof.Proof, liabilities []*liabilityproof.Proof, h curve.G1) (*Proof, error) {
	zAssets := curve.Identity()
	v := new(big.Int)
	for _, a := range assets {
		zAssets = zAssets.Add(a.Commitment())
		v.Add(v, a.V.BigInt())
	}

	zLiabs := curve.Identity()
	r := new(big.Int)
	for _, l := range liabilities {
		zLiabs = zLiabs.Add(l.Z())
		r.Add(r, l.R)
	}

	z := zAssets.Sub(zLiabs)
	k := field.FromBigInt(new(big.Int).Sub(v, r))

	inner, err := schnorrproof.Create(k, h, z)
	if err != nil {
		return nil, err
	}
	return &Proof{Inner: inner}, nil
}

// Verify checks the wrapped Schnorr proof: it succeeds iff Z == k*H,
// i.e. the G-components of the asset and liability sums cancel exactly.
func (p *Proof) Verify() bool {
	return p.Inner.Verify()
}

// MarshalBinary encodes the wrapped 131-byte SchnorrProof.
func (p *Proof) MarshalBinary() ([]byte, error) {
	return p.Inner.MarshalBinary()
}

// UnmarshalBinary decodes the wrapped 131-byte SchnorrProof.
func (p *Proof) UnmarshalBinary(b []byte) error {
	var inner schnorrproof.Proof
	if err := inner.UnmarshalBinary(b); err != nil {
		return err
	}
	p.Inner = &inner
	return nil
}
