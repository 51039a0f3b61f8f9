// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pedersen implements Pedersen commitments over curve.G1 and the
// Fiat-Shamir transcript hash shared by every Sigma-protocol proof in this
// module.
package pedersen

import (
	"crypto/sha256"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
)

// Commit computes C = x*g + r*h.
func Commit(g curve.G1, x field.Fq, h curve.G1, r field.Fq) curve.G1 {
	return g.Mul(x).Add(h.Mul(r))
}

// ComputeChallenge hashes the uncompressed (65-byte) encoding of each
// point, in the given order, into a single SHA-256 digest and reduces it
// into Fq. The point order is normative per proof type: callers must pass
// points in exactly the order the corresponding protocol section
// specifies, since the verifier recomputes this hash from the same
// sequence.
func ComputeChallenge(points ...curve.G1) (field.Fq, error) {
	hasher := sha256.New()
	for _, p := range points {
		enc, err := p.Uncompressed()
		if err != nil {
			return field.Fq{}, err
		}
		hasher.Write(enc[:])
	}
	return field.FromBytesBE(hasher.Sum(nil)), nil
}
