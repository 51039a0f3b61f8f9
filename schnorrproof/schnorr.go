// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package schnorrproof implements Π₂, the non-interactive Schnorr proof
// of knowledge of a discrete logarithm.
package schnorrproof

import (
	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/pedersen"
	"github.com/luxfi/solvency/wire"
)

// Proof is Π₂: g, y, t, s with y = x*g, t = ρ*g, s = ρ + c*x.
type Proof struct {
	G, Y, T curve.G1
	S       field.Fq
}

// Create builds Π₂ proving knowledge of x such that y = x*g.
func Create(x field.Fq, g, y curve.G1) (*Proof, error) {
	rho, err := field.Rand()
	if err != nil {
		return nil, err
	}
	t := g.Mul(rho)

	c, err := pedersen.ComputeChallenge(g, y, t)
	if err != nil {
		return nil, err
	}

	s := rho.Add(c.Mul(x))
	return &Proof{G: g, Y: y, T: t, S: s}, nil
}

// Verify checks s*g == t + c*y.
func (p *Proof) Verify() bool {
	c, err := pedersen.ComputeChallenge(p.G, p.Y, p.T)
	if err != nil {
		return false
	}
	lhs := p.G.Mul(p.S)
	rhs := p.T.Add(p.Y.Mul(c))
	return lhs.Equal(rhs)
}

// MarshalBinary encodes the fixed 131-byte layout: s||g||y||t.
func (p *Proof) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, wire.SchnorrProofSize)
	buf = wire.AppendScalar(buf, p.S)
	var err error
	if buf, err = wire.AppendPoint(buf, p.G); err != nil {
		return nil, err
	}
	if buf, err = wire.AppendPoint(buf, p.Y); err != nil {
		return nil, err
	}
	if buf, err = wire.AppendPoint(buf, p.T); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary decodes the 131-byte layout produced by MarshalBinary.
func (p *Proof) UnmarshalBinary(b []byte) error {
	if err := wire.ExpectLen(b, wire.SchnorrProofSize); err != nil {
		return err
	}
	rest := b
	var err error
	var s field.Fq
	var g, y, t curve.G1
	if s, rest, err = wire.ReadScalar(rest); err != nil {
		return err
	}
	if g, rest, err = wire.ReadPoint(rest); err != nil {
		return err
	}
	if y, rest, err = wire.ReadPoint(rest); err != nil {
		return err
	}
	if t, _, err = wire.ReadPoint(rest); err != nil {
		return err
	}
	p.S, p.G, p.Y, p.T = s, g, y, t
	return nil
}
