// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package binaryproof implements Π₁, the non-interactive disjunctive
// zero-knowledge proof that a Pedersen commitment opens to 0 or 1.
package binaryproof

import (
	"errors"

	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/pedersen"
	"github.com/luxfi/solvency/wire"
)

// ErrNonBinary is returned by Create when x is not 0 or 1.
var ErrNonBinary = errors.New("binaryproof: opening value is not 0 or 1")

// Proof is Π₁: g, h, L, a0, a1, c1, r0, r1.
type Proof struct {
	G, H   curve.G1
	L      curve.G1
	A0, A1 curve.G1
	C1     field.Fq
	R0, R1 field.Fq
}

// Create builds Π₁ for the opening (x, y) of L = x*g + y*h. x must be 0 or 1.
func Create(x field.Fq, y field.Fq, g, h curve.G1) (*Proof, error) {
	if !x.IsBinary() {
		return nil, ErrNonBinary
	}
	isOne := x.Equal(field.One())

	u0, err := field.Rand()
	if err != nil {
		return nil, err
	}
	u1, err := field.Rand()
	if err != nil {
		return nil, err
	}
	cf, err := field.Rand()
	if err != nil {
		return nil, err
	}

	l := pedersen.Commit(g, x, h, y)

	negXCf := cf.Neg()
	if !isOne {
		negXCf = field.Zero()
	}
	a0 := h.Mul(u0).Add(g.Mul(negXCf))

	oneMinusXCf := cf
	if isOne {
		oneMinusXCf = field.Zero()
	}
	a1 := h.Mul(u1).Add(g.Mul(oneMinusXCf))

	c, err := pedersen.ComputeChallenge(g, h, l, a0, a1)
	if err != nil {
		return nil, err
	}

	var c1 field.Fq
	if isOne {
		c1 = c.Sub(cf)
	} else {
		c1 = cf
	}

	r0 := u0.Add(c.Sub(c1).Mul(y))
	r1 := u1.Add(c1.Mul(y))

	return &Proof{G: g, H: h, L: l, A0: a0, A1: a1, C1: c1, R0: r0, R1: r1}, nil
}

// Verify checks the two disjunct verification equations. It never panics
// and always returns a boolean, success or failure.
func (p *Proof) Verify() bool {
	c, err := pedersen.ComputeChallenge(p.G, p.H, p.L, p.A0, p.A1)
	if err != nil {
		return false
	}
	c0 := c.Sub(p.C1)

	lhs0 := p.H.Mul(p.R0)
	rhs0 := p.A0.Add(p.L.Mul(c0))
	if !lhs0.Equal(rhs0) {
		return false
	}

	lhs1 := p.H.Mul(p.R1)
	rhs1 := p.A1.Add(p.L.Sub(p.G).Mul(p.C1))
	return lhs1.Equal(rhs1)
}

// MarshalBinary encodes the fixed 195-byte layout: L||a0||a1||c1||r0||r1.
// g and h are protocol-fixed and are not carried on the wire.
func (p *Proof) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, wire.BinaryProofSize)
	var err error
	if buf, err = wire.AppendPoint(buf, p.L); err != nil {
		return nil, err
	}
	if buf, err = wire.AppendPoint(buf, p.A0); err != nil {
		return nil, err
	}
	if buf, err = wire.AppendPoint(buf, p.A1); err != nil {
		return nil, err
	}
	buf = wire.AppendScalar(buf, p.C1)
	buf = wire.AppendScalar(buf, p.R0)
	buf = wire.AppendScalar(buf, p.R1)
	return buf, nil
}

// UnmarshalBinary decodes the 195-byte layout produced by MarshalBinary,
// filling in the protocol-fixed g and h.
func (p *Proof) UnmarshalBinary(b []byte) error {
	if err := wire.ExpectLen(b, wire.BinaryProofSize); err != nil {
		return err
	}
	rest := b
	var err error
	var l, a0, a1 curve.G1
	var c1, r0, r1 field.Fq
	if l, rest, err = wire.ReadPoint(rest); err != nil {
		return err
	}
	if a0, rest, err = wire.ReadPoint(rest); err != nil {
		return err
	}
	if a1, rest, err = wire.ReadPoint(rest); err != nil {
		return err
	}
	if c1, rest, err = wire.ReadScalar(rest); err != nil {
		return err
	}
	if r0, rest, err = wire.ReadScalar(rest); err != nil {
		return err
	}
	if r1, _, err = wire.ReadScalar(rest); err != nil {
		return err
	}
	p.G, p.H = curve.G(), curve.H()
	p.L, p.A0, p.A1 = l, a0, a1
	p.C1, p.R0, p.R1 = c1, r0, r1
	return nil
}
