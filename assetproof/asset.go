// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package assetproof implements Π₃: the per-account proof that an
// exchange account contributes either its real balance or zero to the
// asset sum, without revealing which.
package assetproof

import (
	"github.com/luxfi/solvency/binaryproof"
	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/pedersen"
	"github.com/luxfi/solvency/wire"
)

// Proof is Π₃. V is the blinding used inside the inner binary commitment
// P = s*B + v*h; it is retained so SolvencyProof can aggregate it, per
// the protocol's wire layout (§6), and must not otherwise be disclosed.
type Proof struct {
	G, H           curve.G1
	Y              curve.G1
	B              curve.G1
	L              curve.G1
	A1, A2, A3     curve.G1
	Rs, Rv, Rt, Rx field.Fq
	V              field.Fq
	Inner          *binaryproof.Proof
}

// Create builds Π₃ for one exchange account. privateKey is nil when the
// exchange does not hold the key for publicKey; balance is the account's
// on-chain balance, present in the transcript either way.
func Create(privateKey *field.Fq, publicKey curve.G1, balance uint64, g, h curve.G1) (*Proof, error) {
	s := field.Zero()
	xhat := field.Zero()
	if privateKey != nil {
		s = field.One()
		xhat = *privateKey
	}

	b := g.Mul(field.FromUint64(balance))

	v, err := field.Rand()
	if err != nil {
		return nil, err
	}
	inner, err := binaryproof.Create(s, v, b, h)
	if err != nil {
		return nil, err
	}
	p := inner.L

	t, err := field.Rand()
	if err != nil {
		return nil, err
	}
	l := publicKey.Mul(s).Add(h.Mul(t))

	u1, err := field.Rand()
	if err != nil {
		return nil, err
	}
	u2, err := field.Rand()
	if err != nil {
		return nil, err
	}
	u3, err := field.Rand()
	if err != nil {
		return nil, err
	}
	u4, err := field.Rand()
	if err != nil {
		return nil, err
	}

	a1 := b.Mul(u1).Add(h.Mul(u2))
	a2 := publicKey.Mul(u1).Add(h.Mul(u3))
	a3 := g.Mul(u4).Add(h.Mul(u3))

	c, err := pedersen.ComputeChallenge(publicKey, g, h, b, p, l, a1, a2, a3)
	if err != nil {
		return nil, err
	}

	rs := u1.Add(c.Mul(s))
	rv := u2.Add(c.Mul(v))
	rt := u3.Add(c.Mul(t))
	rx := u4.Add(c.Mul(xhat))

	return &Proof{
		G: g, H: h,
		Y: publicKey, B: b, L: l,
		A1: a1, A2: a2, A3: a3,
		Rs: rs, Rv: rv, Rt: rt, Rx: rx,
		V:     v,
		Inner: inner,
	}, nil
}

// Commitment returns P = s*B + v*h, the account's inner commitment: B + v*h
// when the exchange holds the key, v*h otherwise, so its G-component is B
// or O. This is the asset's contribution to the Π₅ asset sum.
func (p *Proof) Commitment() curve.G1 {
	return p.Inner.L
}

// Verify checks all three linking equations plus the inner binary proof.
func (p *Proof) Verify() bool {
	pPoint := p.Inner.L
	c, err := pedersen.ComputeChallenge(p.Y, p.G, p.H, p.B, pPoint, p.L, p.A1, p.A2, p.A3)
	if err != nil {
		return false
	}

	lhs1 := pedersen.Commit(p.B, p.Rs, p.H, p.Rv)
	rhs1 := pPoint.Mul(c).Add(p.A1)
	if !lhs1.Equal(rhs1) {
		return false
	}

	lhs2 := pedersen.Commit(p.Y, p.Rs, p.H, p.Rt)
	rhs2 := p.L.Mul(c).Add(p.A2)
	if !lhs2.Equal(rhs2) {
		return false
	}

	lhs3 := pedersen.Commit(p.G, p.Rx, p.H, p.Rt)
	rhs3 := p.L.Mul(c).Add(p.A3)
	if !lhs3.Equal(rhs3) {
		return false
	}

	return p.Inner.Verify()
}

// MarshalBinary encodes the fixed 553-byte layout:
// Y||B||L||a1||a2||a3||rs||rv||rt||rx̂||v||innerBinaryProof.
func (p *Proof) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, wire.AssetProofSize)
	var err error
	for _, pt := range []curve.G1{p.Y, p.B, p.L, p.A1, p.A2, p.A3} {
		if buf, err = wire.AppendPoint(buf, pt); err != nil {
			return nil, err
		}
	}
	for _, s := range []field.Fq{p.Rs, p.Rv, p.Rt, p.Rx, p.V} {
		buf = wire.AppendScalar(buf, s)
	}
	inner, err := p.Inner.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(buf, inner...), nil
}

// UnmarshalBinary decodes the 553-byte layout produced by MarshalBinary,
// filling in the protocol-fixed g and h.
func (p *Proof) UnmarshalBinary(b []byte) error {
	if err := wire.ExpectLen(b, wire.AssetProofSize); err != nil {
		return err
	}
	rest := b
	var err error
	var y, bal, l, a1, a2, a3 curve.G1
	for _, dst := range []*curve.G1{&y, &bal, &l, &a1, &a2, &a3} {
		if *dst, rest, err = wire.ReadPoint(rest); err != nil {
			return err
		}
	}
	var rs, rv, rt, rx, v field.Fq
	for _, dst := range []*field.Fq{&rs, &rv, &rt, &rx, &v} {
		if *dst, rest, err = wire.ReadScalar(rest); err != nil {
			return err
		}
	}
	var inner binaryproof.Proof
	if err := inner.UnmarshalBinary(rest); err != nil {
		return err
	}

	p.G, p.H = curve.G(), curve.H()
	p.Y, p.B, p.L = y, bal, l
	p.A1, p.A2, p.A3 = a1, a2, a3
	p.Rs, p.Rv, p.Rt, p.Rx = rs, rv, rt, rx
	p.V = v
	p.Inner = &inner
	return nil
}
