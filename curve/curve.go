// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve implements the secp256k1 prime-order subgroup used by the
// Provisions protocol: point arithmetic, the fixed generators G and H, and
// compressed/uncompressed wire encoding.
package curve

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/luxfi/solvency/field"
)

// CompressedSize and UncompressedSize are the fixed SEC1 encoding lengths.
const (
	CompressedSize   = 33
	UncompressedSize = 65
)

var (
	// ErrBadGenerator is returned (and, for the fixed H, panics at package
	// init) when hash-to-curve does not land on the curve.
	ErrBadGenerator = errors.New("curve: hash-to-curve point is not on the curve")
	// ErrMalformedPoint is returned when decompressing bytes that do not
	// encode a valid curve point.
	ErrMalformedPoint = errors.New("curve: malformed point encoding")
	// ErrIdentityNotEncodable is returned when serializing the identity
	// element, which has no compressed or uncompressed SEC1 form.
	ErrIdentityNotEncodable = errors.New("curve: identity point has no wire encoding")
)

// G1 is a point on the secp256k1 prime-order subgroup, or the identity
// element O. The zero value is O.
type G1 struct {
	p secp256k1.JacobianPoint
}

// Identity returns O, the group identity.
func Identity() G1 {
	return G1{}
}

// IsIdentity reports whether p is O.
func (p G1) IsIdentity() bool {
	return p.p.Z.IsZero()
}

// fieldPrime returns p, the secp256k1 base field prime 2^256 - 2^32 - 977.
func fieldPrime() *big.Int {
	prime := new(big.Int).Lsh(big.NewInt(1), 256)
	prime.Sub(prime, new(big.Int).Lsh(big.NewInt(1), 32))
	prime.Sub(prime, big.NewInt(977))
	return prime
}

// g is the standard secp256k1 base point, computed once from the
// generator via scalar multiplication by one rather than hardcoded
// coordinates.
var g = func() G1 {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var j secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&one, &j)
	return G1{p: j}
}()

// h is the fixed, nothing-up-my-sleeve second generator. It is derived
// once at init time; a derivation failure is a build-time invariant
// violation, not a runtime condition, so it panics.
var h = func() G1 {
	p, err := deriveH()
	if err != nil {
		panic(err)
	}
	return p
}()

// G returns the standard secp256k1 generator.
func G() G1 { return g }

// H returns the fixed second generator, deterministically derived from
// SHA-256("PROVISIONS") per the protocol's hash-to-curve contract. Every
// conforming implementation must produce the byte-identical point.
func H() G1 { return h }

// deriveH implements x0 = SHA-256("PROVISIONS") mod p, y0 =
// (x0^3+7)^((p+1)/4) mod p, the Tonelli-Shanks shortcut valid because
// p ≡ 3 mod 4 for the secp256k1 base field.
func deriveH() (G1, error) {
	digest := sha256.Sum256([]byte("PROVISIONS"))
	p := fieldPrime()

	x0 := new(big.Int).SetBytes(digest[:])
	x0.Mod(x0, p)

	rhs := new(big.Int).Exp(x0, big.NewInt(3), p)
	rhs.Add(rhs, big.NewInt(7))
	rhs.Mod(rhs, p)

	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	y0 := new(big.Int).Exp(rhs, exp, p)

	check := new(big.Int).Exp(y0, big.NewInt(2), p)
	if check.Cmp(rhs) != 0 {
		return G1{}, ErrBadGenerator
	}

	var xBuf, yBuf [32]byte
	x0.FillBytes(xBuf[:])
	y0.FillBytes(yBuf[:])

	var xf, yf secp256k1.FieldVal
	xf.SetBytes(&xBuf)
	yf.SetBytes(&yBuf)

	pub := secp256k1.NewPublicKey(&xf, &yf)
	var j secp256k1.JacobianPoint
	pub.AsJacobian(&j)
	return G1{p: j}, nil
}

// Add returns p + q.
func (p G1) Add(q G1) G1 {
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &q.p, &r)
	return G1{p: r}
}

// Neg returns -p: same x, y negated in the base field.
func (p G1) Neg() G1 {
	if p.IsIdentity() {
		return Identity()
	}
	r := p.p
	r.Y.Negate(1)
	r.Y.Normalize()
	return G1{p: r}
}

// Sub returns p - q.
func (p G1) Sub(q G1) G1 {
	return p.Add(q.Neg())
}

// Mul returns k*p. k == 0 or p == O both yield O.
func (p G1) Mul(k field.Fq) G1 {
	if k.IsZero() || p.IsIdentity() {
		return Identity()
	}
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(field.Scalar(k), &p.p, &r)
	return G1{p: r}
}

// Equal reports equality, identity-aware.
func (p G1) Equal(q G1) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	a, b := p.p, q.p
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// Sum folds points left-to-right with Add, returning O for an empty slice.
func Sum(points ...G1) G1 {
	acc := Identity()
	for _, pt := range points {
		acc = acc.Add(pt)
	}
	return acc
}

// Compressed returns the 33-byte SEC1 compressed encoding. O has no
// encoding and returns ErrIdentityNotEncodable.
func (p G1) Compressed() ([CompressedSize]byte, error) {
	var out [CompressedSize]byte
	if p.IsIdentity() {
		return out, ErrIdentityNotEncodable
	}
	a := p.p
	a.ToAffine()
	pub := secp256k1.NewPublicKey(&a.X, &a.Y)
	copy(out[:], pub.SerializeCompressed())
	return out, nil
}

// Uncompressed returns the 65-byte 0x04||x||y encoding used for the
// Fiat-Shamir transcript. O has no encoding.
func (p G1) Uncompressed() ([UncompressedSize]byte, error) {
	var out [UncompressedSize]byte
	if p.IsIdentity() {
		return out, ErrIdentityNotEncodable
	}
	a := p.p
	a.ToAffine()
	pub := secp256k1.NewPublicKey(&a.X, &a.Y)
	copy(out[:], pub.SerializeUncompressed())
	return out, nil
}

// Decompress parses a 33-byte compressed point.
func Decompress(b []byte) (G1, error) {
	if len(b) != CompressedSize {
		return G1{}, ErrMalformedPoint
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return G1{}, ErrMalformedPoint
	}
	var j secp256k1.JacobianPoint
	pub.AsJacobian(&j)
	return G1{p: j}, nil
}
