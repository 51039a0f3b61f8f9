// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package field implements arithmetic over the secp256k1 generator
// subgroup's scalar field Fq, where q is the order of the curve's base
// point. Every Provisions Sigma-protocol witness and response lives in
// this field.
package field

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ByteSize is the fixed big-endian encoding length of an Fq element.
const ByteSize = 32

// ErrRNGFailure is returned when the cryptographic RNG cannot be read.
var ErrRNGFailure = errors.New("field: failed to read from crypto/rand")

// Fq is a value in [0, q). Values are immutable; every operation returns a
// new Fq rather than mutating the receiver.
type Fq struct {
	v secp256k1.ModNScalar
}

// Order returns q, the order of the secp256k1 base point's subgroup.
func Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

// Zero is the additive identity.
func Zero() Fq {
	return Fq{}
}

// One is the multiplicative identity.
func One() Fq {
	var v secp256k1.ModNScalar
	v.SetInt(1)
	return Fq{v: v}
}

// FromUint64 builds an Fq element from a small unsigned integer.
func FromUint64(x uint64) Fq {
	var v secp256k1.ModNScalar
	var buf [ByteSize]byte
	big.NewInt(0).SetUint64(x).FillBytes(buf[:])
	v.SetBytes(&buf)
	return Fq{v: v}
}

// FromBytesBE builds an Fq element from an unsigned big-endian byte string
// of arbitrary length, reducing modulo q.
func FromBytesBE(b []byte) Fq {
	i := new(big.Int).SetBytes(b)
	i.Mod(i, Order())
	var buf [ByteSize]byte
	i.FillBytes(buf[:])
	var v secp256k1.ModNScalar
	v.SetBytes(&buf)
	return Fq{v: v}
}

// FromBigInt reduces a signed big.Int into [0, q), mapping negatives by
// adding q until the value is nonnegative.
func FromBigInt(i *big.Int) Fq {
	r := new(big.Int).Mod(i, Order())
	if r.Sign() < 0 {
		r.Add(r, Order())
	}
	var buf [ByteSize]byte
	r.FillBytes(buf[:])
	var v secp256k1.ModNScalar
	v.SetBytes(&buf)
	return Fq{v: v}
}

// FromInt64 maps a signed machine integer into [0, q).
func FromInt64(x int64) Fq {
	return FromBigInt(big.NewInt(x))
}

// Rand draws a uniform element of [0, q) from a cryptographically secure
// source.
func Rand() (Fq, error) {
	var buf [ByteSize]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Fq{}, ErrRNGFailure
	}
	return FromBytesBE(buf[:]), nil
}

// BytesBE returns the fixed 32-byte big-endian encoding, left-padded with
// zeros.
func (a Fq) BytesBE() [ByteSize]byte {
	return a.v.Bytes()
}

// BigInt returns the value as an unsigned big.Int, useful for the
// unbounded accumulations liability and solvency proofs perform outside
// the field (see field.Fq's companion integer accumulators in
// liabilityproof/solvencyproof).
func (a Fq) BigInt() *big.Int {
	buf := a.v.Bytes()
	return new(big.Int).SetBytes(buf[:])
}

// IsZero reports whether a is the additive identity.
func (a Fq) IsZero() bool {
	return a.v.IsZero()
}

// IsBinary reports whether a is 0 or 1.
func (a Fq) IsBinary() bool {
	return a.IsZero() || a.Equal(One())
}

// Equal reports numeric equality.
func (a Fq) Equal(b Fq) bool {
	return a.v.Equals(&b.v)
}

// Add returns a + b mod q.
func (a Fq) Add(b Fq) Fq {
	var r secp256k1.ModNScalar
	r.Set(&a.v)
	r.Add(&b.v)
	return Fq{v: r}
}

// Sub returns a - b mod q.
func (a Fq) Sub(b Fq) Fq {
	return a.Add(b.Neg())
}

// Mul returns a * b mod q.
func (a Fq) Mul(b Fq) Fq {
	var r secp256k1.ModNScalar
	r.Set(&a.v)
	r.Mul(&b.v)
	return Fq{v: r}
}

// Neg returns -a mod q.
func (a Fq) Neg() Fq {
	var r secp256k1.ModNScalar
	r.Set(&a.v)
	r.Negate()
	return Fq{v: r}
}

// scalar exposes the underlying ModNScalar for the curve package, which
// needs it for scalar multiplication. The exported Scalar wrapper below
// is the only other way to reach it.
func (a Fq) scalar() *secp256k1.ModNScalar {
	return &a.v
}

// Scalar is the accessor curve.G1 uses to reach the underlying
// secp256k1.ModNScalar without exporting the field.
func Scalar(a Fq) *secp256k1.ModNScalar {
	return a.scalar()
}
