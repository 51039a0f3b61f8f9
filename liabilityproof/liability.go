// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package liabilityproof implements Π₄: a per-customer proof that a
// balance lies in [0, 2^51) via 51 independent binary-commitment
// proofs, with a customer-private opening.
package liabilityproof

import (
	"crypto/sha256"
	"errors"
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/solvency/binaryproof"
	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/wire"
)

// Bits is the protocol-fixed balance range exponent: balances must fit
// in [0, 2^Bits).
const Bits = wire.LiabilityBits

// ErrBalanceOverflow is returned by Create when balance >= 2^Bits.
var ErrBalanceOverflow = errors.New("liabilityproof: balance does not fit in the liability bit range")

// Proof is Π₄. N and R are the customer-private salt and aggregated
// blinding; they are disclosed only to the customer, never published
// alongside the public bit proofs (see MarshalPublic).
type Proof struct {
	G, H curve.G1
	CID  [32]byte
	BitP [Bits]*binaryproof.Proof
	N    field.Fq
	R    *big.Int
}

// Create builds Π₄ for one customer. The per-bit proofs are constructed
// concurrently; their blinding contributions are folded into R with a
// single mutex-guarded big.Int accumulator, which is associative and so
// independent of completion order.
func Create(identifier []byte, balance uint64, g, h curve.G1) (*Proof, error) {
	if balance >= (uint64(1) << Bits) {
		return nil, ErrBalanceOverflow
	}

	n, err := field.Rand()
	if err != nil {
		return nil, err
	}
	nBytes := n.BytesBE()
	digest := sha256.New()
	digest.Write(identifier)
	digest.Write(nBytes[:])
	var cid [32]byte
	copy(cid[:], digest.Sum(nil))

	var bitProofs [Bits]*binaryproof.Proof
	var mu sync.Mutex
	r := new(big.Int)

	group := new(errgroup.Group)
	group.SetLimit(Bits)
	for i := 0; i < Bits; i++ {
		i := i
		group.Go(func() error {
			bit := field.FromUint64((balance >> uint(i)) & 1)
			ri, err := field.Rand()
			if err != nil {
				return err
			}
			bp, err := binaryproof.Create(bit, ri, g, h)
			if err != nil {
				return err
			}
			contribution := new(big.Int).Lsh(ri.BigInt(), uint(i))

			mu.Lock()
			bitProofs[i] = bp
			r.Add(r, contribution)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &Proof{G: g, H: h, CID: cid, BitP: bitProofs, N: n, R: r}, nil
}

// z returns Z = Σ 2^i * L_i, the group sum of the bit commitments. This
// is the liability's contribution to the Π₅ liability sum.
func (p *Proof) z() curve.G1 {
	acc := curve.Identity()
	for i, bp := range p.BitP {
		weight := field.FromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(i)))
		acc = acc.Add(bp.L.Mul(weight))
	}
	return acc
}

// Z exports z() for solvency aggregation.
func (p *Proof) Z() curve.G1 {
	return p.z()
}

// Verify checks that every one of the 51 bit proofs verifies. It does
// not check the customer opening; see VerifyAsCustomer.
func (p *Proof) Verify() bool {
	for _, bp := range p.BitP {
		if bp == nil || !bp.Verify() {
			return false
		}
	}
	return true
}

// VerifyAsCustomer checks the customer-private opening: that cid was
// derived from identifier and the disclosed salt, and that the bit-sum
// commitment Z equals balance*g + r*h with both reduced mod q.
func (p *Proof) VerifyAsCustomer(identifier []byte, balance uint64) bool {
	nBytes := p.N.BytesBE()
	digest := sha256.New()
	digest.Write(identifier)
	digest.Write(nBytes[:])
	var got [32]byte
	copy(got[:], digest.Sum(nil))
	if got != p.CID {
		return false
	}

	rhs := p.G.Mul(field.FromUint64(balance)).Add(p.H.Mul(field.FromBigInt(p.R)))
	return p.z().Equal(rhs)
}

// MarshalBinary encodes the full layout, including the customer-private
// (n, r) trailer: cid||51×binaryProof||n||r. The part up to and including
// n is a fixed 10009 bytes; r's minimal big-endian bytes follow.
func (p *Proof) MarshalBinary() ([]byte, error) {
	buf, err := p.marshalPublicBits()
	if err != nil {
		return nil, err
	}
	nBytes := p.N.BytesBE()
	buf = append(buf, nBytes[:]...)
	buf = append(buf, p.R.Bytes()...)
	return buf, nil
}

// MarshalPublic encodes only the public framing: cid||51×binaryProof,
// omitting the customer-private salt and blinding so an exchange can
// publish a proof without leaking a customer secret.
func (p *Proof) MarshalPublic() ([]byte, error) {
	return p.marshalPublicBits()
}

func (p *Proof) marshalPublicBits() ([]byte, error) {
	buf := make([]byte, 0, wire.LiabilityFixedSize)
	buf = append(buf, p.CID[:]...)
	for _, bp := range p.BitP {
		enc, err := bp.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, enc...)
	}
	return buf, nil
}

// UnmarshalBinary decodes the full layout produced by MarshalBinary,
// including the (n, r) trailer. r occupies the remainder of the buffer
// after the fixed-size salt.
func (p *Proof) UnmarshalBinary(b []byte) error {
	if err := wire.ExpectMinLen(b, wire.LiabilityFixedSize); err != nil {
		return err
	}

	var cid [32]byte
	copy(cid[:], b[:32])
	rest := b[32:]

	var bitProofs [Bits]*binaryproof.Proof
	for i := 0; i < Bits; i++ {
		var bp binaryproof.Proof
		if err := bp.UnmarshalBinary(rest[:wire.BinaryProofSize]); err != nil {
			return err
		}
		bitProofs[i] = &bp
		rest = rest[wire.BinaryProofSize:]
	}

	n, rest, err := wire.ReadScalar(rest)
	if err != nil {
		return err
	}
	r := new(big.Int).SetBytes(rest)

	p.G, p.H = curve.G(), curve.H()
	p.CID = cid
	p.BitP = bitProofs
	p.N = n
	p.R = r
	return nil
}
