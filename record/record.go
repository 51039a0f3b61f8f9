// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package record defines the account and customer record types the
// proof engine consumes, plus a bounded-concurrency Builder that drives
// a record source to completion. It is the core-facing boundary named
// in the specification's data flow ("account records -> AssetProof
// each; customer records -> LiabilityProof each") and deliberately
// stops there: no CLI, no on-disk store, no network transport lives
// here. Callers wire their own AccountSource/CustomerSource against
// whatever persistence or discovery layer they have.
package record

import (
	"errors"

	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/solvency/assetproof"
	"github.com/luxfi/solvency/curve"
	"github.com/luxfi/solvency/field"
	"github.com/luxfi/solvency/liabilityproof"
	"github.com/luxfi/solvency/solvencyproof"
)

// ErrBalanceTooLarge is returned when a record's balance does not fit
// in the uint64 the underlying proof constructors accept.
var ErrBalanceTooLarge = errors.New("record: balance exceeds uint64 range")

// AccountRecord is the exchange-side (optional private key, public key,
// balance) tuple from the specification's data model.
type AccountRecord struct {
	PrivateKey *field.Fq
	PublicKey  curve.G1
	Balance    *uint256.Int
}

// CustomerRecord is the (identifier, balance) tuple from the
// specification's data model.
type CustomerRecord struct {
	Identifier []byte
	Balance    *uint256.Int
}

// AccountSource pulls account records one at a time, returning
// ok == false once exhausted. Implementations backed by a CLI, a
// streaming data source, or an on-disk store are out of scope for this
// module; only the in-memory SliceAccountSource ships here.
type AccountSource interface {
	Next() (rec *AccountRecord, ok bool, err error)
}

// CustomerSource is the liability-side analogue of AccountSource.
type CustomerSource interface {
	Next() (rec *CustomerRecord, ok bool, err error)
}

// SliceAccountSource adapts an in-memory slice to AccountSource.
type SliceAccountSource struct {
	records []AccountRecord
	pos     int
}

// NewSliceAccountSource wraps records for sequential pull.
func NewSliceAccountSource(records []AccountRecord) *SliceAccountSource {
	return &SliceAccountSource{records: records}
}

// Next returns the next record, or ok == false once exhausted.
func (s *SliceAccountSource) Next() (*AccountRecord, bool, error) {
	if s.pos >= len(s.records) {
		return nil, false, nil
	}
	rec := s.records[s.pos]
	s.pos++
	return &rec, true, nil
}

// SliceCustomerSource adapts an in-memory slice to CustomerSource.
type SliceCustomerSource struct {
	records []CustomerRecord
	pos     int
}

// NewSliceCustomerSource wraps records for sequential pull.
func NewSliceCustomerSource(records []CustomerRecord) *SliceCustomerSource {
	return &SliceCustomerSource{records: records}
}

// Next returns the next record, or ok == false once exhausted.
func (s *SliceCustomerSource) Next() (*CustomerRecord, bool, error) {
	if s.pos >= len(s.records) {
		return nil, false, nil
	}
	rec := s.records[s.pos]
	s.pos++
	return &rec, true, nil
}

func balanceToUint64(b *uint256.Int) (uint64, error) {
	if !b.IsUint64() {
		return 0, ErrBalanceTooLarge
	}
	return b.Uint64(), nil
}

// Builder drives a record source to completion, building one proof per
// record with bounded concurrency and handing each to a caller-supplied
// sink. It generalizes the original builder/data-source loop so it is
// safe to fan out at the record level per the concurrency model.
type Builder struct {
	G, H        curve.G1
	Concurrency int
}

// NewBuilder returns a Builder over the fixed generators g, h, bounding
// concurrent proof construction at concurrency (at least 1).
func NewBuilder(g, h curve.G1, concurrency int) *Builder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Builder{G: g, H: h, Concurrency: concurrency}
}

// BuildAssets pulls every record from src, builds its AssetProof, and
// passes it to sink. sink is invoked sequentially, in source order,
// even though proof construction itself is parallelized.
func (b *Builder) BuildAssets(src AccountSource, sink func(*assetproof.Proof) error) error {
	group := new(errgroup.Group)
	group.SetLimit(b.Concurrency)

	var recs []*AccountRecord
	for {
		rec, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		recs = append(recs, rec)
	}
	results := make([]*assetproof.Proof, len(recs))
	for idx, rec := range recs {
		group.Go(func() error {
			bal, err := balanceToUint64(rec.Balance)
			if err != nil {
				return err
			}
			p, err := assetproof.Create(rec.PrivateKey, rec.PublicKey, bal, b.G, b.H)
			if err != nil {
				return err
			}
			results[idx] = p
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	for _, p := range results {
		if err := sink(p); err != nil {
			return err
		}
	}
	return nil
}

// BuildLiabilities pulls every record from src, builds its
// LiabilityProof, and passes it to sink in source order.
func (b *Builder) BuildLiabilities(src CustomerSource, sink func(*liabilityproof.Proof) error) error {
	group := new(errgroup.Group)
	group.SetLimit(b.Concurrency)

	var recs []*CustomerRecord
	for {
		rec, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		recs = append(recs, rec)
	}
	results := make([]*liabilityproof.Proof, len(recs))
	for idx, rec := range recs {
		group.Go(func() error {
			bal, err := balanceToUint64(rec.Balance)
			if err != nil {
				return err
			}
			p, err := liabilityproof.Create(rec.Identifier, bal, b.G, b.H)
			if err != nil {
				return err
			}
			results[idx] = p
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	for _, p := range results {
		if err := sink(p); err != nil {
			return err
		}
	}
	return nil
}

// BuildSolvency is a thin wrapper over solvencyproof.Create, completing
// the data flow from §2: both batches -> single SolvencyProof.
func (b *Builder) BuildSolvency(assets []*assetproof.Proof, liabilities []*liabilityproof.Proof) (*solvencyproof.Proof, error) {
	return solvencyproof.Create(assets, liabilities, b.H)
}
