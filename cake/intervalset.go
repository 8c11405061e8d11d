// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// intervalset.go — ordered, disjoint rational spans. Holes are allowed, and
// the representation is kept minimal: touching spans are merged on every
// mutation.

package cake

import (
	"fmt"
	"math/big"
)

// IntervalSet is a union of disjoint half-open spans.
type IntervalSet struct {
	spans      []Span
	resolution int
}

// NewIntervalSet builds a normalized set from spans. Every span must satisfy
// Start <= Stop (ErrInvalidInterval otherwise).
func NewIntervalSet(spans []Span, opts ...ResourceOption) (*IntervalSet, error) {
	for i, s := range spans {
		if _, err := NewSpan(s.Start, s.Stop); err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
	}
	cfg := newResourceConfig(opts...)
	return &IntervalSet{spans: normalizeSpans(spans), resolution: cfg.resolution}, nil
}

// Kind implements Resource.
func (s *IntervalSet) Kind() Kind { return KindIntervalSet }

// Spans returns a copy of the normalized spans.
func (s *IntervalSet) Spans() []Span { return cloneSpans(s.spans) }

// ActualValue returns the covered length.
func (s *IntervalSet) ActualValue() *big.Rat { return totalLength(s.spans) }

// Clone implements Resource.
func (s *IntervalSet) Clone() Resource {
	return &IntervalSet{spans: cloneSpans(s.spans), resolution: s.resolution}
}

// Remove subtracts piece; fails with ErrInsufficientSupply if not contained.
func (s *IntervalSet) Remove(piece Resource) error {
	ps, err := spansOf(piece)
	if err != nil {
		return err
	}
	rest, err := subtractSpans(s.spans, ps)
	if err != nil {
		return err
	}
	s.spans = rest
	return nil
}

// Append merges piece, coalescing touching and overlapping spans.
func (s *IntervalSet) Append(piece Resource) error {
	ps, err := spansOf(piece)
	if err != nil {
		return err
	}
	s.spans = unionSpans(s.spans, ps)
	return nil
}

// AsCollection slices the covered length into resolution equal-length
// pieces; a piece may straddle a hole.
func (s *IntervalSet) AsCollection() []Resource {
	total := totalLength(s.spans)
	if total.Sign() == 0 {
		return nil
	}
	step := ratQuo(total, ratInt(int64(s.resolution)))
	out := make([]Resource, 0, s.resolution)
	for i := 0; i < s.resolution; i++ {
		from := ratMul(step, ratInt(int64(i)))
		to := ratMul(step, ratInt(int64(i+1)))
		out = append(out, &IntervalSet{spans: sliceSpans(s.spans, from, to), resolution: 1})
	}
	return out
}

// FindPiece returns the leftmost sub-set that pref values at weight.
func (s *IntervalSet) FindPiece(pref Preference, weight *big.Rat) (Resource, error) {
	spans, err := findSpanPiece(s, pref, weight)
	if err != nil {
		return nil, err
	}
	return &IntervalSet{spans: spans, resolution: s.resolution}, nil
}

// CreatePieces implements Resource.
func (s *IntervalSet) CreatePieces(pref Preference, count int, weight *big.Rat) ([]Resource, error) {
	return createPieces(s, pref, count, weight)
}

// Compare implements Resource.
func (s *IntervalSet) Compare(other Resource) int { return compareActual(s, other) }

// String renders "{[a, b) [c, d)}".
func (s *IntervalSet) String() string { return formatSpans(s.spans) }
