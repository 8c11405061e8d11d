// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// continuous.go — a single half-open span [start, stop), e.g. a strip of
// beach front. Pieces found on it are always prefixes, so the protocols that
// cut from the left never fragment it.

package cake

import (
	"fmt"
	"math/big"
)

// Continuous is the resource [start, stop) over the rationals.
// An exhausted Continuous is the empty span [stop, stop).
type Continuous struct {
	span       Span
	resolution int
}

// NewContinuous builds [start, stop). It fails with ErrInvalidInterval when
// start > stop.
func NewContinuous(start, stop *big.Rat, opts ...ResourceOption) (*Continuous, error) {
	s, err := NewSpan(start, stop)
	if err != nil {
		return nil, err
	}
	cfg := newResourceConfig(opts...)
	return &Continuous{span: s, resolution: cfg.resolution}, nil
}

// Kind implements Resource.
func (c *Continuous) Kind() Kind { return KindContinuous }

// Start returns a copy of the left bound.
func (c *Continuous) Start() *big.Rat { return ratCopy(c.span.Start) }

// Stop returns a copy of the right bound.
func (c *Continuous) Stop() *big.Rat { return ratCopy(c.span.Stop) }

// Spans returns the covered spans (zero or one).
func (c *Continuous) Spans() []Span {
	if c.span.Empty() {
		return nil
	}
	return []Span{c.span.clone()}
}

// ActualValue returns stop - start.
func (c *Continuous) ActualValue() *big.Rat { return c.span.Length() }

// Clone implements Resource.
func (c *Continuous) Clone() Resource {
	return &Continuous{span: c.span.clone(), resolution: c.resolution}
}

// setSpans replaces the payload, enforcing the single-span invariant.
// anchor is the bound kept when the result is empty.
func (c *Continuous) setSpans(spans []Span, anchor *big.Rat) error {
	switch len(spans) {
	case 0:
		c.span = Span{Start: ratCopy(anchor), Stop: ratCopy(anchor)}
		return nil
	case 1:
		c.span = spans[0].clone()
		return nil
	default:
		return fmt.Errorf("%d spans %s: %w", len(spans), formatSpans(spans), ErrFragmented)
	}
}

// Remove cuts piece out of c. The piece must be contained in c and must
// touch one of its ends; an interior piece fails with ErrFragmented.
func (c *Continuous) Remove(piece Resource) error {
	ps, err := spansOf(piece)
	if err != nil {
		return err
	}
	rest, err := subtractSpans(c.Spans(), ps)
	if err != nil {
		return err
	}
	return c.setSpans(rest, c.span.Stop)
}

// Append merges piece into c. The union must remain a single span.
func (c *Continuous) Append(piece Resource) error {
	ps, err := spansOf(piece)
	if err != nil {
		return err
	}
	return c.setSpans(unionSpans(c.Spans(), ps), c.span.Stop)
}

// AsCollection slices c into resolution equal-length pieces.
func (c *Continuous) AsCollection() []Resource {
	if c.span.Empty() {
		return nil
	}
	step := ratQuo(c.span.Length(), ratInt(int64(c.resolution)))
	out := make([]Resource, 0, c.resolution)
	lo := ratCopy(c.span.Start)
	for i := 1; i <= c.resolution; i++ {
		var hi *big.Rat
		if i == c.resolution {
			hi = ratCopy(c.span.Stop)
		} else {
			hi = ratAdd(c.span.Start, ratMul(step, ratInt(int64(i))))
		}
		out = append(out, &Continuous{span: Span{Start: lo, Stop: hi}, resolution: 1})
		lo = ratCopy(hi)
	}
	return out
}

// FindPiece returns the prefix [start, x) that pref values at weight.
func (c *Continuous) FindPiece(pref Preference, weight *big.Rat) (Resource, error) {
	spans, err := findSpanPiece(c, pref, weight)
	if err != nil {
		return nil, err
	}
	piece := &Continuous{resolution: c.resolution}
	if err := piece.setSpans(spans, c.span.Start); err != nil {
		return nil, err
	}
	return piece, nil
}

// CreatePieces implements Resource.
func (c *Continuous) CreatePieces(pref Preference, count int, weight *big.Rat) ([]Resource, error) {
	return createPieces(c, pref, count, weight)
}

// Compare implements Resource.
func (c *Continuous) Compare(other Resource) int { return compareActual(c, other) }

// String renders "[start, stop)".
func (c *Continuous) String() string { return c.span.String() }

func compareActual(a, b Resource) int {
	return a.ActualValue().Cmp(b.ActualValue())
}
