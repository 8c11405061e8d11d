// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// span.go — half-open rational spans and the set algebra shared by the
// Continuous and IntervalSet kinds.
//
// Representation invariant for a normalized []Span:
//   • every span has Start < Stop (empty spans are dropped),
//   • spans are sorted by Start,
//   • consecutive spans neither overlap nor touch (touching spans are merged).

package cake

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Span is the half-open interval [Start, Stop) over the rationals.
type Span struct {
	Start *big.Rat
	Stop  *big.Rat
}

// NewSpan validates start <= stop and returns a span owning copies of both.
func NewSpan(start, stop *big.Rat) (Span, error) {
	if start == nil || stop == nil {
		return Span{}, fmt.Errorf("nil bound: %w", ErrInvalidInterval)
	}
	if start.Cmp(stop) > 0 {
		return Span{}, fmt.Errorf("[%s, %s): %w", start.RatString(), stop.RatString(), ErrInvalidInterval)
	}
	return Span{Start: ratCopy(start), Stop: ratCopy(stop)}, nil
}

// Length returns Stop - Start.
func (s Span) Length() *big.Rat {
	return ratSub(s.Stop, s.Start)
}

// Empty reports whether the span covers nothing.
func (s Span) Empty() bool {
	return s.Start.Cmp(s.Stop) >= 0
}

// String renders "[start, stop)".
func (s Span) String() string {
	return fmt.Sprintf("[%s, %s)", s.Start.RatString(), s.Stop.RatString())
}

func (s Span) clone() Span {
	return Span{Start: ratCopy(s.Start), Stop: ratCopy(s.Stop)}
}

func cloneSpans(spans []Span) []Span {
	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = s.clone()
	}
	return out
}

// normalizeSpans returns a fresh normalized copy of spans.
// Complexity: O(k log k).
func normalizeSpans(spans []Span) []Span {
	work := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.Empty() {
			work = append(work, s.clone())
		}
	}
	sort.SliceStable(work, func(i, j int) bool {
		return work[i].Start.Cmp(work[j].Start) < 0
	})

	out := work[:0]
	for _, s := range work {
		if n := len(out); n > 0 && s.Start.Cmp(out[n-1].Stop) <= 0 {
			// overlapping or touching: extend the previous span
			out[n-1].Stop = ratMax(out[n-1].Stop, s.Stop)
			continue
		}
		out = append(out, s)
	}
	return out
}

// totalLength sums the span lengths.
func totalLength(spans []Span) *big.Rat {
	total := zero()
	for _, s := range spans {
		total.Add(total, s.Length())
	}
	return total
}

// covers reports whether a single span of normalized from contains p.
// A p straddling a hole is not covered even when its length fits.
//
// Complexity: O(len(from)).
func covers(from []Span, p Span) bool {
	for _, s := range from {
		if s.Start.Cmp(p.Start) <= 0 && p.Stop.Cmp(s.Stop) <= 0 {
			return true
		}
	}
	return false
}

// subtractSpans returns from \ piece, failing with ErrInsufficientSupply when
// piece is not contained in from. Both inputs are left untouched.
//
// Contract:
//   • containment is checked span by span before anything is cut, so a
//     failed call has no partial effect;
//   • the result is normalized; cutting the middle of a span leaves two.
//
// Complexity: O(|piece| · |from|) after the O(k log k) normalizations.
func subtractSpans(from, piece []Span) ([]Span, error) {
	from = normalizeSpans(from)
	piece = normalizeSpans(piece)
	for _, p := range piece {
		if !covers(from, p) {
			return nil, fmt.Errorf("span %s: %w", p, ErrInsufficientSupply)
		}
	}

	out := from
	for _, p := range piece {
		next := make([]Span, 0, len(out)+1)
		for _, s := range out {
			if p.Stop.Cmp(s.Start) <= 0 || p.Start.Cmp(s.Stop) >= 0 {
				next = append(next, s)
				continue
			}
			if s.Start.Cmp(p.Start) < 0 {
				next = append(next, Span{Start: s.Start, Stop: ratCopy(p.Start)})
			}
			if p.Stop.Cmp(s.Stop) < 0 {
				next = append(next, Span{Start: ratCopy(p.Stop), Stop: s.Stop})
			}
		}
		out = next
	}
	return normalizeSpans(out), nil
}

// unionSpans merges a and b into a normalized set.
func unionSpans(a, b []Span) []Span {
	all := make([]Span, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return normalizeSpans(all)
}

// prefixSpans returns the leftmost part of normalized spans whose total
// length is min(m, totalLength(spans)).
//
// Holes do not count toward m: the prefix of {[0,1/4) [1/2,1)} with m = 1/2
// is {[0,1/4) [1/2,3/4)}. m <= 0 yields an empty slice. The last span may be
// cut; every other span is a clone of the input.
//
// Complexity: O(len(spans)).
func prefixSpans(spans []Span, m *big.Rat) []Span {
	remaining := ratCopy(m)
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if remaining.Sign() <= 0 {
			break
		}
		l := s.Length()
		if remaining.Cmp(l) >= 0 {
			out = append(out, s.clone())
			remaining.Sub(remaining, l)
			continue
		}
		out = append(out, Span{Start: ratCopy(s.Start), Stop: ratAdd(s.Start, remaining)})
		break
	}
	return out
}

// sliceSpans returns the part of spans lying between covered measure from
// and covered measure to (0 <= from <= to).
func sliceSpans(spans []Span, from, to *big.Rat) []Span {
	head := prefixSpans(spans, from)
	upto := prefixSpans(spans, to)
	out, err := subtractSpans(upto, head)
	if err != nil {
		// head is always a prefix of upto
		return nil
	}
	return out
}

func formatSpans(spans []Span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// spansOf extracts the spans of a span-backed piece.
func spansOf(piece Resource) ([]Span, error) {
	sp, ok := piece.(spanned)
	if !ok {
		return nil, fmt.Errorf("%s piece on span resource: %w", piece.Kind(), ErrKindMismatch)
	}
	return sp.Spans(), nil
}
