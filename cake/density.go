// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// density.go — piecewise-linear valuation densities over [0, 1].
//
// Construction from points (x, y), x strictly increasing in [0, 1]:
//   • a point at x == 0 only sets the starting height;
//   • every later point closes the segment from the previous point;
//   • if the last point is left of 1, a closing segment falls to (1, 0).
// Areas are exact: on a segment y = m·x + b, ∫ = m·x²/2 + b·x.

package cake

import (
	"fmt"
	"math/big"
)

// Point is a density sample (X, Y).
type Point struct {
	X *big.Rat
	Y *big.Rat
}

// P builds a Point from integer fractions: P(1, 2, 3, 1) is (1/2, 3).
func P(xn, xd, yn, yd int64) Point {
	return Point{X: R(xn, xd), Y: R(yn, yd)}
}

// Segment is one linear piece of a density, valid on [X1, X2].
type Segment struct {
	X1, Y1 *big.Rat
	X2, Y2 *big.Rat
	m, b   *big.Rat
}

func newSegment(x1, y1, x2, y2 *big.Rat) (Segment, error) {
	if x1.Cmp(x2) >= 0 {
		return Segment{}, fmt.Errorf("segment x %s >= %s: %w", x1.RatString(), x2.RatString(), ErrInvalidDensity)
	}
	m := ratQuo(ratSub(y2, y1), ratSub(x2, x1))
	b := ratSub(y1, ratMul(m, x1))
	return Segment{X1: ratCopy(x1), Y1: ratCopy(y1), X2: ratCopy(x2), Y2: ratCopy(y2), m: m, b: b}, nil
}

// primitive evaluates m·x²/2 + b·x.
func (s Segment) primitive(x *big.Rat) *big.Rat {
	sq := ratMul(x, x)
	return ratAdd(ratQuo(ratMul(s.m, sq), ratInt(2)), ratMul(s.b, x))
}

// Area integrates the segment over [a, b] clipped to its own domain.
func (s Segment) Area(a, b *big.Rat) *big.Rat {
	l, r := ratMax(s.X1, a), ratMin(s.X2, b)
	if l.Cmp(r) >= 0 {
		return zero()
	}
	return ratSub(s.primitive(r), s.primitive(l))
}

// At evaluates the segment line at x.
func (s Segment) At(x *big.Rat) *big.Rat {
	return ratAdd(ratMul(s.m, x), s.b)
}

// String renders "(x1, y1) - (x2, y2)".
func (s Segment) String() string {
	return fmt.Sprintf("(%s, %s) - (%s, %s)", s.X1.RatString(), s.Y1.RatString(), s.X2.RatString(), s.Y2.RatString())
}

// Density is a piecewise-linear, non-negative function on [0, 1].
type Density struct {
	segments []Segment
}

// NewDensity builds a density from points; see the file header for the rules.
func NewDensity(points []Point) (*Density, error) {
	var (
		one  = ratInt(1)
		ox   = zero()
		oy   = zero()
		segs []Segment
	)
	for i, p := range points {
		if p.X == nil || p.Y == nil {
			return nil, fmt.Errorf("point %d nil: %w", i, ErrInvalidDensity)
		}
		if p.Y.Sign() < 0 || p.X.Sign() < 0 || p.X.Cmp(one) > 0 {
			return nil, fmt.Errorf("point %d (%s, %s): %w", i, p.X.RatString(), p.Y.RatString(), ErrInvalidDensity)
		}
		if p.X.Sign() == 0 {
			if i != 0 {
				return nil, fmt.Errorf("point %d repeats x=0: %w", i, ErrInvalidDensity)
			}
			oy = ratCopy(p.Y)
			continue
		}
		seg, err := newSegment(ox, oy, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		segs = append(segs, seg)
		ox, oy = ratCopy(p.X), ratCopy(p.Y)
	}
	if ox.Cmp(one) < 0 {
		seg, err := newSegment(ox, oy, one, zero())
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return &Density{segments: segs}, nil
}

// Uniform returns the constant density y = 1 on [0, 1].
func Uniform() *Density {
	d, _ := NewDensity([]Point{P(0, 1, 1, 1), P(1, 1, 1, 1)})
	return d
}

// Segments returns the linear pieces in x order.
func (d *Density) Segments() []Segment {
	return append([]Segment(nil), d.segments...)
}

// Area integrates the density over [a, b].
func (d *Density) Area(a, b *big.Rat) *big.Rat {
	total := zero()
	for _, s := range d.segments {
		total.Add(total, s.Area(a, b))
	}
	return total
}

// At evaluates the density at x; 0 outside [0, 1].
func (d *Density) At(x *big.Rat) *big.Rat {
	for _, s := range d.segments {
		if s.X1.Cmp(x) <= 0 && x.Cmp(s.X2) <= 0 {
			return s.At(x)
		}
	}
	return zero()
}

// scaled returns a copy with every height multiplied by k.
func (d *Density) scaled(k *big.Rat) *Density {
	out := &Density{segments: make([]Segment, len(d.segments))}
	for i, s := range d.segments {
		ns, _ := newSegment(s.X1, ratMul(s.Y1, k), s.X2, ratMul(s.Y2, k))
		out.segments[i] = ns
	}
	return out
}
