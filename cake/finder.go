// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// finder.go — the piece finder behind FindPiece and CreatePieces.
//
// Discrete kinds (Counted, Collection):
//   1) value every unit on its own; drop units worth more than the target,
//      they cannot appear in any subset at or below it;
//   2) enumerate the non-empty subsets of the survivors by size, then
//      lexicographically by unit position (unit order = item order);
//   3) an exact match returns at once; otherwise keep the first subset with
//      the largest value not above the target.
//   Time O(2^k · cost(ValueOf)) for k survivors. Granularity is the caller's
//   responsibility; there is no internal timeout.
//
// Span kinds (Continuous, IntervalSet):
//   Stern–Brocot mediant search over the cut fraction t ∈ (0,1) of the
//   covered length. The candidate is the leftmost prefix covering t·length.
//   Runs of same-direction moves are galloped, so cuts near 0 or 1 cost
//   logarithmically many evaluations rather than linearly many.
//   Terminates when |value - target| <= 1/Resolution() of the requesting
//   preference, or fails after MaxBisectionSteps evaluations.

package cake

import (
	"fmt"
	"math/big"
)

// discrete is implemented by unit-decomposable resources.
type discrete interface {
	Resource
	units() []string
	fromUnits(units []string) Resource
}

// checkAttainable fails fast, before any search work.
func checkAttainable(r Resource, pref Preference, weight *big.Rat) error {
	if !pref.Supports(r.Kind()) {
		return fmt.Errorf("preference %q on %s resource: %w", pref.ID(), r.Kind(), ErrKindMismatch)
	}
	if weight == nil || weight.Sign() < 0 {
		return fmt.Errorf("weight %v: %w", weight, ErrWeightUnattainable)
	}
	if have := pref.ValueOf(r); have.Cmp(weight) < 0 {
		return fmt.Errorf("preference %q sees %s, want %s: %w",
			pref.ID(), have.RatString(), weight.RatString(), ErrWeightUnattainable)
	}
	return nil
}

func findDiscretePiece(r discrete, pref Preference, weight *big.Rat) (Resource, error) {
	if err := checkAttainable(r, pref, weight); err != nil {
		return nil, err
	}
	if weight.Sign() == 0 {
		return r.fromUnits(nil), nil
	}

	var candidates []string
	for _, u := range r.units() {
		if pref.ValueOf(r.fromUnits([]string{u})).Cmp(weight) <= 0 {
			candidates = append(candidates, u)
		}
	}

	var (
		best    []string
		bestVal = zero()
		subset  = make([]string, 0, len(candidates))
	)
	forEachSubset(len(candidates), func(idx []int) bool {
		subset = subset[:0]
		for _, i := range idx {
			subset = append(subset, candidates[i])
		}
		v := pref.ValueOf(r.fromUnits(subset))
		switch c := v.Cmp(weight); {
		case c == 0:
			best = append(best[:0:0], subset...)
			return true
		case c < 0 && v.Cmp(bestVal) > 0:
			best = append(best[:0:0], subset...)
			bestVal = v
		}
		return false
	})
	return r.fromUnits(best), nil
}

// forEachSubset visits every non-empty subset of {0..n-1} as a sorted index
// slice: all subsets of size 1 first, then size 2, and so on, each size in
// lexicographic order. visit returning true stops the walk; the return value
// reports whether it was stopped. The slice is reused between calls.
// Visits 2^n - 1 subsets when never stopped.
func forEachSubset(n int, visit func(idx []int) bool) bool {
	for k := 1; k <= n; k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if visit(idx) {
				return true
			}
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
	return false
}

// tolerance returns 1/R for the preference's resolution.
func tolerance(pref Preference) *big.Rat {
	res := pref.Resolution()
	if res < 1 {
		res = DefaultResolution
	}
	return big.NewRat(1, int64(res))
}

// asPiece wraps spans in a resource of the same kind as r for ValueOf.
func asPiece(r spanned, spans []Span) Resource {
	if r.Kind() == KindContinuous && len(spans) <= 1 {
		c := &Continuous{resolution: 1}
		if len(spans) == 1 {
			c.span = spans[0]
		} else {
			c.span = Span{Start: zero(), Stop: zero()}
		}
		return c
	}
	return &IntervalSet{spans: spans, resolution: 1}
}

// node is a Stern–Brocot fraction n/d kept unreduced.
type node struct{ n, d *big.Int }

// plus returns a + k·b, component-wise.
func (a node) plus(b node, k *big.Int) node {
	return node{
		n: new(big.Int).Add(a.n, new(big.Int).Mul(k, b.n)),
		d: new(big.Int).Add(a.d, new(big.Int).Mul(k, b.d)),
	}
}

func (a node) rat() *big.Rat { return new(big.Rat).SetFrac(a.n, a.d) }

// findSpanPiece walks the Stern–Brocot tree between low and high.
//
// A run of moves in one direction visits base + k·toward for k = 1, 2, ...;
// the run is galloped (k doubles) and then bisected back to the first k that
// leaves the run, so each partial quotient q of the cut costs O(log q)
// evaluations instead of q. The result is the same node a one-step walk
// would stop at.
//
// Complexity: O(Σ log qᵢ · cost(ValueOf)) over the partial quotients qᵢ of the
// accepted cut, at most MaxBisectionSteps evaluations.
func findSpanPiece(r spanned, pref Preference, weight *big.Rat) ([]Span, error) {
	if err := checkAttainable(r, pref, weight); err != nil {
		return nil, err
	}
	spans := r.Spans()
	if weight.Sign() == 0 {
		return nil, nil
	}
	if pref.ValueOf(r).Cmp(weight) == 0 {
		return spans, nil
	}

	var (
		total = totalLength(spans)
		tol   = tolerance(pref)
		low   = node{big.NewInt(0), big.NewInt(1)}
		high  = node{big.NewInt(1), big.NewInt(1)}
		one   = big.NewInt(1)
		steps int
	)
	// side is -1 below the target, +1 above it and 0 within tolerance.
	side := func(t node) ([]Span, int) {
		steps++
		piece := prefixSpans(spans, ratMul(total, t.rat()))
		diff := ratSub(pref.ValueOf(asPiece(r, piece)), weight)
		if ratAbs(diff).Cmp(tol) <= 0 {
			return piece, 0
		}
		return piece, diff.Sign()
	}
	failed := func() error {
		return fmt.Errorf("weight %s after %d steps: %w", weight.RatString(), steps, ErrNoConvergence)
	}

	for steps < MaxBisectionSteps {
		piece, dir := side(low.plus(high, one))
		if dir == 0 {
			return piece, nil
		}
		base, toward := low, high
		if dir > 0 {
			base, toward = high, low
		}

		// gallop: good stays on dir's side, bad is the first k seen off it
		var (
			good     = big.NewInt(1)
			bad      *big.Int
			badPiece []Span
			badSide  int
		)
		for k := big.NewInt(2); bad == nil; k = new(big.Int).Lsh(k, 1) {
			if steps >= MaxBisectionSteps {
				return nil, failed()
			}
			p, s := side(base.plus(toward, k))
			if s == dir {
				good = k
				continue
			}
			bad, badPiece, badSide = k, p, s
		}
		// bisect (good, bad) down to adjacent k
		for new(big.Int).Sub(bad, good).Cmp(one) > 0 {
			if steps >= MaxBisectionSteps {
				return nil, failed()
			}
			mid := new(big.Int).Add(good, bad)
			mid.Rsh(mid, 1)
			p, s := side(base.plus(toward, mid))
			if s == dir {
				good = mid
				continue
			}
			bad, badPiece, badSide = mid, p, s
		}
		if badSide == 0 {
			return badPiece, nil
		}
		if dir < 0 {
			low, high = base.plus(toward, good), base.plus(toward, bad)
		} else {
			high, low = base.plus(toward, good), base.plus(toward, bad)
		}
	}
	return nil, failed()
}

// createPieces splits a clone of r into count pieces; see Resource.CreatePieces.
func createPieces(r Resource, pref Preference, count int, weight *big.Rat) ([]Resource, error) {
	if count < 1 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidCount)
	}
	if !pref.Supports(r.Kind()) {
		return nil, fmt.Errorf("preference %q on %s resource: %w", pref.ID(), r.Kind(), ErrKindMismatch)
	}
	if weight == nil {
		weight = ratQuo(pref.ValueOf(r), ratInt(int64(count)))
	}

	var (
		work = r.Clone()
		tol  = tolerance(pref)
		out  = make([]Resource, 0, count)
	)
	for i := 0; i < count-1; i++ {
		w := weight
		if r.Kind().IsSpan() {
			// earlier span pieces may each overshoot by up to 1/R
			have := pref.ValueOf(work)
			if have.Cmp(w) < 0 && ratSub(w, have).Cmp(ratMul(tol, ratInt(int64(i)))) <= 0 {
				w = have
			}
		}
		piece, err := work.FindPiece(pref, w)
		if err != nil {
			return nil, fmt.Errorf("piece %d of %d: %w", i+1, count, err)
		}
		if err := work.Remove(piece); err != nil {
			return nil, fmt.Errorf("piece %d of %d: %w", i+1, count, err)
		}
		out = append(out, piece)
	}
	return append(out, work), nil
}
