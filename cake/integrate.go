// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// integrate.go — exact quadrature for function-backed preferences.

package cake

import "math/big"

// Trapezoid approximates the integral of f over [a, b] with n equal steps
// (trapezoidal rule) in exact rational arithmetic. It is exact for
// piecewise-linear f whose breakpoints fall on the grid. n < 1 means 1.
// Complexity: O(n) evaluations of f.
func Trapezoid(f func(x *big.Rat) *big.Rat, a, b *big.Rat, n int) *big.Rat {
	if a.Cmp(b) >= 0 {
		return zero()
	}
	if n < 1 {
		n = 1
	}
	h := ratQuo(ratSub(b, a), ratInt(int64(n)))
	s := ratAdd(f(a), f(b))
	x := ratCopy(a)
	two := ratInt(2)
	for i := 1; i < n; i++ {
		x.Add(x, h)
		s.Add(s, ratMul(two, f(ratCopy(x))))
	}
	return ratQuo(ratMul(s, h), two)
}
