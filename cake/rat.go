// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// rat.go — exact rational helpers and value sums over pieces.
//
// Conventions:
//   • every helper returns a fresh *big.Rat; arguments are never mutated,
//   • ratMin/ratMax return one of their arguments, not a copy; callers that
//     go on to mutate the result copy it first.

package cake

import "math/big"

// R builds the rational a/b. It panics on b == 0, like big.NewRat.
// Intended for literals in callers and tests.
func R(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}

// ParseRat parses "3", "1/3" or "0.25" into an exact rational.
// Decimal input is converted exactly ("0.1" is 1/10, not a float).
// The bool is false for anything big.Rat.SetString rejects.
func ParseRat(s string) (*big.Rat, bool) {
	return new(big.Rat).SetString(s)
}

func zero() *big.Rat { return new(big.Rat) }

func ratInt(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

func ratCopy(x *big.Rat) *big.Rat { return new(big.Rat).Set(x) }

func ratAdd(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func ratSub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func ratMul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func ratQuo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

func ratMin(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func ratMax(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func ratAbs(x *big.Rat) *big.Rat { return new(big.Rat).Abs(x) }

// Sum adds the values of all pieces under pref.
//
// Complexity: O(len(pieces) · cost(ValueOf)).
func Sum(pref Preference, pieces []Resource) *big.Rat {
	total := zero()
	for _, p := range pieces {
		total.Add(total, pref.ValueOf(p))
	}
	return total
}

// TotalActual adds ActualValue over pieces.
func TotalActual(pieces []Resource) *big.Rat {
	total := zero()
	for _, p := range pieces {
		total.Add(total, p.ActualValue())
	}
	return total
}
