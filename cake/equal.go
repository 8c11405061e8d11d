// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// equal.go — structural equality of resources, independent of identity.

package cake

// Equal reports whether a and b have the same kind and the same payload.
// Collections compare in order; spans compare after normalization.
//
// Contract:
//   • two nil resources are equal; nil and non-nil are not;
//   • resolution is not part of the payload and is ignored;
//   • counted resources compare item multiplicities.
//
// Complexity: O(size of the payload).
func Equal(a, b Resource) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case spanned:
		xs, ys := x.Spans(), b.(spanned).Spans()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if xs[i].Start.Cmp(ys[i].Start) != 0 || xs[i].Stop.Cmp(ys[i].Stop) != 0 {
				return false
			}
		}
		return true
	case *Counted:
		y := b.(*Counted)
		if len(x.items) != len(y.items) {
			return false
		}
		for k, n := range x.items {
			if y.items[k] != n {
				return false
			}
		}
		return true
	case *Collection:
		y := b.(*Collection)
		if len(x.items) != len(y.items) {
			return false
		}
		for i := range x.items {
			if x.items[i] != y.items[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
