// SPDX-License-Identifier: MIT

// Package cake models divisible goods ("cakes") and the participants'
// subjective valuations of them, and locates sub-pieces of a requested value.
//
// What:
//
//   - Resource: a good of one of four kinds
//   - Continuous   — a single half-open rational span [start, stop)
//   - IntervalSet  — ordered, disjoint spans (holes allowed)
//   - Counted      — item → multiplicity
//   - Collection   — ordered list of unique items
//   - Preference: one participant's valuation rule
//   - ContinuousPreference — rational density integrated by the trapezoid rule
//   - IntervalPreference   — piecewise-linear density, exact areas
//   - CountedPreference    — per-item values with optional demand limits
//   - CollectionPreference — per-item values
//   - OrdinalPreference    — rank order turned into synthetic values
//   - Piece finder: FindPiece / CreatePieces on every resource kind.
//
// Arithmetic:
//
//	All magnitudes and values are *big.Rat. Nothing in this package uses
//	floating point, so two runs over the same inputs produce identical pieces.
//
// Piece finding:
//
//   - Discrete kinds enumerate subsets of the items whose individual value
//     does not exceed the target, by size and then lexicographically in item
//     order. An exact match returns immediately; otherwise the first subset
//     with the largest value not above the target wins.
//     Time O(2^k) for k candidate units. Callers bound k.
//   - Span kinds run a Stern–Brocot mediant search over the cut fraction of
//     the covered length and stop once the piece is within 1/Resolution()
//     of the target, as seen by the requesting preference.
//
// Errors:
//
//   - ErrWeightUnattainable  target exceeds what the preference sees
//   - ErrInsufficientSupply  removing a piece that is not contained
//   - ErrInvalidInterval     span with start > stop
//   - ErrFragmented          continuous resource would split into several spans
//   - ErrKindMismatch        preference or piece of the wrong kind
//   - ErrNegativeCount, ErrDuplicateItem, ErrInvalidCount, ErrZeroValue,
//     ErrNoConvergence
//
// Concurrency:
//
//	Resources are not safe for concurrent mutation. Preferences are read-only
//	after construction (Normalize/Update excepted) and may be shared by
//	concurrent readers.
package cake
