// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// errors.go — sentinel errors for resources, preferences and piece finding.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   • Nothing in this package panics on caller input; option constructors
//     (WithX) are the only place that panics, on meaningless values.

package cake

import "errors"

var (
	// ErrWeightUnattainable is returned by FindPiece/CreatePieces when the
	// requested weight exceeds the value the preference sees in the resource,
	// or when the weight is negative.
	ErrWeightUnattainable = errors.New("cake: weight unattainable")

	// ErrInsufficientSupply is returned by Remove when the piece is not
	// contained in the resource.
	ErrInsufficientSupply = errors.New("cake: insufficient supply")

	// ErrInvalidInterval is returned when a span is built with start > stop.
	ErrInvalidInterval = errors.New("cake: invalid interval")

	// ErrFragmented is returned when an operation on a Continuous resource
	// would leave it as more than one span.
	ErrFragmented = errors.New("cake: continuous resource would fragment")

	// ErrKindMismatch is returned when a piece or preference does not match
	// the resource kind.
	ErrKindMismatch = errors.New("cake: resource kind mismatch")

	// ErrNegativeCount is returned when a Counted resource is built with a
	// negative multiplicity.
	ErrNegativeCount = errors.New("cake: negative multiplicity")

	// ErrDuplicateItem is returned when a Collection is built with repeated items.
	ErrDuplicateItem = errors.New("cake: duplicate item")

	// ErrInvalidCount is returned by CreatePieces when count < 1 and by
	// RandomCollection when n < 0.
	ErrInvalidCount = errors.New("cake: piece count must be >= 1")

	// ErrZeroValue is returned by Normalize when the whole resource is worth
	// nothing to the preference, so no scale factor exists.
	ErrZeroValue = errors.New("cake: resource has zero value")

	// ErrNoConvergence is returned when the continuous search exceeds
	// MaxBisectionSteps without reaching the tolerance.
	ErrNoConvergence = errors.New("cake: piece search did not converge")

	// ErrNegativeValue is returned when a discrete preference carries a
	// negative item value; valuations must be monotone under containment.
	ErrNegativeValue = errors.New("cake: negative item value")

	// ErrInvalidDensity is returned when density points are not strictly
	// increasing in x, fall outside [0,1], or carry a negative y.
	ErrInvalidDensity = errors.New("cake: invalid density points")
)
