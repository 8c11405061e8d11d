// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// types.go — resource kinds, the Resource/Preference contracts and options.

package cake

import (
	"fmt"
	"math/big"
)

// Kind tags the payload carried by a Resource.
type Kind int

const (
	// KindContinuous is a single half-open span [start, stop).
	KindContinuous Kind = iota
	// KindIntervalSet is an ordered list of disjoint spans.
	KindIntervalSet
	// KindCounted maps items to multiplicities.
	KindCounted
	// KindCollection is an ordered list of unique items.
	KindCollection
)

// String returns a short lowercase name for k.
func (k Kind) String() string {
	switch k {
	case KindContinuous:
		return "continuous"
	case KindIntervalSet:
		return "interval-set"
	case KindCounted:
		return "counted"
	case KindCollection:
		return "collection"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsSpan reports whether k is backed by rational spans.
func (k Kind) IsSpan() bool {
	return k == KindContinuous || k == KindIntervalSet
}

const (
	// DefaultResolution is the AsCollection granularity of span resources and
	// the quadrature/tolerance resolution of preferences when none is given.
	DefaultResolution = 100

	// MaxBisectionSteps bounds the preference evaluations of one span piece
	// search. Same-direction runs are galloped, so a legitimate search uses
	// a few evaluations per partial quotient of the cut.
	MaxBisectionSteps = 1 << 12
)

// Resource is a divisible good. All kinds share this contract; operations
// that take a piece require a piece of a compatible kind.
type Resource interface {
	// Kind returns the payload tag.
	Kind() Kind

	// ActualValue returns the preference-independent magnitude:
	// covered length, multiplicity sum or item count. Never negative.
	ActualValue() *big.Rat

	// Clone returns a deep, independent copy.
	Clone() Resource

	// Remove subtracts piece from the receiver. The receiver is unchanged
	// when an error is returned.
	Remove(piece Resource) error

	// Append adds piece back into the receiver.
	Append(piece Resource) error

	// AsCollection decomposes the receiver into single-unit pieces.
	AsCollection() []Resource

	// FindPiece returns a sub-resource that pref values at weight (exactly for
	// discrete kinds, within 1/pref.Resolution() for span kinds).
	FindPiece(pref Preference, weight *big.Rat) (Resource, error)

	// CreatePieces splits a clone of the receiver into count pieces, the
	// first count-1 of which pref values at weight (nil means an equal split);
	// the last piece is the remainder.
	CreatePieces(pref Preference, count int, weight *big.Rat) ([]Resource, error)

	// Compare orders resources by ActualValue: -1, 0 or +1.
	Compare(other Resource) int

	String() string
}

// Preference is one participant's valuation of resources.
type Preference interface {
	// ID identifies the participant.
	ID() string

	// Resolution drives quadrature steps and the piece-search tolerance 1/R.
	Resolution() int

	// Supports reports whether ValueOf understands resources of kind k.
	Supports(k Kind) bool

	// ValueOf returns the subjective value of r. Unsupported kinds are worth 0;
	// callers check Supports first.
	ValueOf(r Resource) *big.Rat
}

// Normalizer is implemented by preferences that can rescale themselves so
// that the whole resource is worth exactly 1.
type Normalizer interface {
	Normalize(whole Resource) error
}

// spanned is implemented by span-backed resources.
type spanned interface {
	Resource
	Spans() []Span
}

// ResourceOption customizes span resources at construction time.
type ResourceOption func(*resourceConfig)

type resourceConfig struct {
	resolution int
}

func newResourceConfig(opts ...ResourceOption) resourceConfig {
	cfg := resourceConfig{resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithResolution sets how many equal-length pieces AsCollection produces.
// Panics on n < 1.
func WithResolution(n int) ResourceOption {
	if n < 1 {
		panic("cake: WithResolution(n < 1)")
	}
	return func(c *resourceConfig) {
		c.resolution = n
	}
}
