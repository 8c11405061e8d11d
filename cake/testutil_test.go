// Package cake_test provides the small helpers shared by the cake tests:
// rational assertions and literal builders for spans and preferences.
package cake_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/stretchr/testify/require"
)

// requireRat fails unless got == want exactly.
func requireRat(t *testing.T, want, got *big.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, got, msgAndArgs...)
	require.Equalf(t, want.RatString(), got.RatString(), "rational mismatch %v", msgAndArgs)
}

// requireWithin fails unless |got - want| <= tol.
func requireWithin(t *testing.T, want, got, tol *big.Rat) {
	t.Helper()
	diff := new(big.Rat).Sub(got, want)
	diff.Abs(diff)
	require.LessOrEqualf(t, diff.Cmp(tol), 0, "want %s ± %s, got %s", want.RatString(), tol.RatString(), got.RatString())
}

// span builds [a/b, c/d).
func span(a, b, c, d int64) cake.Span {
	return cake.Span{Start: cake.R(a, b), Stop: cake.R(c, d)}
}

// unit returns the continuous resource [0, 1).
func unit(t *testing.T, opts ...cake.ResourceOption) *cake.Continuous {
	t.Helper()
	c, err := cake.NewContinuous(cake.R(0, 1), cake.R(1, 1), opts...)
	require.NoError(t, err)
	return c
}

// intervalSet builds a normalized interval set from spans.
func intervalSet(t *testing.T, spans ...cake.Span) *cake.IntervalSet {
	t.Helper()
	s, err := cake.NewIntervalSet(spans)
	require.NoError(t, err)
	return s
}

// uniformPref is the density y = 1 on [0, 1].
func uniformPref(id string, opts ...cake.PreferenceOption) *cake.IntervalPreference {
	return cake.NewDensityPreference(id, cake.Uniform(), opts...)
}

// colors is the five-item collection used by the finder tests.
var colors = []string{"red", "blue", "green", "yellow", "orange"}

// colorValues are distinct integer values summing to 100.
var colorValues = map[string]int64{"red": 10, "blue": 20, "green": 30, "yellow": 15, "orange": 25}
