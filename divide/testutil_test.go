// Package divide_test holds the fixtures shared by the protocol tests.
package divide_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/katalvlaran/fairdiv/divide"
	"github.com/stretchr/testify/require"
)

// requireRat fails unless got == want exactly.
func requireRat(t *testing.T, want, got *big.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, got)
	require.Equalf(t, want.RatString(), got.RatString(), "rational mismatch %v", msgAndArgs)
}

// requireAtLeast fails unless got >= want - tol.
func requireAtLeast(t *testing.T, want, got, tol *big.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	floor := new(big.Rat).Sub(want, tol)
	require.GreaterOrEqualf(t, got.Cmp(floor), 0, "want >= %s - %s, got %s %v",
		want.RatString(), tol.RatString(), got.RatString(), msgAndArgs)
}

// colors are five items; colorValues sum to 100.
var (
	colors      = []string{"red", "blue", "green", "yellow", "orange"}
	colorValues = map[string]int64{"red": 10, "blue": 20, "green": 30, "yellow": 15, "orange": 25}
)

func collection(t *testing.T, items ...string) *cake.Collection {
	t.Helper()
	c, err := cake.NewCollection(items...)
	require.NoError(t, err)
	return c
}

func collectionPref(t *testing.T, id string, values map[string]int64) *cake.CollectionPreference {
	t.Helper()
	p, err := cake.NewCollectionPreference(id, cake.IntValues(values))
	require.NoError(t, err)
	return p
}

func unitStrip(t *testing.T) *cake.Continuous {
	t.Helper()
	c, err := cake.NewContinuous(cake.R(0, 1), cake.R(1, 1))
	require.NoError(t, err)
	return c
}

func unitSet(t *testing.T) *cake.IntervalSet {
	t.Helper()
	s, err := cake.NewIntervalSet([]cake.Span{{Start: cake.R(0, 1), Stop: cake.R(1, 1)}})
	require.NoError(t, err)
	return s
}

// flat returns n participants with the constant density 1.
func flat(n int) []cake.Preference {
	ids := []string{"ann", "bob", "cat", "dan", "eve", "fay"}
	out := make([]cake.Preference, n)
	for i := range out {
		out[i] = cake.NewContinuousPreference(ids[i], cake.Constant(cake.R(1, 1)))
	}
	return out
}

// shaped returns three participants with different normalized densities
// on [0, 1]: uniform, a centered tent and a rising ramp.
func shaped(t *testing.T, precision int) []cake.Preference {
	t.Helper()
	whole := unitStrip(t)
	mk := func(id string, pts []cake.Point) cake.Preference {
		p, err := cake.NewIntervalPreference(id, pts, cake.WithPrecision(precision))
		require.NoError(t, err)
		require.NoError(t, p.Normalize(whole))
		return p
	}
	return []cake.Preference{
		mk("ann", []cake.Point{cake.P(0, 1, 1, 1), cake.P(1, 1, 1, 1)}),
		mk("bob", []cake.Point{cake.P(0, 1, 0, 1), cake.P(1, 2, 1, 1)}),
		mk("cat", []cake.Point{cake.P(0, 1, 0, 1), cake.P(1, 1, 1, 1)}),
	}
}

// requireConserved checks that the shares hand out exactly the whole.
func requireConserved(t *testing.T, whole cake.Resource, div *divide.Division) {
	t.Helper()
	requireRat(t, whole.ActualValue(), div.ActualValue(), div.Algorithm)

	// re-assemble the shares; spans go into an interval set since shares of
	// a continuous whole need not be adjacent in share order
	var rebuilt cake.Resource
	if whole.Kind().IsSpan() {
		set, err := cake.NewIntervalSet(nil)
		require.NoError(t, err)
		rebuilt = set
	} else {
		rebuilt = whole.Clone()
		require.NoError(t, rebuilt.Remove(whole.Clone()))
	}
	for _, s := range div.Shares {
		for _, p := range s.Pieces {
			require.NoError(t, rebuilt.Append(p))
		}
	}
	require.Equal(t, 0, rebuilt.Compare(whole), "%s: shares overlap", div.Algorithm)
}
