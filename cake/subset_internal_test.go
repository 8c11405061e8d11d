package cake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForEachSubset_Count pins the exponential bound: 2^n - 1 visits.
func TestForEachSubset_Count(t *testing.T) {
	for n := 0; n <= 12; n++ {
		visits := 0
		stopped := forEachSubset(n, func([]int) bool {
			visits++
			return false
		})
		require.False(t, stopped)
		assert.Equal(t, (1<<n)-1, visits, "n=%d", n)
	}
}

// TestForEachSubset_Order enumerates by size, then lexicographically.
func TestForEachSubset_Order(t *testing.T) {
	var got [][]int
	forEachSubset(3, func(idx []int) bool {
		got = append(got, append([]int(nil), idx...))
		return false
	})
	assert.Equal(t, [][]int{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}, got)

	visits := 0
	stopped := forEachSubset(4, func(idx []int) bool {
		visits++
		return len(idx) == 2
	})
	assert.True(t, stopped)
	assert.Equal(t, 5, visits, "four singletons then the first pair")
}

// TestSpanAlgebra exercises the normalized set operations directly.
func TestSpanAlgebra(t *testing.T) {
	s := func(a, b, c, d int64) Span { return Span{Start: R(a, b), Stop: R(c, d)} }

	got := normalizeSpans([]Span{s(1, 2, 1, 1), s(0, 1, 1, 2), s(3, 4, 3, 4)})
	assert.Equal(t, "{[0, 1)}", formatSpans(got))

	rest, err := subtractSpans([]Span{s(0, 1, 1, 1)}, []Span{s(1, 4, 1, 2), s(3, 4, 7, 8)})
	require.NoError(t, err)
	assert.Equal(t, "{[0, 1/4) [1/2, 3/4) [7/8, 1)}", formatSpans(rest))

	_, err = subtractSpans([]Span{s(0, 1, 1, 2), s(3, 4, 1, 1)}, []Span{s(1, 4, 7, 8)})
	require.ErrorIs(t, err, ErrInsufficientSupply, "piece bridges a hole")

	assert.Equal(t, "{[0, 1/4) [1/2, 5/8)}", formatSpans(prefixSpans([]Span{s(0, 1, 1, 4), s(1, 2, 1, 1)}, R(3, 8))))
	assert.Equal(t, "{[1/8, 1/4) [1/2, 5/8)}", formatSpans(sliceSpans([]Span{s(0, 1, 1, 4), s(1, 2, 1, 1)}, R(1, 8), R(3, 8))))
}
