package cake_test

import (
	"testing"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContinuous_New rejects reversed bounds and reports the span length.
func TestContinuous_New(t *testing.T) {
	_, err := cake.NewContinuous(cake.R(1, 1), cake.R(0, 1))
	require.ErrorIs(t, err, cake.ErrInvalidInterval)

	c, err := cake.NewContinuous(cake.R(1, 4), cake.R(3, 4))
	require.NoError(t, err)
	assert.Equal(t, cake.KindContinuous, c.Kind())
	requireRat(t, cake.R(1, 2), c.ActualValue())
	assert.Equal(t, "[1/4, 3/4)", c.String())
}

// TestContinuous_RemoveAppend covers prefix/suffix cuts and the round trip.
func TestContinuous_RemoveAppend(t *testing.T) {
	cases := []struct {
		name  string
		piece cake.Span
		rest  string
	}{
		{"prefix", span(0, 1, 1, 2), "[1/2, 1)"},
		{"suffix", span(3, 4, 1, 1), "[0, 3/4)"},
		{"whole", span(0, 1, 1, 1), "[1, 1)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cake0 := unit(t)
			piece, err := cake.NewContinuous(tc.piece.Start, tc.piece.Stop)
			require.NoError(t, err)

			require.NoError(t, cake0.Remove(piece))
			assert.Equal(t, tc.rest, cake0.String())

			require.NoError(t, cake0.Append(piece))
			assert.True(t, cake.Equal(unit(t), cake0), "round trip gave %s", cake0)
		})
	}
}

// TestContinuous_Fragment refuses operations that would leave a hole.
func TestContinuous_Fragment(t *testing.T) {
	c := unit(t)
	mid, _ := cake.NewContinuous(cake.R(1, 4), cake.R(1, 2))
	require.ErrorIs(t, c.Remove(mid), cake.ErrFragmented)
	assert.Equal(t, "[0, 1)", c.String(), "failed Remove must not mutate")

	left, _ := cake.NewContinuous(cake.R(0, 1), cake.R(1, 4))
	far, _ := cake.NewContinuous(cake.R(1, 2), cake.R(1, 1))
	require.ErrorIs(t, left.Append(far), cake.ErrFragmented)

	outside, _ := cake.NewContinuous(cake.R(1, 2), cake.R(2, 1))
	require.ErrorIs(t, c.Remove(outside), cake.ErrInsufficientSupply)

	items, _ := cake.NewCollection("a")
	require.ErrorIs(t, c.Remove(items), cake.ErrKindMismatch)
}

// TestContinuous_AsCollection slices into resolution equal pieces.
func TestContinuous_AsCollection(t *testing.T) {
	pieces := unit(t, cake.WithResolution(5)).AsCollection()
	require.Len(t, pieces, 5)
	for i, p := range pieces {
		assert.Equal(t, cake.KindContinuous, p.Kind())
		want, _ := cake.NewContinuous(cake.R(int64(i), 5), cake.R(int64(i+1), 5))
		assert.True(t, cake.Equal(want, p), "piece %d = %s", i, p)
	}
	requireRat(t, cake.R(1, 1), cake.TotalActual(pieces))

	require.Panics(t, func() { cake.WithResolution(0) })
}

// TestIntervalSet_Remove follows the hole-punching cases of the interval kind.
func TestIntervalSet_Remove(t *testing.T) {
	halves := []cake.Span{span(0, 1, 1, 2), span(1, 2, 1, 1)}
	cases := []struct {
		name  string
		whole []cake.Span
		piece cake.Span
		want  string
	}{
		{"prefix of single", []cake.Span{span(0, 1, 1, 1)}, span(0, 1, 1, 2), "{[1/2, 1)}"},
		{"first half", halves, span(0, 1, 1, 2), "{[1/2, 1)}"},
		{"across the seam", halves, span(0, 1, 3, 4), "{[3/4, 1)}"},
		{"inner of first", halves, span(1, 4, 1, 2), "{[0, 1/4) [1/2, 1)}"},
		{"inner of single", []cake.Span{span(0, 1, 1, 1)}, span(1, 4, 2, 4), "{[0, 1/4) [1/2, 1)}"},
		{"inner across seam", halves, span(1, 4, 3, 4), "{[0, 1/4) [3/4, 1)}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := intervalSet(t, tc.whole...)
			require.NoError(t, s.Remove(intervalSet(t, tc.piece)))
			assert.Equal(t, tc.want, s.String())
		})
	}

	t.Run("not contained", func(t *testing.T) {
		s := intervalSet(t, span(0, 1, 1, 2))
		err := s.Remove(intervalSet(t, span(3, 4, 1, 1)))
		require.ErrorIs(t, err, cake.ErrInsufficientSupply)
		assert.Equal(t, "{[0, 1/2)}", s.String())
	})
}

// TestIntervalSet_Append merges touching spans into a minimal form.
func TestIntervalSet_Append(t *testing.T) {
	s := intervalSet(t, span(1, 2, 1, 1))
	require.NoError(t, s.Append(intervalSet(t, span(0, 1, 1, 2))))
	assert.Equal(t, "{[0, 1)}", s.String())

	s = intervalSet(t, span(1, 3, 2, 3))
	require.NoError(t, s.Append(intervalSet(t, span(0, 3, 1, 3), span(2, 3, 3, 3))))
	assert.Equal(t, "{[0, 1)}", s.String())

	s = intervalSet(t, span(0, 8, 1, 8))
	require.NoError(t, s.Append(intervalSet(t, span(1, 8, 2, 8), span(3, 4, 1, 1))))
	assert.Equal(t, "{[0, 1/4) [3/4, 1)}", s.String())
	requireRat(t, cake.R(1, 2), s.ActualValue())

	// continuous pieces are span-backed and interchangeable
	require.NoError(t, s.Append(unit(t)))
	assert.Equal(t, "{[0, 1)}", s.String())
}

// TestIntervalSet_New validates and normalizes its input.
func TestIntervalSet_New(t *testing.T) {
	_, err := cake.NewIntervalSet([]cake.Span{span(1, 2, 1, 4)})
	require.ErrorIs(t, err, cake.ErrInvalidInterval)

	s := intervalSet(t, span(1, 2, 1, 1), span(0, 1, 1, 4), span(1, 4, 1, 4), span(1, 8, 1, 2))
	assert.Equal(t, "{[0, 1)}", s.String())

	clone := s.Clone()
	require.NoError(t, s.Remove(intervalSet(t, span(0, 1, 1, 2))))
	assert.Equal(t, "{[0, 1)}", clone.String(), "clone must be independent")
}

// TestIntervalSet_AsCollection slices the covered length, straddling holes.
func TestIntervalSet_AsCollection(t *testing.T) {
	s, err := cake.NewIntervalSet([]cake.Span{span(0, 1, 1, 4), span(1, 2, 3, 4)}, cake.WithResolution(2))
	require.NoError(t, err)
	pieces := s.AsCollection()
	require.Len(t, pieces, 2)
	assert.Equal(t, "{[0, 1/4)}", pieces[0].String())
	assert.Equal(t, "{[1/2, 3/4)}", pieces[1].String())

	s, err = cake.NewIntervalSet([]cake.Span{span(0, 1, 1, 4), span(1, 2, 3, 4)}, cake.WithResolution(4))
	require.NoError(t, err)
	pieces = s.AsCollection()
	require.Len(t, pieces, 4)
	assert.Equal(t, "{[1/8, 1/4)}", pieces[1].String())
	assert.Equal(t, "{[1/2, 5/8)}", pieces[2].String())
}

// TestCounted covers construction, atomic removal and unit decomposition.
func TestCounted(t *testing.T) {
	_, err := cake.NewCounted(map[string]int{"a": -1})
	require.ErrorIs(t, err, cake.ErrNegativeCount)

	c, err := cake.NewCounted(map[string]int{"b": 2, "a": 1, "z": 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Items())
	assert.Equal(t, "{a:1 b:2}", c.String())
	requireRat(t, cake.R(3, 1), c.ActualValue())

	units := c.AsCollection()
	require.Len(t, units, 3)
	assert.Equal(t, "{a:1}", units[0].String())
	assert.Equal(t, "{b:1}", units[2].String())

	tooMuch, _ := cake.NewCounted(map[string]int{"a": 1, "b": 3})
	require.ErrorIs(t, c.Remove(tooMuch), cake.ErrInsufficientSupply)
	assert.Equal(t, "{a:1 b:2}", c.String(), "failed Remove must not mutate")

	piece, _ := cake.NewCounted(map[string]int{"a": 1, "b": 1})
	require.NoError(t, c.Remove(piece))
	assert.Equal(t, "{b:1}", c.String())
	require.NoError(t, c.Append(piece))
	assert.Equal(t, "{a:1 b:2}", c.String())
}

// TestCollection covers ordering, duplicate rejection and the round trip.
func TestCollection(t *testing.T) {
	_, err := cake.NewCollection("a", "b", "a")
	require.ErrorIs(t, err, cake.ErrDuplicateItem)

	c, err := cake.NewCollection(colors...)
	require.NoError(t, err)
	assert.Equal(t, "[red blue green yellow orange]", c.String())
	requireRat(t, cake.R(5, 1), c.ActualValue())
	assert.True(t, c.Contains("green"))

	piece, _ := cake.NewCollection("blue", "green")
	original := c.Clone()
	require.NoError(t, c.Remove(piece))
	assert.Equal(t, []string{"red", "yellow", "orange"}, c.Items())

	require.ErrorIs(t, c.Remove(piece), cake.ErrInsufficientSupply)

	require.NoError(t, c.Append(piece))
	assert.Equal(t, 0, c.Compare(original))
	assert.Len(t, c.AsCollection(), 5)
}

// TestEqual compares kind and payload.
func TestEqual(t *testing.T) {
	a, _ := cake.NewCollection("x", "y")
	b, _ := cake.NewCollection("x", "y")
	c, _ := cake.NewCollection("y", "x")
	assert.True(t, cake.Equal(a, b))
	assert.False(t, cake.Equal(a, c))

	n1, _ := cake.NewCounted(map[string]int{"x": 1})
	n2, _ := cake.NewCounted(map[string]int{"x": 1, "y": 0})
	assert.True(t, cake.Equal(n1, n2))
	assert.False(t, cake.Equal(n1, a))

	assert.True(t, cake.Equal(intervalSet(t, span(0, 1, 1, 2), span(1, 2, 1, 1)), intervalSet(t, span(0, 1, 1, 1))))
	assert.False(t, cake.Equal(unit(t), intervalSet(t, span(0, 1, 1, 1))), "different kinds")
}

// TestCompare orders by actual value.
func TestCompare(t *testing.T) {
	small, _ := cake.NewContinuous(cake.R(0, 1), cake.R(1, 3))
	big, _ := cake.NewContinuous(cake.R(1, 3), cake.R(1, 1))
	assert.Equal(t, -1, small.Compare(big))
	assert.Equal(t, 1, big.Compare(small))
	assert.Equal(t, 0, small.Compare(small.Clone()))
}
