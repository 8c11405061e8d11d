package divide_test

import (
	"testing"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/katalvlaran/fairdiv/divide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ranked = map[string]int64{"a": 4, "b": 3, "c": 2, "d": 1}

func items(s divide.Share) []string {
	var out []string
	for _, p := range s.Pieces {
		out = append(out, p.(*cake.Collection).Items()...)
	}
	return out
}

// TestAlternatingChoice_Ordinal deals a, c to the first and b, d to the second.
func TestAlternatingChoice_Ordinal(t *testing.T) {
	whole := collection(t, "a", "b", "c", "d")
	users := []cake.Preference{collectionPref(t, "ann", ranked), collectionPref(t, "bob", ranked)}

	div, err := divide.NewAlternatingChoice(users, whole).Divide()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, items(div.Shares[0]))
	assert.Equal(t, []string{"b", "d"}, items(div.Shares[1]))
	requireConserved(t, whole, div)
}

// TestAlternatingChoice_Balanced uses the a b b a order and evens totals out.
func TestAlternatingChoice_Balanced(t *testing.T) {
	whole := collection(t, "a", "b", "c", "d")
	users := []cake.Preference{collectionPref(t, "ann", ranked), collectionPref(t, "bob", ranked)}

	div, err := divide.NewAlternatingChoice(users, whole, divide.WithStrategy(divide.Balanced)).Divide()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, items(div.Shares[0]))
	assert.Equal(t, []string{"b", "c"}, items(div.Shares[1]))
	requireRat(t, div.Shares[0].Own(), div.Shares[1].Own())
}

// TestBalancedAlternatingChoice settles distinct favorites first.
func TestBalancedAlternatingChoice(t *testing.T) {
	whole := collection(t, "a", "b", "c", "d")

	// identical rankings: every round collides, so everything is contested
	same := []cake.Preference{collectionPref(t, "ann", ranked), collectionPref(t, "bob", ranked)}
	div, err := divide.NewBalancedAlternatingChoice(same, whole).Divide()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, items(div.Shares[0]))
	assert.Equal(t, []string{"b", "c"}, items(div.Shares[1]))

	// opposite rankings: nothing is contested
	reversed := map[string]int64{"a": 1, "b": 2, "c": 3, "d": 4}
	opposite := []cake.Preference{collectionPref(t, "ann", ranked), collectionPref(t, "bob", reversed)}
	div, err = divide.NewBalancedAlternatingChoice(opposite, whole).Divide()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items(div.Shares[0]))
	assert.Equal(t, []string{"d", "c"}, items(div.Shares[1]))
	requireConserved(t, whole, div)
}

// TestInverseAlternation hands out the least wanted units first.
func TestInverseAlternation(t *testing.T) {
	whole := collection(t, "a", "b", "c", "d")
	same := []cake.Preference{collectionPref(t, "ann", ranked), collectionPref(t, "bob", ranked)}

	d := divide.NewInverseAlternatingChoice(same, whole)
	assert.Equal(t, "inverse-alternating-choice", d.Name())
	div, err := d.Divide()
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b"}, items(div.Shares[0]))
	assert.Equal(t, []string{"c", "a"}, items(div.Shares[1]))

	reversed := map[string]int64{"a": 1, "b": 2, "c": 3, "d": 4}
	opposite := []cake.Preference{collectionPref(t, "ann", ranked), collectionPref(t, "bob", reversed)}
	div, err = divide.NewInverseBalancedAlternatingChoice(opposite, whole).Divide()
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, items(div.Shares[0]))
	assert.Equal(t, []string{"a", "b"}, items(div.Shares[1]))
	requireConserved(t, whole, div)
}

// TestAlternatingChoice_Random stays reproducible per seed.
func TestAlternatingChoice_Random(t *testing.T) {
	whole := collection(t, colors...)
	users := []cake.Preference{
		collectionPref(t, "ann", colorValues),
		collectionPref(t, "bob", colorValues),
		collectionPref(t, "cat", colorValues),
	}
	first, err := divide.NewAlternatingChoice(users, whole, divide.WithStrategy(divide.Random), divide.WithSeed(8)).Divide()
	require.NoError(t, err)
	second, err := divide.NewAlternatingChoice(users, whole, divide.WithStrategy(divide.Random), divide.WithSeed(8)).Divide()
	require.NoError(t, err)
	for i := range first.Shares {
		assert.Equal(t, items(first.Shares[i]), items(second.Shares[i]))
	}
	requireConserved(t, whole, first)
}

// TestStrategies pins the turn generators.
func TestStrategies(t *testing.T) {
	take := func(next func() int, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = next()
		}
		return out
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, take(divide.Ordinal(3, 6, nil), 6))
	assert.Equal(t, []int{0, 1, 1, 0, 1, 0, 0, 1}, take(divide.Balanced(2, 8, nil), 8))
	assert.Equal(t, []int{0, 1, 2, 1, 2, 0, 2, 0, 1}, take(divide.Balanced(3, 9, nil), 9))

	assert.Equal(t, "abbabaabbaababba", divide.BalancedSequence(2, 16))
	assert.Equal(t, "ab", divide.BalancedSequence(2, 1))
	assert.Equal(t, "abcbcacab", divide.BalancedSequence(3, 5))

	s, err := divide.StrategyByName("balanced")
	require.NoError(t, err)
	assert.Equal(t, 0, s(2, 2, nil)(), "first turn goes to participant 0")
	_, err = divide.StrategyByName("zigzag")
	require.ErrorIs(t, err, divide.ErrUnknownAlgorithm)
	assert.Equal(t, []string{"balanced", "ordinal", "random"}, divide.StrategyNames())
}
