package divide_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/katalvlaran/fairdiv/divide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelfridgeConway_Uniform needs no trim: every third is alike to all.
func TestSelfridgeConway_Uniform(t *testing.T) {
	whole := unitStrip(t)
	d := divide.NewSelfridgeConway(flat(3), whole)
	require.NoError(t, d.IsValid())
	assert.Equal(t, "users=3 envy-free proportional", d.Settings().String())

	div, err := d.Divide()
	require.NoError(t, err)
	for _, s := range div.Shares {
		require.Len(t, s.Pieces, 1, s.Participant.ID())
		requireRat(t, cake.R(1, 3), s.Own())
	}
	requireConserved(t, whole, div)
}

// TestSelfridgeConway_EnvyFree checks every pair on differing valuations.
func TestSelfridgeConway_EnvyFree(t *testing.T) {
	whole := unitStrip(t)
	tol := cake.R(1, 50)
	trimmed := 0
	for seed := int64(1); seed <= 6; seed++ {
		div, err := divide.NewSelfridgeConway(shaped(t, 400), whole, divide.WithSeed(seed)).Divide()
		require.NoError(t, err)
		requireConserved(t, whole, div)
		if len(div.Shares[0].Pieces) > 1 {
			trimmed++
		}
		for _, s := range div.Shares {
			own := s.Own()
			requireAtLeast(t, big.NewRat(1, 3), own, tol, s.Participant.ID())
			for _, o := range div.Shares {
				requireAtLeast(t, o.Value(s.Participant), own, tol, s.Participant.ID(), "envies", o.Participant.ID())
			}
		}
	}
	assert.Positive(t, trimmed, "some run trims")
}

// TestSelfridgeConway_Invalid wants exactly three participants on a span resource.
func TestSelfridgeConway_Invalid(t *testing.T) {
	err := divide.NewSelfridgeConway(flat(2), unitStrip(t)).IsValid()
	require.ErrorIs(t, err, divide.ErrWrongParticipantCount)

	users := []cake.Preference{
		collectionPref(t, "ann", colorValues),
		collectionPref(t, "bob", colorValues),
		collectionPref(t, "cat", colorValues),
	}
	err = divide.NewSelfridgeConway(users, collection(t, colors...)).IsValid()
	require.ErrorIs(t, err, divide.ErrUnsupportedKind)
}
