package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/katalvlaran/fairdiv/divide"
	"github.com/katalvlaran/fairdiv/profile"
	"github.com/katalvlaran/fairdiv/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stripScenario = `
algorithm: divide-and-choose
seed: 4
resource:
  kind: continuous
  start: "0"
  stop: "1"
participants:
  - id: ann
    uniform: true
  - id: bob
    points: [["0", "0"], ["1/2", "1"], ["1", "0"]]
    normalize: true
`

// TestScenario_Continuous builds and runs a span scenario end to end.
func TestScenario_Continuous(t *testing.T) {
	s, err := profile.ParseScenario([]byte(stripScenario))
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	res, users, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, cake.KindContinuous, res.Kind())
	require.Len(t, users, 2)
	assert.Equal(t, "1", users[1].ValueOf(res).RatString(), "normalized")

	d, err := s.Divider()
	require.NoError(t, err)
	assert.Equal(t, "divide-and-choose", d.Name())
	require.NoError(t, d.IsValid())

	div, err := d.Divide()
	require.NoError(t, err)
	r := validate.Check(div, validate.WithTolerance(cake.R(1, cake.DefaultResolution)))
	assert.True(t, r.Conserving)
	assert.True(t, r.Meets(d.Settings()), "%+v", r)
}

// TestScenario_Discrete covers values, rankings, limits and uniform items.
func TestScenario_Discrete(t *testing.T) {
	s, err := profile.ParseScenario([]byte(`
algorithm: sealed-bid-auction
resource:
  kind: counted
  counts: {apple: 3, pear: 1}
participants:
  - id: ann
    values: {apple: "2", pear: "1/2"}
    limits: {apple: 1}
  - id: bob
    uniform: true
`))
	require.NoError(t, err)
	res, users, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "5/2", users[0].ValueOf(res).RatString())
	assert.Equal(t, "4", users[1].ValueOf(res).RatString())

	s, err = profile.ParseScenario([]byte(`
algorithm: alternating-choice
resource: {kind: collection, items: [a, b, c]}
participants:
  - {id: ann, ranking: [c, b, a]}
  - {id: bob, ranking: [a, b, c]}
`))
	require.NoError(t, err)
	res, users, err = s.Build()
	require.NoError(t, err)
	assert.Equal(t, "[a b c]", res.String())
	c, err := cake.NewCollection("c")
	require.NoError(t, err)
	assert.Equal(t, "3", users[0].ValueOf(c).RatString())

	// ranking only values collections
	s.Resource = profile.ResourceSpec{Kind: "counted", Counts: map[string]int{"a": 1}}
	_, _, err = s.Build()
	require.ErrorIs(t, err, cake.ErrKindMismatch)
}

// TestScenario_Strategy applies the scenario strategy before caller options.
func TestScenario_Strategy(t *testing.T) {
	s, err := profile.ParseScenario([]byte(`
algorithm: alternating-choice
strategy: balanced
resource: {kind: collection, items: [a, b, c, d]}
participants:
  - {id: ann, ranking: [a, b, c, d]}
  - {id: bob, ranking: [a, b, c, d]}
`))
	require.NoError(t, err)

	run := func(opts ...divide.Option) []string {
		d, err := s.Divider(opts...)
		require.NoError(t, err)
		div, err := d.Divide()
		require.NoError(t, err)
		var got []string
		for _, p := range div.Shares[0].Pieces {
			got = append(got, p.String())
		}
		return got
	}
	assert.Equal(t, []string{"[a]", "[d]"}, run())
	assert.Equal(t, []string{"[a]", "[c]"}, run(divide.WithStrategy(divide.Ordinal)))
}

// TestScenario_Validate rejects each malformed shape.
func TestScenario_Validate(t *testing.T) {
	valid := func() *profile.Scenario {
		return &profile.Scenario{
			Algorithm: "lone-chooser",
			Resource:  profile.ResourceSpec{Kind: "collection", Items: []string{"a"}},
			Participants: []profile.ParticipantSpec{
				{ID: "ann", Uniform: true},
				{ID: "bob", Ranking: []string{"a"}},
			},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(s *profile.Scenario)
	}{
		{"unknown algorithm", func(s *profile.Scenario) { s.Algorithm = "coin-flip" }},
		{"unknown strategy", func(s *profile.Scenario) { s.Strategy = "loudest" }},
		{"unknown kind", func(s *profile.Scenario) { s.Resource.Kind = "liquid" }},
		{"negative resolution", func(s *profile.Scenario) { s.Resource.Resolution = -1 }},
		{"no participants", func(s *profile.Scenario) { s.Participants = nil }},
		{"missing id", func(s *profile.Scenario) { s.Participants[0].ID = "" }},
		{"repeated id", func(s *profile.Scenario) { s.Participants[1].ID = "ann" }},
		{"two sources", func(s *profile.Scenario) { s.Participants[0].Ranking = []string{"a"} }},
		{"no source", func(s *profile.Scenario) { s.Participants[1].Ranking = nil }},
		{"negative precision", func(s *profile.Scenario) { s.Participants[0].Precision = -3 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(s)
			require.ErrorIs(t, s.Validate(), profile.ErrInvalidScenario)
			_, err := s.Divider()
			require.ErrorIs(t, err, profile.ErrInvalidScenario)
		})
	}

	_, err := profile.ParseScenario([]byte("algorithm: lone-chooser\ncolour: red\n"))
	require.Error(t, err, "unknown fields are rejected")
}

// TestLoadScenario resolves participant files next to the scenario.
func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bob.txt"), []byte("0 1\n1 1\n"), 0o600))
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: dubins-spanier
resource:
  kind: interval-set
  spans: [["0", "1/2"], ["1/2", "1"]]
  resolution: 50
participants:
  - {id: ann, uniform: true}
  - {id: bob, file: bob.txt}
`), 0o600))

	s, err := profile.LoadScenario(path)
	require.NoError(t, err)
	res, users, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, cake.KindIntervalSet, res.Kind())
	assert.Equal(t, "1", users[1].ValueOf(res).RatString())

	d, err := s.Divider()
	require.NoError(t, err)
	div, err := d.Divide()
	require.NoError(t, err)
	assert.True(t, validate.IsConserving(div))

	out, err := s.Marshal()
	require.NoError(t, err)
	again, err := profile.ParseScenario(out)
	require.NoError(t, err)
	assert.Equal(t, s.Participants, again.Participants)

	_, err = profile.LoadScenario(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestKindOf maps every kind name back to its kind.
func TestKindOf(t *testing.T) {
	for _, k := range []cake.Kind{cake.KindContinuous, cake.KindIntervalSet, cake.KindCounted, cake.KindCollection} {
		got, err := profile.KindOf(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := profile.KindOf("gas")
	require.ErrorIs(t, err, profile.ErrUnknownKind)
}
