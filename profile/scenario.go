// SPDX-License-Identifier: MIT
// Package: fairdiv/profile
//
// scenario.go — YAML scenarios: one resource, its participants and the
// protocol to run, in a single file.
//
//	algorithm: last-diminisher
//	seed: 7
//	resource:
//	  kind: continuous
//	  start: "0"
//	  stop: "1"
//	participants:
//	  - id: ann
//	    uniform: true
//	  - id: bob
//	    points: [["0", "0"], ["1/2", "1"], ["1", "0"]]
//	    normalize: true
//
// Each participant takes its valuation from exactly one of values, ranking,
// points, uniform or file. Numbers are strings so that "1/3" stays exact.

package profile

import (
	"bytes"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"slices"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/katalvlaran/fairdiv/divide"
	"gopkg.in/yaml.v3"
)

// Scenario describes one division run.
type Scenario struct {
	Algorithm    string            `yaml:"algorithm"`
	Seed         int64             `yaml:"seed,omitempty"`
	Strategy     string            `yaml:"strategy,omitempty"`
	Resource     ResourceSpec      `yaml:"resource"`
	Participants []ParticipantSpec `yaml:"participants"`

	// dir resolves relative participant files; set by LoadScenario.
	dir string
}

// ResourceSpec describes the whole. Which fields apply depends on Kind:
// start/stop for continuous, spans for interval-set, items for collection,
// counts for counted.
type ResourceSpec struct {
	Kind       string         `yaml:"kind"`
	Start      string         `yaml:"start,omitempty"`
	Stop       string         `yaml:"stop,omitempty"`
	Spans      [][2]string    `yaml:"spans,omitempty"`
	Items      []string       `yaml:"items,omitempty"`
	Counts     map[string]int `yaml:"counts,omitempty"`
	Resolution int            `yaml:"resolution,omitempty"`
}

// ParticipantSpec describes one participant's valuation.
type ParticipantSpec struct {
	ID        string            `yaml:"id"`
	Values    map[string]string `yaml:"values,omitempty"`
	Limits    map[string]int    `yaml:"limits,omitempty"`
	Ranking   []string          `yaml:"ranking,omitempty"`
	Points    [][2]string       `yaml:"points,omitempty"`
	Uniform   bool              `yaml:"uniform,omitempty"`
	File      string            `yaml:"file,omitempty"`
	Precision int               `yaml:"precision,omitempty"`
	Normalize bool              `yaml:"normalize,omitempty"`
}

// sources counts how many valuation sources p sets.
func (p ParticipantSpec) sources() int {
	n := 0
	for _, set := range []bool{len(p.Values) > 0, len(p.Ranking) > 0, len(p.Points) > 0, p.Uniform, p.File != ""} {
		if set {
			n++
		}
	}
	return n
}

// ParseScenario decodes a YAML scenario. Unknown fields are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("profile: decode scenario: %w", err)
	}
	return &s, nil
}

// LoadScenario reads and validates the scenario at path. Participant files
// are resolved relative to the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes s as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// KindOf maps a kind name ("continuous", "interval-set", "counted",
// "collection") to its cake.Kind.
func KindOf(name string) (cake.Kind, error) {
	for _, k := range []cake.Kind{cake.KindContinuous, cake.KindIntervalSet, cake.KindCounted, cake.KindCollection} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// Validate checks names and shapes without building anything.
func (s *Scenario) Validate() error {
	if !slices.Contains(divide.Names(), s.Algorithm) {
		return fmt.Errorf("%w: algorithm %q (have %v): %w", ErrInvalidScenario, s.Algorithm, divide.Names(), divide.ErrUnknownAlgorithm)
	}
	if s.Strategy != "" {
		if _, err := divide.StrategyByName(s.Strategy); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}
	if _, err := KindOf(s.Resource.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.Resource.Resolution < 0 {
		return fmt.Errorf("%w: resolution %d", ErrInvalidScenario, s.Resource.Resolution)
	}
	if len(s.Participants) == 0 {
		return fmt.Errorf("%w: no participants", ErrInvalidScenario)
	}
	seen := make(map[string]bool, len(s.Participants))
	for i, p := range s.Participants {
		switch {
		case p.ID == "":
			return fmt.Errorf("%w: participant %d has no id", ErrInvalidScenario, i)
		case seen[p.ID]:
			return fmt.Errorf("%w: participant %q repeated", ErrInvalidScenario, p.ID)
		case p.sources() != 1:
			return fmt.Errorf("%w: participant %q needs exactly one of values, ranking, points, uniform, file", ErrInvalidScenario, p.ID)
		case p.Precision < 0:
			return fmt.Errorf("%w: participant %q precision %d", ErrInvalidScenario, p.ID, p.Precision)
		}
		seen[p.ID] = true
	}
	return nil
}

// Build materializes the resource and the participants' preferences, in
// file order.
func (s *Scenario) Build() (cake.Resource, []cake.Preference, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	whole, err := s.Resource.build()
	if err != nil {
		return nil, nil, err
	}
	users := make([]cake.Preference, len(s.Participants))
	for i, p := range s.Participants {
		u, err := p.build(whole, s.dir)
		if err != nil {
			return nil, nil, fmt.Errorf("participant %q: %w", p.ID, err)
		}
		users[i] = u
	}
	return whole, users, nil
}

// Divider builds the scenario and constructs its protocol. The scenario's
// seed and strategy are applied first, so opts may override them.
func (s *Scenario) Divider(opts ...divide.Option) (divide.Divider, error) {
	whole, users, err := s.Build()
	if err != nil {
		return nil, err
	}
	all := []divide.Option{divide.WithSeed(s.Seed)}
	if s.Strategy != "" {
		st, err := divide.StrategyByName(s.Strategy)
		if err != nil {
			return nil, err
		}
		all = append(all, divide.WithStrategy(st))
	}
	return divide.New(s.Algorithm, users, whole, append(all, opts...)...)
}

func (r ResourceSpec) build() (cake.Resource, error) {
	kind, err := KindOf(r.Kind)
	if err != nil {
		return nil, err
	}
	var ropts []cake.ResourceOption
	if r.Resolution > 0 {
		ropts = append(ropts, cake.WithResolution(r.Resolution))
	}
	switch kind {
	case cake.KindContinuous:
		start, stop, err := ratPair([2]string{r.Start, r.Stop})
		if err != nil {
			return nil, fmt.Errorf("resource bounds: %w", err)
		}
		return cake.NewContinuous(start, stop, ropts...)
	case cake.KindIntervalSet:
		spans := make([]cake.Span, len(r.Spans))
		for i, sp := range r.Spans {
			start, stop, err := ratPair(sp)
			if err != nil {
				return nil, fmt.Errorf("resource span %d: %w", i, err)
			}
			spans[i] = cake.Span{Start: start, Stop: stop}
		}
		return cake.NewIntervalSet(spans, ropts...)
	case cake.KindCounted:
		return cake.NewCounted(r.Counts)
	default:
		return cake.NewCollection(r.Items...)
	}
}

func (p ParticipantSpec) build(whole cake.Resource, dir string) (cake.Preference, error) {
	var popts []cake.PreferenceOption
	if p.Precision > 0 {
		popts = append(popts, cake.WithPrecision(p.Precision))
	}
	if len(p.Limits) > 0 {
		popts = append(popts, cake.WithLimits(p.Limits))
	}

	var (
		pref cake.Preference
		err  error
	)
	switch {
	case p.File != "":
		path := p.File
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		f, ferr := os.Open(path)
		if ferr != nil {
			return nil, fmt.Errorf("profile: %w", ferr)
		}
		pref, err = ParsePreferenceAs(f, p.ID, whole.Kind(), popts...)
		f.Close()
	case len(p.Points) > 0:
		points := make([]cake.Point, len(p.Points))
		for i, pt := range p.Points {
			x, y, perr := ratPair(pt)
			if perr != nil {
				return nil, fmt.Errorf("point %d: %w", i, perr)
			}
			points[i] = cake.Point{X: x, Y: y}
		}
		pref, err = cake.NewIntervalPreference(p.ID, points, popts...)
	case len(p.Ranking) > 0:
		pref, err = cake.NewOrdinalPreference(p.ID, p.Ranking, popts...)
	case len(p.Values) > 0:
		values := make(map[string]*big.Rat, len(p.Values))
		for item, s := range p.Values {
			v, ok := cake.ParseRat(s)
			if !ok {
				return nil, fmt.Errorf("value of %q = %q: %w", item, s, ErrMalformedLine)
			}
			values[item] = v
		}
		pref, err = itemPreference(p.ID, whole.Kind(), values, popts)
	default:
		pref, err = uniform(p.ID, whole, popts)
	}
	if err != nil {
		return nil, err
	}
	if !pref.Supports(whole.Kind()) {
		return nil, fmt.Errorf("%s whole: %w", whole.Kind(), cake.ErrKindMismatch)
	}
	if p.Normalize {
		n, ok := pref.(cake.Normalizer)
		if !ok {
			return nil, fmt.Errorf("normalize: %w", ErrUnsupportedPreference)
		}
		if err := n.Normalize(whole); err != nil {
			return nil, err
		}
	}
	return pref, nil
}

func itemPreference(id string, kind cake.Kind, values map[string]*big.Rat, opts []cake.PreferenceOption) (cake.Preference, error) {
	if kind == cake.KindCounted {
		return cake.NewCountedPreference(id, values, opts...)
	}
	return cake.NewCollectionPreference(id, values, opts...)
}

// uniform values every unit of whole at 1: a constant density on span kinds,
// value 1 per item otherwise.
func uniform(id string, whole cake.Resource, opts []cake.PreferenceOption) (cake.Preference, error) {
	if whole.Kind().IsSpan() {
		return cake.NewContinuousPreference(id, cake.Constant(big.NewRat(1, 1)), opts...), nil
	}
	var items []string
	switch w := whole.(type) {
	case *cake.Counted:
		items = w.Items()
	case *cake.Collection:
		items = w.Items()
	}
	values := make(map[string]*big.Rat, len(items))
	for _, it := range items {
		values[it] = big.NewRat(1, 1)
	}
	return itemPreference(id, whole.Kind(), values, opts)
}

func ratPair(p [2]string) (*big.Rat, *big.Rat, error) {
	a, oka := cake.ParseRat(p[0])
	b, okb := cake.ParseRat(p[1])
	if !oka || !okb {
		return nil, nil, fmt.Errorf("%q %q: %w", p[0], p[1], ErrMalformedLine)
	}
	return a, b, nil
}
