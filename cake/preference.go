// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// preference.go — preference options and the span-kind preferences.
//
// Every preference can be rescaled to unit value over a given whole
// (Normalizer). Rescaling is exact, so "sees unit value" is an equality test.

package cake

import (
	"fmt"
	"math/big"
)

// PreferenceOption customizes a preference at construction time.
type PreferenceOption func(*preferenceConfig)

type preferenceConfig struct {
	resolution int
	limits     map[string]int
}

func newPreferenceConfig(opts ...PreferenceOption) preferenceConfig {
	cfg := preferenceConfig{resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPrecision sets the preference resolution R: quadrature steps for
// ContinuousPreference and the 1/R tolerance of the span piece search.
// Panics on r < 1.
func WithPrecision(r int) PreferenceOption {
	if r < 1 {
		panic("cake: WithPrecision(r < 1)")
	}
	return func(c *preferenceConfig) {
		c.resolution = r
	}
}

// WithLimits caps how many units of each item a CountedPreference values.
// Items without an entry are uncapped. Panics on negative limits.
func WithLimits(limits map[string]int) PreferenceOption {
	for k, n := range limits {
		if n < 0 {
			panic(fmt.Sprintf("cake: WithLimits(%q: %d)", k, n))
		}
	}
	return func(c *preferenceConfig) {
		c.limits = make(map[string]int, len(limits))
		for k, n := range limits {
			c.limits[k] = n
		}
	}
}

// ContinuousPreference values span resources by integrating a density
// function with the trapezoid rule at the preference's resolution.
type ContinuousPreference struct {
	id         string
	fn         func(x *big.Rat) *big.Rat
	resolution int
	scale      *big.Rat
}

// NewContinuousPreference wraps fn, which must be non-negative and must not
// retain or mutate its argument.
func NewContinuousPreference(id string, fn func(x *big.Rat) *big.Rat, opts ...PreferenceOption) *ContinuousPreference {
	cfg := newPreferenceConfig(opts...)
	return &ContinuousPreference{id: id, fn: fn, resolution: cfg.resolution, scale: ratInt(1)}
}

// Constant returns a density function that is k everywhere.
func Constant(k *big.Rat) func(*big.Rat) *big.Rat {
	v := ratCopy(k)
	return func(*big.Rat) *big.Rat { return ratCopy(v) }
}

// ID implements Preference.
func (p *ContinuousPreference) ID() string { return p.id }

// Resolution implements Preference.
func (p *ContinuousPreference) Resolution() int { return p.resolution }

// Supports implements Preference.
func (p *ContinuousPreference) Supports(k Kind) bool { return k.IsSpan() }

// ValueOf integrates over every span of r.
func (p *ContinuousPreference) ValueOf(r Resource) *big.Rat {
	sp, ok := r.(spanned)
	if !ok {
		return zero()
	}
	total := zero()
	for _, s := range sp.Spans() {
		total.Add(total, Trapezoid(p.fn, s.Start, s.Stop, p.resolution))
	}
	return total.Mul(total, p.scale)
}

// Normalize rescales so that ValueOf(whole) == 1.
func (p *ContinuousPreference) Normalize(whole Resource) error {
	v := p.ValueOf(whole)
	if v.Sign() == 0 {
		return fmt.Errorf("preference %q: %w", p.id, ErrZeroValue)
	}
	p.scale = ratQuo(p.scale, v)
	return nil
}

// String renders "ContinuousPreference(id)".
func (p *ContinuousPreference) String() string {
	return fmt.Sprintf("ContinuousPreference(%s)", p.id)
}

// IntervalPreference values span resources by the exact area under a
// piecewise-linear density, each span clipped to the segments' domains.
type IntervalPreference struct {
	id         string
	density    *Density
	resolution int
}

// NewIntervalPreference builds the density from points (see NewDensity).
func NewIntervalPreference(id string, points []Point, opts ...PreferenceOption) (*IntervalPreference, error) {
	d, err := NewDensity(points)
	if err != nil {
		return nil, fmt.Errorf("preference %q: %w", id, err)
	}
	return NewDensityPreference(id, d, opts...), nil
}

// NewDensityPreference uses an already built density.
func NewDensityPreference(id string, d *Density, opts ...PreferenceOption) *IntervalPreference {
	cfg := newPreferenceConfig(opts...)
	return &IntervalPreference{id: id, density: d, resolution: cfg.resolution}
}

// ID implements Preference.
func (p *IntervalPreference) ID() string { return p.id }

// Resolution implements Preference.
func (p *IntervalPreference) Resolution() int { return p.resolution }

// Supports implements Preference.
func (p *IntervalPreference) Supports(k Kind) bool { return k.IsSpan() }

// Density returns the underlying density.
func (p *IntervalPreference) Density() *Density { return p.density }

// ValueOf sums the areas under every span of r.
func (p *IntervalPreference) ValueOf(r Resource) *big.Rat {
	sp, ok := r.(spanned)
	if !ok {
		return zero()
	}
	total := zero()
	for _, s := range sp.Spans() {
		total.Add(total, p.density.Area(s.Start, s.Stop))
	}
	return total
}

// Normalize rescales the density so that ValueOf(whole) == 1.
func (p *IntervalPreference) Normalize(whole Resource) error {
	v := p.ValueOf(whole)
	if v.Sign() == 0 {
		return fmt.Errorf("preference %q: %w", p.id, ErrZeroValue)
	}
	p.density = p.density.scaled(ratQuo(ratInt(1), v))
	return nil
}

// String renders "IntervalPreference(id)".
func (p *IntervalPreference) String() string {
	return fmt.Sprintf("IntervalPreference(%s)", p.id)
}
