// SPDX-License-Identifier: MIT
// Package: fairdiv/validate
//
// validate.go — post-hoc fairness checks over a completed Division.
//
// All checks are read-only queries: they never mutate the division and never
// return errors. Values are exact rationals. A Division.Shared unit counts
// rate·v against its winner and rate·v toward its loser, under whichever
// preference is looking; Settlement amounts count one-for-one against the
// payer, in every participant's units. WithTolerance relaxes every comparison by eps for
// runs on span resources, whose pieces are found only to within 1/Resolution.

package validate

import (
	"math/big"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/katalvlaran/fairdiv/divide"
)

// Option customizes a check.
type Option func(*config)

type config struct {
	eps *big.Rat
}

func newConfig(opts ...Option) config {
	cfg := config{eps: new(big.Rat)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTolerance accepts shortfalls up to eps. Panics on nil or negative eps.
func WithTolerance(eps *big.Rat) Option {
	if eps == nil || eps.Sign() < 0 {
		panic("validate: WithTolerance(eps < 0)")
	}
	e := new(big.Rat).Set(eps)
	return func(c *config) {
		c.eps = e
	}
}

// atLeast reports a >= b - eps.
func (c config) atLeast(a, b *big.Rat) bool {
	return new(big.Rat).Add(a, c.eps).Cmp(b) >= 0
}

// ShareValue returns s as valued by pref, including any shared-unit
// adjustment and side payment.
func ShareValue(div *divide.Division, s divide.Share, pref cake.Preference) *big.Rat {
	v := s.Value(pref)
	if st := div.Settlement; st != nil {
		if amt, ok := st.Amounts[s.Participant.ID()]; ok {
			v.Sub(v, amt)
		}
	}
	sh := div.Shared
	if sh == nil {
		return v
	}
	part := new(big.Rat).Mul(sh.Rate, pref.ValueOf(sh.Item))
	switch s.Participant.ID() {
	case sh.Winner:
		v.Sub(v, part)
	case sh.Loser:
		v.Add(v, part)
	}
	return v
}

// IsProportional reports whether every participant values its share at
// least 1/n of its value of the whole.
func IsProportional(div *divide.Division, opts ...Option) bool {
	cfg := newConfig(opts...)
	if len(div.Shares) == 0 {
		return true
	}
	n := big.NewRat(int64(len(div.Shares)), 1)
	for _, s := range div.Shares {
		fair := new(big.Rat).Quo(s.Participant.ValueOf(div.Whole), n)
		if !cfg.atLeast(ShareValue(div, s, s.Participant), fair) {
			return false
		}
	}
	return true
}

// IsEquitable reports whether every participant realizes the same value
// under its own preference. Meaningful when valuations share a scale.
func IsEquitable(div *divide.Division, opts ...Option) bool {
	cfg := newConfig(opts...)
	if len(div.Shares) == 0 {
		return true
	}
	first := ShareValue(div, div.Shares[0], div.Shares[0].Participant)
	for _, s := range div.Shares[1:] {
		v := ShareValue(div, s, s.Participant)
		if !cfg.atLeast(v, first) || !cfg.atLeast(first, v) {
			return false
		}
	}
	return true
}

// IsEnvyFree reports whether no participant values another share above its own.
func IsEnvyFree(div *divide.Division, opts ...Option) bool {
	return len(Envy(div, opts...)) == 0
}

// Envy maps each envious participant to the participants whose shares it
// values above its own, in share order.
//
// Both sides go through ShareValue under the envious participant's own
// preference, so a shared unit and side payments count on both sides. A
// participant envies another only when its own value plus the tolerance is
// still below; participants without envy are absent from the map.
//
// Complexity: O(n² · cost(ValueOf)).
func Envy(div *divide.Division, opts ...Option) map[string][]string {
	cfg := newConfig(opts...)
	out := make(map[string][]string)
	for i, s := range div.Shares {
		own := ShareValue(div, s, s.Participant)
		for j, o := range div.Shares {
			if i == j {
				continue
			}
			if !cfg.atLeast(own, ShareValue(div, o, s.Participant)) {
				id := s.Participant.ID()
				out[id] = append(out[id], o.Participant.ID())
			}
		}
	}
	return out
}

// IsConserving reports whether the shares hand out exactly the actual value
// of the whole. Tolerance does not apply: resource algebra is exact.
func IsConserving(div *divide.Division) bool {
	if div.Whole == nil {
		return false
	}
	return div.ActualValue().Cmp(div.Whole.ActualValue()) == 0
}

// Report bundles every check for one division.
type Report struct {
	Algorithm    string
	Proportional bool
	Equitable    bool
	EnvyFree     bool
	Conserving   bool

	// Values maps each participant to its own valuation of its share.
	Values map[string]*big.Rat
}

// Check runs every check on div.
func Check(div *divide.Division, opts ...Option) Report {
	values := make(map[string]*big.Rat, len(div.Shares))
	for _, s := range div.Shares {
		values[s.Participant.ID()] = ShareValue(div, s, s.Participant)
	}
	return Report{
		Algorithm:    div.Algorithm,
		Proportional: IsProportional(div, opts...),
		Equitable:    IsEquitable(div, opts...),
		EnvyFree:     IsEnvyFree(div, opts...),
		Conserving:   IsConserving(div),
		Values:       values,
	}
}

// Meets reports whether r satisfies every guarantee s declares. Conservation
// is always required.
func (r Report) Meets(s divide.Settings) bool {
	return r.Conserving &&
		(!s.Proportional || r.Proportional) &&
		(!s.EnvyFree || r.EnvyFree) &&
		(!s.Equitable || r.Equitable)
}
