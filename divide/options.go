// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// options.go — functional options shared by every divider.
//
// Contract:
//   • Option constructors validate and panic on meaningless input (nil rng,
//     nil logger, nil strategy). Dividers themselves never panic.
//   • Defaults are deterministic: seed defaultRNGSeed, zap.NewNop(), and the
//     protocol's own alternation strategy.

package divide

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a divider at construction time.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	logger   *zap.Logger
	strategy Strategy
}

// newConfig applies opts over the defaults; fallback is the protocol's
// default strategy (nil for protocols that do not alternate).
func newConfig(fallback Strategy, opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.strategy == nil {
		cfg.strategy = fallback
	}
	return cfg
}

// WithSeed seeds the role-assignment stream. Seed 0 selects the package
// default, so it is as reproducible as any other seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r for role assignment. r must not be shared with another
// divider that runs concurrently. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("divide: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger attaches a logger; rounds are logged at debug level.
// Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("divide: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithStrategy overrides the turn order of the alternating protocols.
// Ignored by protocols that do not alternate. Panics on nil.
func WithStrategy(s Strategy) Option {
	if s == nil {
		panic("divide: WithStrategy(nil)")
	}
	return func(c *config) {
		c.strategy = s
	}
}
