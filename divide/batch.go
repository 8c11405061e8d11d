// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// batch.go — running independent dividers concurrently.
//
// Dividers share nothing mutable: each Divide works on its own clone and
// owns its rng. Preferences are only read. Repeat hands every run its own
// derived stream so the runs stay reproducible and independent.

package divide

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fairdiv/cake"
	"golang.org/x/sync/errgroup"
)

// DivideAll validates and divides every divider concurrently, returning the
// divisions in input order. The first failure cancels the runs that have not
// started yet and is returned.
func DivideAll(ctx context.Context, dividers []Divider) ([]*Division, error) {
	out := make([]*Division, len(dividers))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dividers {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := d.IsValid(); err != nil {
				return fmt.Errorf("divider %d: %w", i, err)
			}
			div, err := d.Divide()
			if err != nil {
				return fmt.Errorf("divider %d: %w", i, err)
			}
			out[i] = div
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Repeat builds runs dividers of the named protocol. Each gets an
// independent stream derived from the seed configured in opts (WithSeed or
// WithRand; the package default otherwise).
func Repeat(name string, runs int, users []cake.Preference, whole cake.Resource, opts ...Option) ([]Divider, error) {
	if _, ok := registry[name]; !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	if runs < 0 {
		return nil, fmt.Errorf("%q: runs %d: %w", name, runs, ErrNegativeRuns)
	}
	base := newConfig(nil, opts...).rng
	out := make([]Divider, runs)
	for i := range out {
		runOpts := append(append([]Option(nil), opts...), WithRand(deriveRNG(base, uint64(i))))
		out[i], _ = New(name, users, whole, runOpts...)
	}
	return out, nil
}
