// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// random.go — seeded random preferences for fixtures and property tests.
// No time-based sources: callers pass the *rand.Rand.

package cake

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNeedRand is returned when a random constructor gets a nil *rand.Rand.
var ErrNeedRand = errors.New("cake: rng is required")

// maxRandomHeight bounds the integer heights/values drawn by the random
// constructors (1..maxRandomHeight) before normalization.
const maxRandomHeight = 100

// RandomIntervalPreference draws a piecewise-linear density with steps
// equal-width segments over [0, 1] and normalizes it to unit value there.
func RandomIntervalPreference(id string, steps int, rng *rand.Rand, opts ...PreferenceOption) (*IntervalPreference, error) {
	if rng == nil {
		return nil, ErrNeedRand
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps %d: %w", steps, ErrInvalidCount)
	}
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, Point{
			X: R(int64(i), int64(steps)),
			Y: ratInt(int64(rng.Intn(maxRandomHeight) + 1)),
		})
	}
	p, err := NewIntervalPreference(id, points, opts...)
	if err != nil {
		return nil, err
	}
	unit, _ := NewContinuous(zero(), ratInt(1))
	if err := p.Normalize(unit); err != nil {
		return nil, err
	}
	return p, nil
}

// RandomCollectionPreference draws a value for every item of whole and
// normalizes to unit value over it.
func RandomCollectionPreference(id string, whole *Collection, rng *rand.Rand, opts ...PreferenceOption) (*CollectionPreference, error) {
	if rng == nil {
		return nil, ErrNeedRand
	}
	values := make(map[string]int64, len(whole.items))
	for _, it := range whole.items {
		values[it] = int64(rng.Intn(maxRandomHeight) + 1)
	}
	p, err := NewCollectionPreference(id, IntValues(values), opts...)
	if err != nil {
		return nil, err
	}
	if err := p.Normalize(whole); err != nil {
		return nil, err
	}
	return p, nil
}

// RandomCollection builds a collection of n items named "item-00".."item-NN"
// in a shuffled order. n < 0 fails with ErrInvalidCount; n == 0 is the empty
// collection.
func RandomCollection(n int, rng *rand.Rand) (*Collection, error) {
	if rng == nil {
		return nil, ErrNeedRand
	}
	if n < 0 {
		return nil, fmt.Errorf("item count %d: %w", n, ErrInvalidCount)
	}
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}
	rng.Shuffle(n, func(i, j int) { items[i], items[j] = items[j], items[i] })
	return NewCollection(items...)
}
