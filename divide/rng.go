// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// rng.go — deterministic random streams for role assignment.
//
// Policy:
//   • seed == 0 maps to defaultRNGSeed, so "no seed" is still reproducible;
//   • no time-based sources anywhere;
//   • *rand.Rand is not goroutine-safe: every divider owns its stream, and
//     Repeat derives independent children with deriveRNG.

package divide

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base and a stream id.
// base.Int63() is consumed once so reusing a stream id still decorrelates.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// permutation returns a shuffled 0..n-1 (Fisher–Yates).
// Consumes exactly n-1 draws from rng, so runs sharing a seed agree.
//
// Complexity: O(n).
func permutation(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
