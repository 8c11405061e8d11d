// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// strategy.go — turn orders for the alternating protocols.
//
// A Strategy is given the participant count n, the number of turns that
// will be taken and the divider's rng, and returns a generator of participant
// indices. Generators never run dry: after the planned turns they continue
// with the same pattern.

package divide

import (
	"fmt"
	"math/rand"
	"sort"
)

// Strategy builds a turn generator for n participants.
type Strategy func(n, turns int, rng *rand.Rand) func() int

// Ordinal cycles 0, 1, …, n-1, 0, 1, ….
func Ordinal(n, _ int, _ *rand.Rand) func() int {
	next := 0
	return func() int {
		i := next
		next = (next + 1) % n
		return i
	}
}

// Random takes rounds of n turns, each round a fresh shuffle.
func Random(n, _ int, rng *rand.Rand) func() int {
	var round []int
	return func() int {
		if len(round) == 0 {
			round = permutation(n, rng)
		}
		i := round[0]
		round = round[1:]
		return i
	}
}

// Balanced follows the Prouhet–Thue–Morse sequence over n symbols: turn k
// goes to (sum of the base-n digits of k) mod n. For two participants this is
// a b b a b a a b …, which evens out the first-mover advantage.
func Balanced(n, _ int, _ *rand.Rand) func() int {
	k := 0
	return func() int {
		i := prouhet(k, n)
		k++
		return i
	}
}

// prouhet returns the k-th symbol of the Prouhet–Thue–Morse sequence over n.
// n < 2 always yields 0.
//
// Complexity: O(log_n k).
func prouhet(k, n int) int {
	if n < 2 {
		return 0
	}
	sum := 0
	for ; k > 0; k /= n {
		sum += k % n
	}
	return sum % n
}

// BalancedSequence returns the first turns of Balanced over n participants as
// letters starting at 'a', rounded up to a power of n (and at least n).
func BalancedSequence(n, turns int) string {
	if n < 1 {
		return ""
	}
	length := n
	for n > 1 && length < turns {
		length *= n
	}
	out := make([]byte, length)
	for k := range out {
		out[k] = byte('a' + prouhet(k, n))
	}
	return string(out)
}

var strategies = map[string]Strategy{
	"ordinal":  Ordinal,
	"random":   Random,
	"balanced": Balanced,
}

// StrategyByName resolves "ordinal", "random" or "balanced".
func StrategyByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("strategy %q (have %v): %w", name, StrategyNames(), ErrUnknownAlgorithm)
	}
	return s, nil
}

// StrategyNames lists the registered strategy names, sorted.
func StrategyNames() []string {
	out := make([]string, 0, len(strategies))
	for k := range strategies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
