// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// last_diminisher.go — Banach–Knaster last diminisher for n participants.
//
// Each round, on the pool P with k active participants (in a random order):
//   1) every active u fixes its threshold t_u = value_u(P) / k;
//   2) the first active participant cuts a piece worth t_u to itself;
//   3) each later participant that values the piece above its own threshold
//      trims it down to exactly that threshold, returning the trimming to P;
//   4) the last participant to touch the piece takes it and leaves.
// The final participant takes what is left of P.

package divide

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// LastDiminisher is the Banach–Knaster protocol.
type LastDiminisher struct {
	base
}

// NewLastDiminisher binds the protocol to n >= 2 participants.
func NewLastDiminisher(users []cake.Preference, whole cake.Resource, opts ...Option) *LastDiminisher {
	return &LastDiminisher{base: newBase("last-diminisher", users, whole, nil, opts...)}
}

// Settings implements Divider.
func (d *LastDiminisher) Settings() Settings {
	return Settings{Users: AnyUsers, Proportional: true}
}

// IsValid implements Divider.
func (d *LastDiminisher) IsValid() error {
	return d.validate(d.Settings())
}

// Divide implements Divider.
func (d *LastDiminisher) Divide() (*Division, error) {
	var (
		log    = d.log()
		div    = d.newDivision()
		pool   = d.whole.Clone()
		active = d.shuffled()
	)
	for round := 1; len(active) > 1; round++ {
		k := big.NewRat(int64(len(active)), 1)
		threshold := make(map[int]*big.Rat, len(active))
		for _, i := range active {
			threshold[i] = new(big.Rat).Quo(d.users[i].ValueOf(pool), k)
		}

		last := active[0]
		piece, err := pool.FindPiece(d.users[last], threshold[last])
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: cut by %q: %w", d.name, round, d.users[last].ID(), err)
		}
		if err := pool.Remove(piece); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", d.name, round, err)
		}

		for _, i := range active[1:] {
			u := d.users[i]
			if u.ValueOf(piece).Cmp(threshold[i]) <= 0 {
				continue
			}
			parts, err := piece.CreatePieces(u, 2, threshold[i])
			if err != nil {
				return nil, fmt.Errorf("%s: round %d: trim by %q: %w", d.name, round, u.ID(), err)
			}
			if err := pool.Append(parts[1]); err != nil {
				return nil, fmt.Errorf("%s: round %d: return trimming: %w", d.name, round, err)
			}
			piece, last = parts[0], i
			log.Debug("trimmed", zap.Int("round", round), zap.String("by", u.ID()), zap.Stringer("piece", piece))
		}

		div.Shares[last].Pieces = []cake.Resource{piece}
		active = without(active, last)
		log.Debug("assigned",
			zap.Int("round", round),
			zap.String("participant", d.users[last].ID()),
			zap.Stringer("piece", piece),
			zap.Strings("remaining", ids(d.users, active)))
	}
	div.Shares[active[0]].Pieces = []cake.Resource{pool}
	return div, nil
}

// without returns idx without v, preserving order.
func without(idx []int, v int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if i != v {
			out = append(out, i)
		}
	}
	return out
}
