// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// dubins_spanier.go — sequential moving knife for n participants.
//
// Each round, with k active participants, every one of them marks the piece
// it values at 1/k of the current pool. The smallest mark (the first to call
// "stop" as the knife sweeps) wins: that participant takes its piece and
// leaves. Equal marks go to the participant earlier in the random order.
// The final participant takes the rest.

package divide

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// DubinsSpanier is the moving-knife protocol.
type DubinsSpanier struct {
	base
}

// NewDubinsSpanier binds the protocol to n >= 2 participants.
func NewDubinsSpanier(users []cake.Preference, whole cake.Resource, opts ...Option) *DubinsSpanier {
	return &DubinsSpanier{base: newBase("dubins-spanier", users, whole, nil, opts...)}
}

// Settings implements Divider.
func (d *DubinsSpanier) Settings() Settings {
	return Settings{Users: AnyUsers, Proportional: true}
}

// IsValid implements Divider.
func (d *DubinsSpanier) IsValid() error {
	return d.validate(d.Settings())
}

// Divide implements Divider.
func (d *DubinsSpanier) Divide() (*Division, error) {
	var (
		log    = d.log()
		div    = d.newDivision()
		pool   = d.whole.Clone()
		active = d.shuffled()
	)
	for round := 1; len(active) > 1; round++ {
		k := big.NewRat(int64(len(active)), 1)

		var (
			winner = -1
			piece  cake.Resource
		)
		for _, i := range active {
			u := d.users[i]
			mark, err := pool.FindPiece(u, new(big.Rat).Quo(u.ValueOf(pool), k))
			if err != nil {
				return nil, fmt.Errorf("%s: round %d: mark by %q: %w", d.name, round, u.ID(), err)
			}
			if winner < 0 || mark.Compare(piece) < 0 {
				winner, piece = i, mark
			}
		}
		if err := pool.Remove(piece); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", d.name, round, err)
		}

		div.Shares[winner].Pieces = []cake.Resource{piece}
		active = without(active, winner)
		log.Debug("stopped",
			zap.Int("round", round),
			zap.String("participant", d.users[winner].ID()),
			zap.Stringer("piece", piece))
	}
	div.Shares[active[0]].Pieces = []cake.Resource{pool}
	return div, nil
}
