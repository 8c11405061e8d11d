// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// alternation.go — turn-taking protocols over the units of the whole.
//
// AlternatingChoice: participants take turns (per Strategy) picking their
// favorite remaining unit until none remain.
//
// BalancedAlternatingChoice runs a settling phase first: every round each
// participant names its favorite remaining unit; if all names differ each
// gets its unit, otherwise every named unit moves to a contested pile. The
// contested pile is then dealt by alternation.
//
// The inverse variants divide chores: every pick takes the least valued unit.

package divide

import (
	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// chooser picks one of pieces for pref.
type chooser func(pref cake.Preference, pieces []cake.Resource) int

// AlternatingChoice is plain turn-taking.
type AlternatingChoice struct {
	base
	choose chooser
}

// NewAlternatingChoice defaults to the Ordinal strategy.
func NewAlternatingChoice(users []cake.Preference, whole cake.Resource, opts ...Option) *AlternatingChoice {
	return &AlternatingChoice{base: newBase("alternating-choice", users, whole, Ordinal, opts...), choose: bestPiece}
}

// NewInverseAlternatingChoice deals chores: each turn takes the least valued unit.
func NewInverseAlternatingChoice(users []cake.Preference, whole cake.Resource, opts ...Option) *AlternatingChoice {
	return &AlternatingChoice{base: newBase("inverse-alternating-choice", users, whole, Ordinal, opts...), choose: worstPiece}
}

// Settings implements Divider.
func (d *AlternatingChoice) Settings() Settings {
	return Settings{Users: AnyUsers}
}

// IsValid implements Divider.
func (d *AlternatingChoice) IsValid() error {
	return d.validate(d.Settings())
}

// Divide implements Divider. It cannot fail once IsValid has passed.
func (d *AlternatingChoice) Divide() (*Division, error) {
	div := d.newDivision()
	d.alternate(div, d.whole.AsCollection(), d.choose)
	return div, nil
}

// alternate deals pieces by the configured strategy.
func (b *base) alternate(div *Division, pieces []cake.Resource, choose chooser) {
	log := b.log()
	next := b.cfg.strategy(len(b.users), len(pieces), b.cfg.rng)
	for len(pieces) > 0 {
		i := next()
		pick := choose(b.users[i], pieces)
		div.Shares[i].Pieces = append(div.Shares[i].Pieces, pieces[pick])
		log.Debug("picked", zap.String("participant", b.users[i].ID()), zap.Stringer("piece", pieces[pick]))
		pieces = removeAt(pieces, pick)
	}
}

// settle runs the uncontested phase over pieces, assigning into div, and
// returns the contested pile in the order the units were named.
func (b *base) settle(div *Division, pieces []cake.Resource, choose chooser) []cake.Resource {
	var (
		log     = b.log()
		contest []cake.Resource
	)
	for round := 1; len(pieces) > 0; round++ {
		choice := make([]int, len(b.users))
		named := make(map[int]struct{}, len(b.users))
		for i, u := range b.users {
			choice[i] = choose(u, pieces)
			named[choice[i]] = struct{}{}
		}

		if len(named) == len(b.users) {
			for i, c := range choice {
				div.Shares[i].Pieces = append(div.Shares[i].Pieces, pieces[c])
			}
			log.Debug("settled round", zap.Int("round", round), zap.Int("units", len(choice)))
		} else {
			for _, c := range choice {
				if _, ok := named[c]; ok {
					contest = append(contest, pieces[c])
					delete(named, c)
				}
			}
			log.Debug("contested round", zap.Int("round", round), zap.Int("contested", len(contest)))
		}

		kept := pieces[:0:0]
		for j, p := range pieces {
			if !chosen(choice, j) {
				kept = append(kept, p)
			}
		}
		pieces = kept
	}
	return contest
}

func chosen(choice []int, j int) bool {
	for _, c := range choice {
		if c == j {
			return true
		}
	}
	return false
}

// BalancedAlternatingChoice settles uncontested picks before alternating.
type BalancedAlternatingChoice struct {
	base
	choose chooser
}

// NewBalancedAlternatingChoice defaults to the Balanced strategy.
func NewBalancedAlternatingChoice(users []cake.Preference, whole cake.Resource, opts ...Option) *BalancedAlternatingChoice {
	return &BalancedAlternatingChoice{base: newBase("balanced-alternating-choice", users, whole, Balanced, opts...), choose: bestPiece}
}

// NewInverseBalancedAlternatingChoice is the chore variant: participants
// name and pick their least valued units.
func NewInverseBalancedAlternatingChoice(users []cake.Preference, whole cake.Resource, opts ...Option) *BalancedAlternatingChoice {
	return &BalancedAlternatingChoice{base: newBase("inverse-balanced-alternating-choice", users, whole, Balanced, opts...), choose: worstPiece}
}

// Settings implements Divider.
func (d *BalancedAlternatingChoice) Settings() Settings {
	return Settings{Users: AnyUsers}
}

// IsValid implements Divider.
func (d *BalancedAlternatingChoice) IsValid() error {
	return d.validate(d.Settings())
}

// Divide implements Divider. It cannot fail once IsValid has passed.
func (d *BalancedAlternatingChoice) Divide() (*Division, error) {
	div := d.newDivision()
	contest := d.settle(div, d.whole.AsCollection(), d.choose)
	d.alternate(div, contest, d.choose)
	return div, nil
}
