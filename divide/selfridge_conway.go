// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// selfridge_conway.go — Selfridge–Conway envy-free division for three.
//
// Steps (roles drawn from the injected rng):
//   1) the cutter splits the whole into three pieces equal in its eyes;
//   2) the trimmer trims its favorite piece down to its runner-up (no trim
//      on a tie); the trimming is set aside;
//   3) the chooser picks, then the trimmer (it must take the trimmed piece
//      if still there), then the cutter takes the last untrimmed piece;
//   4) of chooser and trimmer, whoever did NOT get the trimmed piece cuts
//      the trimming in three; the one who did picks first, the cutter
//      second, the splitter last.
// Piece values are exact only up to the 1/Resolution search tolerance, so
// envy-freeness holds to within a few multiples of that tolerance.

package divide

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// SelfridgeConway is the discrete envy-free protocol for three participants.
type SelfridgeConway struct {
	base
}

// NewSelfridgeConway binds the protocol to exactly three participants.
func NewSelfridgeConway(users []cake.Preference, whole cake.Resource, opts ...Option) *SelfridgeConway {
	return &SelfridgeConway{base: newBase("selfridge-conway", users, whole, nil, opts...)}
}

// Settings implements Divider.
func (d *SelfridgeConway) Settings() Settings {
	return Settings{Users: 3, EnvyFree: true, Proportional: true}
}

// IsValid implements Divider. Trims need pieces of arbitrary value, so only
// span resources qualify.
func (d *SelfridgeConway) IsValid() error {
	if err := d.validate(d.Settings()); err != nil {
		return err
	}
	if !d.whole.Kind().IsSpan() {
		return fmt.Errorf("%s: %s resource: %w", d.name, d.whole.Kind(), ErrUnsupportedKind)
	}
	return nil
}

// Divide implements Divider.
func (d *SelfridgeConway) Divide() (*Division, error) {
	var (
		log     = d.log()
		div     = d.newDivision()
		roles   = d.shuffled()
		cutter  = roles[0]
		trimmer = roles[1]
		chooser = roles[2]
	)

	pieces, err := d.whole.CreatePieces(d.users[cutter], 3, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: cutter %q: %w", d.name, d.users[cutter].ID(), err)
	}

	// trimmer levels its top piece with its runner-up
	first, second := topTwo(d.users[trimmer], pieces)
	var (
		trimmed  cake.Resource
		trimming cake.Resource
	)
	top := d.users[trimmer].ValueOf(pieces[first])
	runnerUp := d.users[trimmer].ValueOf(pieces[second])
	if top.Cmp(runnerUp) > 0 {
		parts, err := pieces[first].CreatePieces(d.users[trimmer], 2, runnerUp)
		if err != nil {
			return nil, fmt.Errorf("%s: trimmer %q: %w", d.name, d.users[trimmer].ID(), err)
		}
		trimmed, trimming = parts[0], parts[1]
		pieces[first] = trimmed
		log.Debug("trimmed",
			zap.String("by", d.users[trimmer].ID()),
			zap.Stringer("piece", trimmed),
			zap.Stringer("trimming", trimming))
	}

	// stage one: chooser, trimmer, cutter
	take := func(i, at int) {
		div.Shares[i].Pieces = append(div.Shares[i].Pieces, pieces[at])
		pieces = removeAt(pieces, at)
	}
	withTrim := -1
	at := bestPiece(d.users[chooser], pieces)
	if trimmed != nil && pieces[at] == trimmed {
		withTrim = chooser
	}
	take(chooser, at)

	at = bestPiece(d.users[trimmer], pieces)
	if trimmed != nil && withTrim < 0 {
		at = indexOf(pieces, trimmed)
		withTrim = trimmer
	}
	take(trimmer, at)
	take(cutter, 0)

	if trimming == nil {
		return div, nil
	}

	// stage two: the other of chooser/trimmer splits the trimming
	splitter := chooser
	if withTrim == chooser {
		splitter = trimmer
	}
	pieces, err = trimming.CreatePieces(d.users[splitter], 3, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: splitter %q: %w", d.name, d.users[splitter].ID(), err)
	}
	for _, i := range []int{withTrim, cutter, splitter} {
		take(i, bestPiece(d.users[i], pieces))
	}
	log.Debug("split trimming",
		zap.String("splitter", d.users[splitter].ID()),
		zap.String("first", d.users[withTrim].ID()))
	return div, nil
}

// topTwo returns the indices of the two pieces pref values most; ties go to
// the earlier piece.
func topTwo(pref cake.Preference, pieces []cake.Resource) (int, int) {
	first := bestPiece(pref, pieces)
	second := -1
	for i, p := range pieces {
		if i == first {
			continue
		}
		if second < 0 || pref.ValueOf(p).Cmp(pref.ValueOf(pieces[second])) > 0 {
			second = i
		}
	}
	return first, second
}

func indexOf(pieces []cake.Resource, r cake.Resource) int {
	for i, p := range pieces {
		if p == r {
			return i
		}
	}
	return -1
}
