// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// lone_chooser.go — Fink's lone chooser for n participants.
//
// Participants join one at a time in a random order. The first holds the
// whole. When the k-th joins, every current holder splits its own holding
// into k pieces it values equally, and the newcomer takes its favorite
// piece from each holder. Holdings become interval sets with holes, so the
// protocol refuses a single continuous span.

package divide

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// LoneChooser is Fink's protocol.
type LoneChooser struct {
	base
}

// NewLoneChooser binds the protocol to n >= 2 participants.
func NewLoneChooser(users []cake.Preference, whole cake.Resource, opts ...Option) *LoneChooser {
	return &LoneChooser{base: newBase("lone-chooser", users, whole, nil, opts...)}
}

// Settings implements Divider.
func (d *LoneChooser) Settings() Settings {
	return Settings{Users: AnyUsers, Proportional: true}
}

// IsValid implements Divider.
func (d *LoneChooser) IsValid() error {
	if err := d.validate(d.Settings()); err != nil {
		return err
	}
	if d.whole.Kind() == cake.KindContinuous {
		return fmt.Errorf("%s: %s resource (use an interval set): %w", d.name, d.whole.Kind(), ErrUnsupportedKind)
	}
	return nil
}

// Divide implements Divider.
func (d *LoneChooser) Divide() (*Division, error) {
	var (
		log     = d.log()
		order   = d.shuffled()
		holding = make(map[int]cake.Resource, len(order))
		holders = []int{order[0]}
	)
	holding[order[0]] = d.whole.Clone()

	for k, picker := range order[1:] {
		count := k + 2
		for _, h := range holders {
			pieces, err := holding[h].CreatePieces(d.users[h], count, nil)
			if err != nil {
				return nil, fmt.Errorf("%s: %q splits for %q: %w", d.name, d.users[h].ID(), d.users[picker].ID(), err)
			}
			pick := pieces[bestPiece(d.users[picker], pieces)]
			if err := holding[h].Remove(pick); err != nil {
				return nil, fmt.Errorf("%s: %q gives to %q: %w", d.name, d.users[h].ID(), d.users[picker].ID(), err)
			}
			if got, ok := holding[picker]; ok {
				if err := got.Append(pick); err != nil {
					return nil, fmt.Errorf("%s: %q collects: %w", d.name, d.users[picker].ID(), err)
				}
			} else {
				holding[picker] = pick
			}
			log.Debug("chose",
				zap.String("holder", d.users[h].ID()),
				zap.String("chooser", d.users[picker].ID()),
				zap.Stringer("piece", pick))
		}
		holders = append(holders, picker)
	}

	div := d.newDivision()
	for i, r := range holding {
		div.Shares[i].Pieces = []cake.Resource{r}
	}
	return div, nil
}
