// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// divide_and_choose.go — the two-party cut-and-choose protocol and its
// inverse for chores.
//
// Steps:
//   1) draw the cutter uniformly at random; the other participant picks;
//   2) the cutter splits the whole into two pieces it values equally;
//   3) the picker takes the piece it values more (inverse: less), ties going
//      to the first piece; the cutter keeps the other.

package divide

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// DivideAndChoose is cut-and-choose for two participants.
type DivideAndChoose struct {
	base
	inverse bool
}

// NewDivideAndChoose binds the protocol to two participants and a resource.
func NewDivideAndChoose(users []cake.Preference, whole cake.Resource, opts ...Option) *DivideAndChoose {
	return &DivideAndChoose{base: newBase("divide-and-choose", users, whole, nil, opts...)}
}

// NewInverseDivideAndChoose is the chore variant: the picker takes the piece
// it values less.
func NewInverseDivideAndChoose(users []cake.Preference, whole cake.Resource, opts ...Option) *DivideAndChoose {
	return &DivideAndChoose{base: newBase("inverse-divide-and-choose", users, whole, nil, opts...), inverse: true}
}

// Settings implements Divider.
//
// The inverse variant declares no guarantee: its picker keeps the piece it
// values less, which is fair for chores but is the opposite of what the
// goods-sense flags promise.
func (d *DivideAndChoose) Settings() Settings {
	if d.inverse {
		return Settings{Users: 2}
	}
	return Settings{Users: 2, EnvyFree: true, Proportional: true}
}

// IsValid implements Divider.
func (d *DivideAndChoose) IsValid() error {
	return d.validate(d.Settings())
}

// Divide implements Divider.
func (d *DivideAndChoose) Divide() (*Division, error) {
	cutter := d.cfg.rng.Intn(2)
	picker := 1 - cutter

	pieces, err := d.whole.CreatePieces(d.users[cutter], 2, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: cutter %q: %w", d.name, d.users[cutter].ID(), err)
	}

	choose := bestPiece
	if d.inverse {
		choose = worstPiece
	}
	pick := choose(d.users[picker], pieces)

	div := d.newDivision()
	div.Shares[picker].Pieces = []cake.Resource{pieces[pick]}
	div.Shares[cutter].Pieces = []cake.Resource{pieces[1-pick]}

	d.log().Debug("divided",
		zap.String("cutter", d.users[cutter].ID()),
		zap.String("picker", d.users[picker].ID()),
		zap.Stringer("picked", pieces[pick]),
		zap.Stringer("kept", pieces[1-pick]))
	return div, nil
}
