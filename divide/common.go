// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// common.go — state and checks shared by every protocol, plus the small
// choice helpers (best piece, worst piece, highest bidder).

package divide

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// base is embedded by every protocol.
type base struct {
	name  string
	users []cake.Preference
	whole cake.Resource
	cfg   config
}

func newBase(name string, users []cake.Preference, whole cake.Resource, fallback Strategy, opts ...Option) base {
	return base{
		name:  name,
		users: append([]cake.Preference(nil), users...),
		whole: whole,
		cfg:   newConfig(fallback, opts...),
	}
}

// Name implements Divider.
func (b *base) Name() string { return b.name }

// validate runs the checks common to all protocols against s.
//
// Order of checks, first failure wins:
//   1) at least two participants (ErrTooFewParticipants);
//   2) the count s.Users demands, unless AnyUsers (ErrWrongParticipantCount);
//   3) no nil preference and no repeated ID (ErrDuplicateParticipant);
//   4) a non-nil whole (ErrNilResource);
//   5) every preference supports the whole's kind (cake.ErrKindMismatch).
//
// Complexity: O(n) plus n Supports calls.
func (b *base) validate(s Settings) error {
	n := len(b.users)
	if n < 2 {
		return fmt.Errorf("%s: %d participants: %w", b.name, n, ErrTooFewParticipants)
	}
	if s.Users != AnyUsers && n != s.Users {
		return fmt.Errorf("%s: want %d participants, got %d: %w", b.name, s.Users, n, ErrWrongParticipantCount)
	}
	seen := make(map[string]struct{}, n)
	for _, u := range b.users {
		if u == nil {
			return fmt.Errorf("%s: nil preference: %w", b.name, ErrTooFewParticipants)
		}
		if _, dup := seen[u.ID()]; dup {
			return fmt.Errorf("%s: participant %q: %w", b.name, u.ID(), ErrDuplicateParticipant)
		}
		seen[u.ID()] = struct{}{}
	}
	if b.whole == nil {
		return fmt.Errorf("%s: %w", b.name, ErrNilResource)
	}
	for _, u := range b.users {
		if !u.Supports(b.whole.Kind()) {
			return fmt.Errorf("%s: participant %q on %s resource: %w", b.name, u.ID(), b.whole.Kind(), cake.ErrKindMismatch)
		}
	}
	return nil
}

// requireEqualValuation fails unless every participant values the whole the same.
func (b *base) requireEqualValuation() error {
	first := b.users[0].ValueOf(b.whole)
	for _, u := range b.users[1:] {
		if v := u.ValueOf(b.whole); v.Cmp(first) != 0 {
			return fmt.Errorf("%s: %q sees %s, %q sees %s: %w",
				b.name, b.users[0].ID(), first.RatString(), u.ID(), v.RatString(), ErrUnequalValuation)
		}
	}
	return nil
}

// newDivision returns an empty division with one share per participant,
// in caller order.
func (b *base) newDivision() *Division {
	d := &Division{Algorithm: b.name, Whole: b.whole.Clone(), Shares: make([]Share, len(b.users))}
	for i, u := range b.users {
		d.Shares[i] = Share{Participant: u}
	}
	return d
}

// shuffled returns the participant indices in a random order.
func (b *base) shuffled() []int {
	return permutation(len(b.users), b.cfg.rng)
}

func (b *base) log() *zap.Logger {
	return b.cfg.logger.With(zap.String("algorithm", b.name))
}

// bestPiece returns the index of the piece pref values most; ties go to the
// earliest piece. pieces must be non-empty.
//
// Complexity: O(len(pieces) · cost(ValueOf)).
func bestPiece(pref cake.Preference, pieces []cake.Resource) int {
	best, bestVal := 0, pref.ValueOf(pieces[0])
	for i := 1; i < len(pieces); i++ {
		if v := pref.ValueOf(pieces[i]); v.Cmp(bestVal) > 0 {
			best, bestVal = i, v
		}
	}
	return best
}

// worstPiece returns the index of the piece pref values least; ties go to
// the earliest piece.
func worstPiece(pref cake.Preference, pieces []cake.Resource) int {
	worst, worstVal := 0, pref.ValueOf(pieces[0])
	for i := 1; i < len(pieces); i++ {
		if v := pref.ValueOf(pieces[i]); v.Cmp(worstVal) < 0 {
			worst, worstVal = i, v
		}
	}
	return worst
}

// highestBidder returns the index of the participant that values piece
// most, scanning in order; ties go to the earliest in order. The winning
// bid is returned as computed by ValueOf and must not be mutated.
//
// Complexity: O(len(order) · cost(ValueOf)).
func highestBidder(users []cake.Preference, order []int, piece cake.Resource) (int, *big.Rat) {
	best, bid := order[0], users[order[0]].ValueOf(piece)
	for _, i := range order[1:] {
		if v := users[i].ValueOf(piece); v.Cmp(bid) > 0 {
			best, bid = i, v
		}
	}
	return best, bid
}

// removeAt drops pieces[i], preserving order.
func removeAt(pieces []cake.Resource, i int) []cake.Resource {
	return append(pieces[:i], pieces[i+1:]...)
}

func ids(users []cake.Preference, idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = users[i].ID()
	}
	return out
}
