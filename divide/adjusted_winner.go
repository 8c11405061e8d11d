// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// adjusted_winner.go — Brams–Taylor adjusted winner for two participants.
//
// Steps:
//   1) settle uncontested favorites and deal the contested pile by
//      alternation (Balanced by default), as BalancedAlternatingChoice does;
//   2) the participant with the larger total is the winner, the gap is
//      W - L (participants must value the whole equally for totals to be
//      comparable);
//   3) the winner's units are ordered by w(s)/l(s) ascending; units are
//      transferred whole to the loser while gap - (w(s)+l(s)) >= 0;
//   4) the next unit is shared at rate = gap / (w(s)+l(s)): the winner
//      gives up rate·w(s) and the loser gains rate·l(s).
// Equal totals after step 1 or 3 leave no shared item. The outcome is
// equitable; proportionality and envy-freeness depend on step 1 handing
// each unit to whoever values it more, which alternation does not.

package divide

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// AdjustedWinner is the two-party point-allocation protocol.
type AdjustedWinner struct {
	base
}

// NewAdjustedWinner defaults to the Balanced strategy for contested units.
func NewAdjustedWinner(users []cake.Preference, whole cake.Resource, opts ...Option) *AdjustedWinner {
	return &AdjustedWinner{base: newBase("adjusted-winner", users, whole, Balanced, opts...)}
}

// Settings implements Divider.
//
// Only equitability is declared. The claiming phase hands out contested
// units by alternation rather than to whoever values them more, so the
// starting allocation need not be efficient and the transfers can equalize
// both parties below half of the whole. Each then envies the other.
func (d *AdjustedWinner) Settings() Settings {
	return Settings{Users: 2, Equitable: true}
}

// IsValid implements Divider.
func (d *AdjustedWinner) IsValid() error {
	if err := d.validate(d.Settings()); err != nil {
		return err
	}
	return d.requireEqualValuation()
}

// transfer is a winner unit considered for hand-over.
type transfer struct {
	at   int
	w, l *big.Rat
}

// before orders by w/l ascending; units the loser does not value go last.
func (t transfer) before(o transfer) bool {
	switch {
	case t.l.Sign() == 0:
		return false
	case o.l.Sign() == 0:
		return true
	}
	return new(big.Rat).Mul(t.w, o.l).Cmp(new(big.Rat).Mul(o.w, t.l)) < 0
}

// Divide implements Divider.
func (d *AdjustedWinner) Divide() (*Division, error) {
	div := d.newDivision()
	contest := d.settle(div, d.whole.AsCollection(), bestPiece)
	d.alternate(div, contest, bestPiece)

	winner, loser := 0, 1
	gap := new(big.Rat).Sub(div.Shares[0].Own(), div.Shares[1].Own())
	if gap.Sign() < 0 {
		winner, loser = 1, 0
		gap.Neg(gap)
	}
	if gap.Sign() == 0 {
		return div, nil
	}

	var (
		log   = d.log()
		wu    = d.users[winner]
		lu    = d.users[loser]
		cands = make([]transfer, len(div.Shares[winner].Pieces))
	)
	for i, p := range div.Shares[winner].Pieces {
		cands[i] = transfer{at: i, w: wu.ValueOf(p), l: lu.ValueOf(p)}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].before(cands[j]) })

	moved := make(map[int]bool)
	for _, c := range cands {
		sum := new(big.Rat).Add(c.w, c.l)
		if sum.Sign() == 0 {
			continue
		}
		p := div.Shares[winner].Pieces[c.at]
		if gap.Cmp(sum) >= 0 {
			moved[c.at] = true
			div.Shares[loser].Pieces = append(div.Shares[loser].Pieces, p)
			gap.Sub(gap, sum)
			log.Debug("transferred", zap.Stringer("unit", p), zap.String("gap", gap.RatString()))
			if gap.Sign() == 0 {
				break
			}
			continue
		}
		rate := new(big.Rat).Quo(gap, sum)
		div.Shared = &SharedItem{
			Item:        p,
			Winner:      wu.ID(),
			Loser:       lu.ID(),
			Rate:        rate,
			WinnerGives: new(big.Rat).Mul(rate, c.w),
			LoserGets:   new(big.Rat).Mul(rate, c.l),
		}
		log.Debug("shared", zap.Stringer("unit", p), zap.String("rate", rate.RatString()))
		break
	}

	kept := make([]cake.Resource, 0, len(div.Shares[winner].Pieces)-len(moved))
	for i, p := range div.Shares[winner].Pieces {
		if !moved[i] {
			kept = append(kept, p)
		}
	}
	div.Shares[winner].Pieces = kept

	if div.Shared == nil && gap.Sign() != 0 {
		return nil, fmt.Errorf("%s: gap %s left after transfers: %w", d.name, gap.RatString(), cake.ErrWeightUnattainable)
	}
	return div, nil
}
