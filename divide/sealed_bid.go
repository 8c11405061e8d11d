// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// sealed_bid.go — per-item sealed-bid auctions, with and without Knaster's
// side payments.
//
// The whole is decomposed with AsCollection and every unit goes to its
// highest bidder (ties: earliest in a random order). Knaster then settles:
//
//	fair_u     = value_u(whole) / n
//	excess_u   = assigned_u - fair_u
//	surplus    = Σ excess / n
//	adjusted_u = fair_u + surplus
//	amount_u   = assigned_u - adjusted_u     (Σ amount = 0)

package divide

import (
	"math/big"

	"github.com/katalvlaran/fairdiv/cake"
	"go.uber.org/zap"
)

// SealedBidAuction awards every unit to its highest bidder.
type SealedBidAuction struct {
	base
	settle bool
}

// NewSealedBidAuction is the plain auction with no side payments.
func NewSealedBidAuction(users []cake.Preference, whole cake.Resource, opts ...Option) *SealedBidAuction {
	return &SealedBidAuction{base: newBase("sealed-bid-auction", users, whole, nil, opts...)}
}

// NewKnasterSealedBids is the auction followed by Knaster's settlement.
func NewKnasterSealedBids(users []cake.Preference, whole cake.Resource, opts ...Option) *SealedBidAuction {
	return &SealedBidAuction{base: newBase("knaster-sealed-bids", users, whole, nil, opts...), settle: true}
}

// Settings implements Divider.
func (d *SealedBidAuction) Settings() Settings {
	return Settings{Users: AnyUsers, Proportional: d.settle}
}

// IsValid implements Divider.
func (d *SealedBidAuction) IsValid() error {
	return d.validate(d.Settings())
}

// Divide implements Divider. It cannot fail once IsValid has passed.
func (d *SealedBidAuction) Divide() (*Division, error) {
	var (
		log   = d.log()
		div   = d.newDivision()
		order = d.shuffled()
	)
	for _, unit := range d.whole.AsCollection() {
		i, bid := highestBidder(d.users, order, unit)
		div.Shares[i].Pieces = append(div.Shares[i].Pieces, unit)
		log.Debug("awarded",
			zap.Stringer("unit", unit),
			zap.String("participant", d.users[i].ID()),
			zap.String("bid", bid.RatString()))
	}
	if d.settle {
		div.Settlement = d.settlement(div)
	}
	return div, nil
}

func (d *SealedBidAuction) settlement(div *Division) *Settlement {
	n := len(d.users)
	s := &Settlement{
		Fair:     make(map[string]*big.Rat, n),
		Assigned: make(map[string]*big.Rat, n),
		Excess:   make(map[string]*big.Rat, n),
		Adjusted: make(map[string]*big.Rat, n),
		Amounts:  make(map[string]*big.Rat, n),
		Surplus:  new(big.Rat),
	}
	count := big.NewRat(int64(n), 1)
	for _, sh := range div.Shares {
		id := sh.Participant.ID()
		s.Fair[id] = new(big.Rat).Quo(sh.Participant.ValueOf(d.whole), count)
		s.Assigned[id] = sh.Own()
		s.Excess[id] = new(big.Rat).Sub(s.Assigned[id], s.Fair[id])
		s.Surplus.Add(s.Surplus, s.Excess[id])
	}
	s.Surplus.Quo(s.Surplus, count)
	for id := range s.Fair {
		s.Adjusted[id] = new(big.Rat).Add(s.Fair[id], s.Surplus)
		s.Amounts[id] = new(big.Rat).Sub(s.Assigned[id], s.Adjusted[id])
	}
	d.log().Debug("settled", zap.String("surplus", s.Surplus.RatString()))
	return s
}
