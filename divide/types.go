// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// types.go — the Divider contract and the Division it produces.

package divide

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/fairdiv/cake"
	"github.com/shopspring/decimal"
)

// AnyUsers in Settings.Users means "any n >= 2".
const AnyUsers = 0

// Settings declares the participant count a protocol accepts and the
// fairness properties it guarantees, in the goods sense that validate audits.
//
// The flags hold on span resources (Continuous, IntervalSet), where every
// cut lands within 1/R of its target. On Counted and Collection wholes a cut
// is the best subset at or below the target, so a protocol whose guarantee
// rests on exact cuts (divide-and-choose, last diminisher, Dubins–Spanier,
// lone chooser) can leave a participant short of 1/n. Protocols that never
// cut (the auctions, adjusted winner) hold on every kind.
type Settings struct {
	Users        int
	EnvyFree     bool
	Proportional bool
	Equitable    bool
}

// String renders "users=2 envy-free proportional".
func (s Settings) String() string {
	users := "n"
	if s.Users != AnyUsers {
		users = fmt.Sprint(s.Users)
	}
	parts := []string{"users=" + users}
	if s.EnvyFree {
		parts = append(parts, "envy-free")
	}
	if s.Proportional {
		parts = append(parts, "proportional")
	}
	if s.Equitable {
		parts = append(parts, "equitable")
	}
	return strings.Join(parts, " ")
}

// Divider is one fair-division protocol bound to its participants and
// resource. IsValid must succeed before Divide is called; Divide works on a
// clone and never mutates the resource it was given.
type Divider interface {
	Name() string
	Settings() Settings
	IsValid() error
	Divide() (*Division, error)
}

// Share is what one participant receives.
type Share struct {
	Participant cake.Preference
	Pieces      []cake.Resource
}

// Value returns the pieces' total value under pref.
func (s Share) Value(pref cake.Preference) *big.Rat {
	return cake.Sum(pref, s.Pieces)
}

// Own returns the value of the share under its owner's preference.
func (s Share) Own() *big.Rat {
	return s.Value(s.Participant)
}

// ActualValue returns the pieces' total preference-free magnitude.
func (s Share) ActualValue() *big.Rat {
	return cake.TotalActual(s.Pieces)
}

// Division is the result of a protocol run. Shares are in the caller's
// participant order and partition Whole.
type Division struct {
	Algorithm  string
	Whole      cake.Resource
	Shares     []Share
	Settlement *Settlement
	Shared     *SharedItem
}

// ShareOf returns the share of the participant with the given ID.
func (d *Division) ShareOf(id string) (Share, bool) {
	for _, s := range d.Shares {
		if s.Participant.ID() == id {
			return s, true
		}
	}
	return Share{}, false
}

// Participants returns the preferences in share order.
func (d *Division) Participants() []cake.Preference {
	out := make([]cake.Preference, len(d.Shares))
	for i, s := range d.Shares {
		out[i] = s.Participant
	}
	return out
}

// Values maps each participant ID to the value of its own share.
func (d *Division) Values() map[string]*big.Rat {
	out := make(map[string]*big.Rat, len(d.Shares))
	for _, s := range d.Shares {
		out[s.Participant.ID()] = s.Own()
	}
	return out
}

// ActualValue returns the total magnitude handed out.
func (d *Division) ActualValue() *big.Rat {
	total := new(big.Rat)
	for _, s := range d.Shares {
		total.Add(total, s.ActualValue())
	}
	return total
}

// Settlement holds the side payments of a sealed-bid run, all in the
// participants' own value units. Amounts[id] > 0 means id pays into the pot,
// < 0 means id receives; amounts always sum to zero.
type Settlement struct {
	Fair     map[string]*big.Rat
	Assigned map[string]*big.Rat
	Excess   map[string]*big.Rat
	Adjusted map[string]*big.Rat
	Amounts  map[string]*big.Rat
	Surplus  *big.Rat
}

// Total returns the sum of all amounts.
func (s *Settlement) Total() *big.Rat {
	total := new(big.Rat)
	for _, v := range s.Amounts {
		total.Add(total, v)
	}
	return total
}

// Money renders the amount of id as a decimal rounded half away from zero
// to places digits. Unknown ids are zero.
func (s *Settlement) Money(id string, places int32) decimal.Decimal {
	v, ok := s.Amounts[id]
	if !ok {
		return decimal.Zero
	}
	num := decimal.NewFromBigInt(v.Num(), 0)
	den := decimal.NewFromBigInt(v.Denom(), 0)
	return num.DivRound(den, places)
}

// SharedItem is the one piece adjusted winner splits to equalize totals:
// the winner keeps 1-Rate of Item and the loser gets Rate of it. WinnerGives
// and LoserGets are the corresponding value changes under each side's own
// preference.
type SharedItem struct {
	Item        cake.Resource
	Winner      string
	Loser       string
	Rate        *big.Rat
	WinnerGives *big.Rat
	LoserGets   *big.Rat
}
