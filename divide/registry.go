// SPDX-License-Identifier: MIT
// Package: fairdiv/divide
//
// registry.go — construction by protocol name.

package divide

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fairdiv/cake"
)

// Constructor builds a divider for users and whole.
type Constructor func(users []cake.Preference, whole cake.Resource, opts ...Option) Divider

var registry = map[string]Constructor{
	"divide-and-choose": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewDivideAndChoose(u, w, o...)
	},
	"inverse-divide-and-choose": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewInverseDivideAndChoose(u, w, o...)
	},
	"last-diminisher": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewLastDiminisher(u, w, o...)
	},
	"dubins-spanier": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewDubinsSpanier(u, w, o...)
	},
	"sealed-bid-auction": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewSealedBidAuction(u, w, o...)
	},
	"knaster-sealed-bids": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewKnasterSealedBids(u, w, o...)
	},
	"adjusted-winner": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewAdjustedWinner(u, w, o...)
	},
	"alternating-choice": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewAlternatingChoice(u, w, o...)
	},
	"balanced-alternating-choice": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewBalancedAlternatingChoice(u, w, o...)
	},
	"inverse-alternating-choice": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewInverseAlternatingChoice(u, w, o...)
	},
	"inverse-balanced-alternating-choice": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewInverseBalancedAlternatingChoice(u, w, o...)
	},
	"selfridge-conway": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewSelfridgeConway(u, w, o...)
	},
	"lone-chooser": func(u []cake.Preference, w cake.Resource, o ...Option) Divider {
		return NewLoneChooser(u, w, o...)
	},
}

// New constructs the protocol registered under name.
func New(name string, users []cake.Preference, whole cake.Resource, opts ...Option) (Divider, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	return ctor(users, whole, opts...), nil
}

// Names lists the registered protocol names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
