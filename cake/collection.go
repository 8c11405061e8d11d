// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// collection.go — discrete goods with exactly one instance of each item
// (team member selection, for example). Item order is preserved and drives
// the tie-break of the piece search.

package cake

import (
	"fmt"
	"math/big"
	"strings"
)

// Collection is an ordered list of unique items.
type Collection struct {
	items []string
}

// NewCollection fails with ErrDuplicateItem when an item repeats.
func NewCollection(items ...string) (*Collection, error) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			return nil, fmt.Errorf("item %q: %w", it, ErrDuplicateItem)
		}
		seen[it] = struct{}{}
	}
	return &Collection{items: append([]string(nil), items...)}, nil
}

// Kind implements Resource.
func (c *Collection) Kind() Kind { return KindCollection }

// Items returns a copy of the items in order.
func (c *Collection) Items() []string { return append([]string(nil), c.items...) }

// Contains reports whether item is present.
func (c *Collection) Contains(item string) bool {
	for _, it := range c.items {
		if it == item {
			return true
		}
	}
	return false
}

// ActualValue returns the number of items.
func (c *Collection) ActualValue() *big.Rat { return ratInt(int64(len(c.items))) }

// Clone implements Resource.
func (c *Collection) Clone() Resource { return &Collection{items: c.Items()} }

func collectionOf(piece Resource) (*Collection, error) {
	p, ok := piece.(*Collection)
	if !ok {
		return nil, fmt.Errorf("%s piece on collection resource: %w", piece.Kind(), ErrKindMismatch)
	}
	return p, nil
}

// Remove drops the items of piece, all of which must be present.
func (c *Collection) Remove(piece Resource) error {
	p, err := collectionOf(piece)
	if err != nil {
		return err
	}
	drop := make(map[string]struct{}, len(p.items))
	for _, it := range p.items {
		if !c.Contains(it) {
			return fmt.Errorf("item %q: %w", it, ErrInsufficientSupply)
		}
		drop[it] = struct{}{}
	}
	kept := c.items[:0:0]
	for _, it := range c.items {
		if _, gone := drop[it]; !gone {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return nil
}

// Append adds the items of piece that are not already present, in order.
func (c *Collection) Append(piece Resource) error {
	p, err := collectionOf(piece)
	if err != nil {
		return err
	}
	for _, it := range p.items {
		if !c.Contains(it) {
			c.items = append(c.items, it)
		}
	}
	return nil
}

// AsCollection returns one single-item Collection per item.
func (c *Collection) AsCollection() []Resource {
	out := make([]Resource, len(c.items))
	for i, it := range c.items {
		out[i] = &Collection{items: []string{it}}
	}
	return out
}

func (c *Collection) units() []string { return c.Items() }

func (c *Collection) fromUnits(units []string) Resource {
	return &Collection{items: append([]string(nil), units...)}
}

// FindPiece implements Resource via the discrete subset search.
func (c *Collection) FindPiece(pref Preference, weight *big.Rat) (Resource, error) {
	return findDiscretePiece(c, pref, weight)
}

// CreatePieces implements Resource.
func (c *Collection) CreatePieces(pref Preference, count int, weight *big.Rat) ([]Resource, error) {
	return createPieces(c, pref, count, weight)
}

// Compare implements Resource.
func (c *Collection) Compare(other Resource) int { return compareActual(c, other) }

// String renders "[a b c]".
func (c *Collection) String() string { return "[" + strings.Join(c.items, " ") + "]" }
