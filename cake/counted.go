// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// counted.go — discrete goods available in several identical units
// (class seats, for example). Items iterate in lexicographic order so the
// piece search is deterministic.

package cake

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Counted maps items to positive multiplicities.
type Counted struct {
	items map[string]int
}

// NewCounted copies items, dropping zero entries. Negative multiplicities
// fail with ErrNegativeCount.
func NewCounted(items map[string]int) (*Counted, error) {
	out := make(map[string]int, len(items))
	for k, n := range items {
		if n < 0 {
			return nil, fmt.Errorf("item %q count %d: %w", k, n, ErrNegativeCount)
		}
		if n > 0 {
			out[k] = n
		}
	}
	return &Counted{items: out}, nil
}

// Kind implements Resource.
func (c *Counted) Kind() Kind { return KindCounted }

// Items returns the item names in lexicographic order.
func (c *Counted) Items() []string {
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the multiplicity of item (0 when absent).
func (c *Counted) Count(item string) int { return c.items[item] }

// Counts returns a copy of the item → multiplicity map.
func (c *Counted) Counts() map[string]int {
	out := make(map[string]int, len(c.items))
	for k, n := range c.items {
		out[k] = n
	}
	return out
}

// ActualValue returns the sum of multiplicities.
func (c *Counted) ActualValue() *big.Rat {
	total := 0
	for _, n := range c.items {
		total += n
	}
	return ratInt(int64(total))
}

// Clone implements Resource.
func (c *Counted) Clone() Resource {
	return &Counted{items: c.Counts()}
}

func countedOf(piece Resource) (*Counted, error) {
	p, ok := piece.(*Counted)
	if !ok {
		return nil, fmt.Errorf("%s piece on counted resource: %w", piece.Kind(), ErrKindMismatch)
	}
	return p, nil
}

// Remove subtracts the multiplicities of piece. Nothing changes unless every
// item has enough supply.
func (c *Counted) Remove(piece Resource) error {
	p, err := countedOf(piece)
	if err != nil {
		return err
	}
	for k, n := range p.items {
		if c.items[k] < n {
			return fmt.Errorf("item %q: have %d, remove %d: %w", k, c.items[k], n, ErrInsufficientSupply)
		}
	}
	for k, n := range p.items {
		c.items[k] -= n
		if c.items[k] == 0 {
			delete(c.items, k)
		}
	}
	return nil
}

// Append adds the multiplicities of piece.
func (c *Counted) Append(piece Resource) error {
	p, err := countedOf(piece)
	if err != nil {
		return err
	}
	for k, n := range p.items {
		c.items[k] += n
	}
	return nil
}

// AsCollection returns one single-unit Counted per unit, in item order.
func (c *Counted) AsCollection() []Resource {
	units := c.units()
	out := make([]Resource, len(units))
	for i, u := range units {
		out[i] = &Counted{items: map[string]int{u: 1}}
	}
	return out
}

func (c *Counted) units() []string {
	var out []string
	for _, k := range c.Items() {
		for i := 0; i < c.items[k]; i++ {
			out = append(out, k)
		}
	}
	return out
}

func (c *Counted) fromUnits(units []string) Resource {
	items := make(map[string]int, len(units))
	for _, u := range units {
		items[u]++
	}
	return &Counted{items: items}
}

// FindPiece implements Resource via the discrete subset search.
func (c *Counted) FindPiece(pref Preference, weight *big.Rat) (Resource, error) {
	return findDiscretePiece(c, pref, weight)
}

// CreatePieces implements Resource.
func (c *Counted) CreatePieces(pref Preference, count int, weight *big.Rat) ([]Resource, error) {
	return createPieces(c, pref, count, weight)
}

// Compare implements Resource.
func (c *Counted) Compare(other Resource) int { return compareActual(c, other) }

// String renders "{a:2 b:1}".
func (c *Counted) String() string {
	keys := c.Items()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, c.items[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
