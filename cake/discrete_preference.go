// SPDX-License-Identifier: MIT
// Package: fairdiv/cake
//
// discrete_preference.go — item-valued preferences for Counted and
// Collection resources, and the ordinal (rank-only) variant.

package cake

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// IntValues converts integer item values into rationals.
func IntValues(values map[string]int64) map[string]*big.Rat {
	out := make(map[string]*big.Rat, len(values))
	for k, v := range values {
		out[k] = ratInt(v)
	}
	return out
}

func copyValues(values map[string]*big.Rat) (map[string]*big.Rat, error) {
	out := make(map[string]*big.Rat, len(values))
	for k, v := range values {
		if v == nil || v.Sign() < 0 {
			return nil, fmt.Errorf("item %q: %w", k, ErrNegativeValue)
		}
		out[k] = ratCopy(v)
	}
	return out, nil
}

func formatValues(values map[string]*big.Rat) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + values[k].RatString()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// itemValues is the value table shared by the discrete preferences.
type itemValues struct {
	id         string
	values     map[string]*big.Rat
	resolution int
}

// ID implements Preference.
func (p *itemValues) ID() string { return p.id }

// Resolution implements Preference.
func (p *itemValues) Resolution() int { return p.resolution }

// Value returns the value of a single item (0 when unknown).
func (p *itemValues) Value(item string) *big.Rat {
	if v, ok := p.values[item]; ok {
		return ratCopy(v)
	}
	return zero()
}

// Values returns a copy of the value table.
func (p *itemValues) Values() map[string]*big.Rat {
	out, _ := copyValues(p.values)
	return out
}

// SetValue replaces the value of one item. Negative values are rejected.
func (p *itemValues) SetValue(item string, v *big.Rat) error {
	if v == nil || v.Sign() < 0 {
		return fmt.Errorf("item %q: %w", item, ErrNegativeValue)
	}
	p.values[item] = ratCopy(v)
	return nil
}

func (p *itemValues) rescale(k *big.Rat) {
	for item, v := range p.values {
		p.values[item] = ratMul(v, k)
	}
}

func (p *itemValues) normalizeTo(id string, v *big.Rat) error {
	if v.Sign() == 0 {
		return fmt.Errorf("preference %q: %w", id, ErrZeroValue)
	}
	p.rescale(ratQuo(ratInt(1), v))
	return nil
}

// CollectionPreference values a Collection as the sum of its items' values.
type CollectionPreference struct {
	itemValues
}

// NewCollectionPreference copies values; negative values fail with
// ErrNegativeValue.
func NewCollectionPreference(id string, values map[string]*big.Rat, opts ...PreferenceOption) (*CollectionPreference, error) {
	vals, err := copyValues(values)
	if err != nil {
		return nil, fmt.Errorf("preference %q: %w", id, err)
	}
	cfg := newPreferenceConfig(opts...)
	return &CollectionPreference{itemValues{id: id, values: vals, resolution: cfg.resolution}}, nil
}

// Supports implements Preference.
func (p *CollectionPreference) Supports(k Kind) bool { return k == KindCollection }

// ValueOf sums the values of the items present in r.
func (p *CollectionPreference) ValueOf(r Resource) *big.Rat {
	c, ok := r.(*Collection)
	if !ok {
		return zero()
	}
	total := zero()
	for _, it := range c.items {
		if v, ok := p.values[it]; ok {
			total.Add(total, v)
		}
	}
	return total
}

// Normalize rescales so that ValueOf(whole) == 1.
func (p *CollectionPreference) Normalize(whole Resource) error {
	return p.normalizeTo(p.id, p.ValueOf(whole))
}

// Update adds every item of items with value 0 when unknown, drops items
// not in items when remove is set, and rescales so the stored values sum
// to 1 (when they are not all zero).
func (p *CollectionPreference) Update(items []string, remove bool) {
	keep := make(map[string]struct{}, len(items))
	for _, it := range items {
		keep[it] = struct{}{}
		if _, ok := p.values[it]; !ok {
			p.values[it] = zero()
		}
	}
	if remove {
		for it := range p.values {
			if _, ok := keep[it]; !ok {
				delete(p.values, it)
			}
		}
	}
	total := zero()
	for _, v := range p.values {
		total.Add(total, v)
	}
	if total.Sign() != 0 {
		p.rescale(ratQuo(ratInt(1), total))
	}
}

// String renders "CollectionPreference(id, {a:1 b:2})".
func (p *CollectionPreference) String() string {
	return fmt.Sprintf("CollectionPreference(%s, %s)", p.id, formatValues(p.values))
}

// CountedPreference values a Counted resource as
// Σ value(item) · min(available, limit(item)).
type CountedPreference struct {
	itemValues
	limits map[string]int
}

// NewCountedPreference copies values; see WithLimits for demand caps.
func NewCountedPreference(id string, values map[string]*big.Rat, opts ...PreferenceOption) (*CountedPreference, error) {
	vals, err := copyValues(values)
	if err != nil {
		return nil, fmt.Errorf("preference %q: %w", id, err)
	}
	cfg := newPreferenceConfig(opts...)
	return &CountedPreference{
		itemValues: itemValues{id: id, values: vals, resolution: cfg.resolution},
		limits:     cfg.limits,
	}, nil
}

// Supports implements Preference.
func (p *CountedPreference) Supports(k Kind) bool { return k == KindCounted }

// Limit returns the unit cap for item and whether one is set.
func (p *CountedPreference) Limit(item string) (int, bool) {
	n, ok := p.limits[item]
	return n, ok
}

// Limits returns a copy of the unit caps; nil when none are set.
func (p *CountedPreference) Limits() map[string]int {
	if len(p.limits) == 0 {
		return nil
	}
	out := make(map[string]int, len(p.limits))
	for k, n := range p.limits {
		out[k] = n
	}
	return out
}

// ValueOf implements Preference.
func (p *CountedPreference) ValueOf(r Resource) *big.Rat {
	c, ok := r.(*Counted)
	if !ok {
		return zero()
	}
	total := zero()
	for item, n := range c.items {
		v, ok := p.values[item]
		if !ok {
			continue
		}
		if limit, capped := p.limits[item]; capped && limit < n {
			n = limit
		}
		total.Add(total, ratMul(v, ratInt(int64(n))))
	}
	return total
}

// Normalize rescales so that ValueOf(whole) == 1.
func (p *CountedPreference) Normalize(whole Resource) error {
	return p.normalizeTo(p.id, p.ValueOf(whole))
}

// String renders "CountedPreference(id, {a:1 b:2})".
func (p *CountedPreference) String() string {
	return fmt.Sprintf("CountedPreference(%s, %s)", p.id, formatValues(p.values))
}

// OrdinalPreference is a CollectionPreference derived from a ranking when
// only the order of items is known: with n items the first ranked item is
// worth n, the last 1.
type OrdinalPreference struct {
	CollectionPreference
	ranking []string
}

// NewOrdinalPreference fails with ErrDuplicateItem on a repeated item.
func NewOrdinalPreference(id string, ranking []string, opts ...PreferenceOption) (*OrdinalPreference, error) {
	n := len(ranking)
	values := make(map[string]*big.Rat, n)
	for i, it := range ranking {
		if _, dup := values[it]; dup {
			return nil, fmt.Errorf("preference %q item %q: %w", id, it, ErrDuplicateItem)
		}
		values[it] = ratInt(int64(n - i))
	}
	cfg := newPreferenceConfig(opts...)
	return &OrdinalPreference{
		CollectionPreference: CollectionPreference{itemValues{id: id, values: values, resolution: cfg.resolution}},
		ranking:              append([]string(nil), ranking...),
	}, nil
}

// Ranking returns the items from most to least preferred.
func (p *OrdinalPreference) Ranking() []string { return append([]string(nil), p.ranking...) }

// String renders "OrdinalPreference(id, [a b c])".
func (p *OrdinalPreference) String() string {
	return fmt.Sprintf("OrdinalPreference(%s, [%s])", p.id, strings.Join(p.ranking, " "))
}
