// SPDX-License-Identifier: MIT
// Package: fairdiv/profile
//
// preference.go — the line-oriented preference format.
//
// Format (whitespace separated, one entry per line):
//   <x> <y>         a density point; x in [0,1], strictly increasing
//   <item> <value>  an item value; items unique
// Numbers are exact: "3", "1/3" and "0.25" are all accepted. Blank lines and
// lines starting with '#' carry no data.
//
// Detection: the interval parser runs first; only if some data line is not a
// numeric pair does the item parser take over. A line that the chosen parser
// rejects is an error, never skipped.

package profile

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/fairdiv/cake"
)

// line is one data line with its 1-based position in the input.
type line struct {
	no     int
	fields []string
}

func readLines(r io.Reader) ([]line, error) {
	var (
		sc  = bufio.NewScanner(r)
		out []line
		no  int
	)
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, line{no: no, fields: strings.Fields(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("profile: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyProfile
	}
	return out, nil
}

// ParsePreference reads a preference in either format. Item files become a
// CollectionPreference.
func ParsePreference(r io.Reader, id string, opts ...cake.PreferenceOption) (cake.Preference, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if points, ok := intervalPoints(lines); ok {
		return cake.NewIntervalPreference(id, points, opts...)
	}
	values, err := itemValues(lines)
	if err != nil {
		return nil, err
	}
	return cake.NewCollectionPreference(id, values, opts...)
}

// ParsePreferenceAs forces the parser matching kind: span kinds read density
// points, KindCollection and KindCounted read item values.
func ParsePreferenceAs(r io.Reader, id string, kind cake.Kind, opts ...cake.PreferenceOption) (cake.Preference, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	switch kind {
	case cake.KindContinuous, cake.KindIntervalSet:
		points, err := parsePoints(lines)
		if err != nil {
			return nil, err
		}
		return cake.NewIntervalPreference(id, points, opts...)
	case cake.KindCollection, cake.KindCounted:
		values, err := itemValues(lines)
		if err != nil {
			return nil, err
		}
		if kind == cake.KindCounted {
			return cake.NewCountedPreference(id, values, opts...)
		}
		return cake.NewCollectionPreference(id, values, opts...)
	default:
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
}

// LoadPreference parses the file at path. An empty id defaults to the file
// name without its extension.
func LoadPreference(path, id string, opts ...cake.PreferenceOption) (cake.Preference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	defer f.Close()

	if id == "" {
		base := filepath.Base(path)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}
	p, err := ParsePreference(f, id, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// intervalPoints reports ok=false as soon as a line is not a numeric pair.
func intervalPoints(lines []line) ([]cake.Point, bool) {
	points, err := parsePoints(lines)
	return points, err == nil
}

func parsePoints(lines []line) ([]cake.Point, error) {
	out := make([]cake.Point, 0, len(lines))
	for _, l := range lines {
		if len(l.fields) != 2 {
			return nil, fmt.Errorf("line %d: want <x> <y>: %w", l.no, ErrMalformedLine)
		}
		x, okx := cake.ParseRat(l.fields[0])
		y, oky := cake.ParseRat(l.fields[1])
		if !okx || !oky {
			return nil, fmt.Errorf("line %d: %q is not a point: %w", l.no, strings.Join(l.fields, " "), ErrMalformedLine)
		}
		out = append(out, cake.Point{X: x, Y: y})
	}
	return out, nil
}

func itemValues(lines []line) (map[string]*big.Rat, error) {
	out := make(map[string]*big.Rat, len(lines))
	for _, l := range lines {
		if len(l.fields) != 2 {
			return nil, fmt.Errorf("line %d: want <item> <value>: %w", l.no, ErrMalformedLine)
		}
		v, ok := cake.ParseRat(l.fields[1])
		if !ok {
			return nil, fmt.Errorf("line %d: value %q: %w", l.no, l.fields[1], ErrMalformedLine)
		}
		item := l.fields[0]
		if _, dup := out[item]; dup {
			return nil, fmt.Errorf("line %d: item %q: %w", l.no, item, cake.ErrDuplicateItem)
		}
		out[item] = v
	}
	return out, nil
}

// valued is satisfied by the item-valued preferences.
type valued interface {
	Values() map[string]*big.Rat
}

// WritePreference writes pref in the line format ParsePreference reads.
// Items are written in name order. Function-backed preferences, and counted
// preferences carrying WithLimits caps, fail with ErrUnsupportedPreference:
// the line format has no place for either, and writing them anyway would
// read back as a different valuation.
func WritePreference(w io.Writer, pref cake.Preference) error {
	if c, ok := pref.(*cake.CountedPreference); ok && c.Limits() != nil {
		return fmt.Errorf("%s: item limits %v: %w", pref.ID(), c.Limits(), ErrUnsupportedPreference)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", pref.ID())
	switch p := pref.(type) {
	case *cake.IntervalPreference:
		segs := p.Density().Segments()
		if len(segs) > 0 {
			fmt.Fprintf(bw, "%s %s\n", segs[0].X1.RatString(), segs[0].Y1.RatString())
		}
		for _, s := range segs {
			fmt.Fprintf(bw, "%s %s\n", s.X2.RatString(), s.Y2.RatString())
		}
	case valued:
		values := p.Values()
		items := make([]string, 0, len(values))
		for k := range values {
			items = append(items, k)
		}
		sort.Strings(items)
		for _, it := range items {
			fmt.Fprintf(bw, "%s %s\n", it, values[it].RatString())
		}
	default:
		return fmt.Errorf("%s: %w", pref.ID(), ErrUnsupportedPreference)
	}
	return bw.Flush()
}
