// Package units converts between units that are a pure scalar multiple of a
// family's base unit: length, weight, time, speed, area, volume and data size.
//
// Conversion goes through the base unit: base = value * factor(from), then
// result = base / factor(to). Results are full double precision; rounding is a
// display concern handled by internal/format.
package units

import (
	"fmt"
	"math"
	"strings"

	"calcbox/internal/calc/calcerr"
)

// Definition is one unit of a family. Factor converts one of this unit into
// the family's base unit.
type Definition struct {
	Key         string  `json:"key" yaml:"key"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	Factor      float64 `json:"factor" yaml:"factor"`
}

// Table is an ordered unit family.
type Table struct {
	Family string       `json:"family"`
	Base   string       `json:"base"`
	Units  []Definition `json:"units"`
}

// Find returns the unit with the given key. Keys match case-insensitively.
func (t Table) Find(key string) (Definition, bool) {
	key = strings.TrimSpace(key)
	for _, u := range t.Units {
		if strings.EqualFold(u.Key, key) {
			return u, true
		}
	}
	return Definition{}, false
}

// Validate checks the table invariants: positive factors, a base unit with a
// factor of exactly 1 and unique keys.
func (t Table) Validate() error {
	seen := make(map[string]bool, len(t.Units))
	base := false
	for _, u := range t.Units {
		if !(u.Factor > 0) || math.IsInf(u.Factor, 0) {
			return fmt.Errorf("%s: unit %q has non-positive factor %v", t.Family, u.Key, u.Factor)
		}
		k := strings.ToLower(u.Key)
		if seen[k] {
			return fmt.Errorf("%s: duplicate unit %q", t.Family, u.Key)
		}
		seen[k] = true
		if u.Key == t.Base {
			if u.Factor != 1 {
				return fmt.Errorf("%s: base unit %q has factor %v, want 1", t.Family, u.Key, u.Factor)
			}
			base = true
		}
	}
	if !base {
		return fmt.Errorf("%s: base unit %q not defined", t.Family, t.Base)
	}
	return nil
}

// Convert converts value from one unit of the table to another.
func Convert(value float64, from, to string, t Table) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, calcerr.Missing("value must be a number")
	}
	f, ok := t.Find(from)
	if !ok {
		return 0, calcerr.OutOfDomain("unknown %s unit %q", t.Family, from)
	}
	g, ok := t.Find(to)
	if !ok {
		return 0, calcerr.OutOfDomain("unknown %s unit %q", t.Family, to)
	}
	out := value * f.Factor / g.Factor
	if math.IsInf(out, 0) {
		return 0, calcerr.Bounds("%g %s is too large to express in %s", value, from, to)
	}
	return out, nil
}

// Lookup returns the table for a family name.
func Lookup(family string) (Table, error) {
	for _, t := range tables {
		if strings.EqualFold(t.Family, strings.TrimSpace(family)) {
			return t, nil
		}
	}
	return Table{}, calcerr.OutOfDomain("unknown unit family %q", family)
}

// Families returns the family names in display order.
func Families() []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.Family
	}
	return out
}

// Tables returns every built-in table.
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// FamilyOf returns the first table containing both units. It lets callers
// convert "5 km to mi" without naming the family.
func FamilyOf(from, to string) (Table, error) {
	for _, t := range tables {
		_, okFrom := t.Find(from)
		_, okTo := t.Find(to)
		if okFrom && okTo {
			return t, nil
		}
	}
	return Table{}, calcerr.OutOfDomain("no unit family contains both %q and %q", from, to)
}

func init() {
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
}
