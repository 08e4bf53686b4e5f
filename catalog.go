package converter

import (
	"fmt"
	"sort"
)

// catalog is built once from the unit table: category -> unit name -> unit.
var catalog = func() map[Category]map[string]Unit {
	c := make(map[Category]map[string]Unit, len(categoryNames))
	for u, info := range units {
		if c[info.category] == nil {
			c[info.category] = make(map[string]Unit)
		}
		c[info.category][info.name] = u
	}
	return c
}()

// LookupUnit finds a unit by name within a category.
func LookupUnit(category Category, name string) (Unit, bool) {
	u, ok := catalog[category][name]
	return u, ok
}

// UnitsFor returns a copy of the unit name -> symbol table for a category.
func UnitsFor(category string) (map[string]string, error) {
	c, ok := ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("units for %q: %w", category, ErrUnknownCategory)
	}
	out := make(map[string]string, len(catalog[c]))
	for name, u := range catalog[c] {
		out[name] = u.Symbol()
	}
	return out, nil
}

// UnitNames returns the unit names of a category sorted lexicographically.
func UnitNames(category string) ([]string, error) {
	c, ok := ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("unit names for %q: %w", category, ErrUnknownCategory)
	}
	names := make([]string, 0, len(catalog[c]))
	for name := range catalog[c] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SymbolFor returns "" when the category or unit is not recognized.
func SymbolFor(category, unit string) string {
	c, ok := ParseCategory(category)
	if !ok {
		return ""
	}
	if u, ok := LookupUnit(c, unit); ok {
		return u.Symbol()
	}
	return ""
}
