package factors

import (
	"fmt"
	"sort"
	"strings"
)

// Table is the in-memory factor table. It is built once by Load/Parse and
// read-only afterwards.
type Table struct {
	// Version is the semver of the loaded dataset.
	Version string

	factors map[Category]map[string]EmissionFactor
	gwp     map[string]GWPEntry
}

// Lookup resolves the emission factor for (category, key, region).
//
// Matching is case-insensitive. When the key itself is absent but regional
// variants exist (key_uae / key_ksa), the region argument picks one; with
// no region and more than one variant the lookup fails with
// ErrAmbiguousRegion. Refrigerant lookups are served from the GWP table,
// expressed as kg CO2e per kg of released charge.
func (t *Table) Lookup(category Category, key, region string) (EmissionFactor, error) {
	if category == CategoryRefrigerant {
		return t.refrigerantFactor(key)
	}

	sub, ok := t.factors[category]
	if !ok {
		return EmissionFactor{}, fmt.Errorf("%w: category %q", ErrNotFound, category)
	}

	norm := normKey(key)
	if f, ok := sub[norm]; ok {
		return f, nil
	}

	var variants []EmissionFactor
	for _, sfx := range []string{suffixUAE, suffixKSA} {
		if f, ok := sub[norm+"_"+sfx]; ok {
			variants = append(variants, f)
		}
	}

	switch {
	case len(variants) == 0:
		return EmissionFactor{}, fmt.Errorf("%w: %s/%s (region %q)", ErrNotFound, category, key, region)
	case region == "":
		if len(variants) == 1 {
			return variants[0], nil
		}
		return EmissionFactor{}, fmt.Errorf("%w: %s/%s has %d regional variants",
			ErrAmbiguousRegion, category, key, len(variants))
	}

	sfx := regionSuffix(region)
	if sfx == "" {
		return EmissionFactor{}, fmt.Errorf("%w: %s/%s: unknown region %q", ErrNotFound, category, key, region)
	}
	if f, ok := sub[norm+"_"+sfx]; ok {
		return f, nil
	}
	return EmissionFactor{}, fmt.Errorf("%w: %s/%s has no %s variant", ErrNotFound, category, key, sfx)
}

// GWP returns the global warming potential entry for a gas symbol.
func (t *Table) GWP(gas string) (GWPEntry, error) {
	entry, ok := t.gwp[strings.ToUpper(strings.TrimSpace(gas))]
	if !ok {
		return GWPEntry{}, fmt.Errorf("%w: %q", ErrUnknownGas, gas)
	}
	return entry, nil
}

// refrigerantFactor exposes refrigerant GWP values as emission factors for
// fugitive release calculations. The combustion gases are not refrigerants
// and are excluded.
func (t *Table) refrigerantFactor(key string) (EmissionFactor, error) {
	gas := strings.ToUpper(strings.TrimSpace(key))
	switch gas {
	case "CO2", "CH4", "N2O":
		return EmissionFactor{}, fmt.Errorf("%w: %s/%s", ErrNotFound, CategoryRefrigerant, key)
	}

	entry, err := t.GWP(gas)
	if err != nil {
		return EmissionFactor{}, fmt.Errorf("%w: %s/%s", ErrNotFound, CategoryRefrigerant, key)
	}

	return EmissionFactor{
		Category:     CategoryRefrigerant,
		Key:          entry.Gas,
		CO2Factor:    entry.Multiplier,
		Unit:         "kg CO2e/kg",
		ActivityUnit: "kg",
		Source:       entry.Source,
		Year:         entry.Year,
	}, nil
}

// Keys returns the entry keys of a category, sorted, in published casing.
// Refrigerant keys are the non-combustion gases of the GWP table.
func (t *Table) Keys(category Category) []string {
	var keys []string
	if category == CategoryRefrigerant {
		for gas, entry := range t.gwp {
			if gas == "CO2" || gas == "CH4" || gas == "N2O" {
				continue
			}
			keys = append(keys, entry.Gas)
		}
	} else {
		for _, f := range t.factors[category] {
			keys = append(keys, f.Key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Entries returns every factor of a category sorted by key, for listing.
func (t *Table) Entries(category Category) []EmissionFactor {
	keys := t.Keys(category)
	entries := make([]EmissionFactor, 0, len(keys))
	for _, k := range keys {
		if f, err := t.Lookup(category, k, ""); err == nil {
			entries = append(entries, f)
		}
	}
	return entries
}

// GWPEntries returns the full GWP table sorted by gas symbol.
func (t *Table) GWPEntries() []GWPEntry {
	entries := make([]GWPEntry, 0, len(t.gwp))
	for _, e := range t.gwp {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Gas < entries[j].Gas })
	return entries
}
