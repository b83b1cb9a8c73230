// Package factors loads and serves the versioned emission factor table.
//
// The table is reference data: published constants relating an activity
// quantity (fuel burned, kWh consumed, km driven) to greenhouse gas mass.
// It is loaded once at startup, validated against an embedded JSON Schema,
// and never mutated afterwards, so concurrent readers need no locking.
package factors

import "fmt"

// Category identifies a factor subtable. The set is closed: dispatching on
// it in a switch should always be exhaustive.
type Category string

const (
	CategoryFuel        Category = "fuels"
	CategoryElectricity Category = "electricity"
	CategoryTransport   Category = "transport"
	CategoryCooling     Category = "cooling"
	CategoryWater       Category = "water"
	CategoryWaste       Category = "waste"
	CategoryRefrigerant Category = "refrigerant"
)

// Categories lists every factor category in table order.
func Categories() []Category {
	return []Category{
		CategoryFuel,
		CategoryElectricity,
		CategoryTransport,
		CategoryCooling,
		CategoryWater,
		CategoryWaste,
		CategoryRefrigerant,
	}
}

// ParseCategory converts a user-supplied category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrNotFound, s)
}

// EmissionFactor is a single immutable entry of the factor table.
//
// For fuels the gas factors are expressed per GJ of energy content and
// HeatingValue converts the activity amount into GJ. For every other
// category CO2Factor is the net kg CO2e per ActivityUnit and the remaining
// gas factors are zero.
type EmissionFactor struct {
	Category Category `json:"category"`
	Key      string   `json:"key"`

	// CO2Factor is kg CO2 per GJ for fuels, net kg CO2e per activity
	// unit otherwise. Waste credits (recycling) are negative.
	CO2Factor float64 `json:"co2_factor"`
	CH4Factor float64 `json:"ch4_factor,omitempty"`
	N2OFactor float64 `json:"n2o_factor,omitempty"`

	// HeatingValue is GJ per activity unit; fuels only.
	HeatingValue float64 `json:"heating_value,omitempty"`

	// Unit is the published factor unit, e.g. "GJ/m3" or "kg CO2e/kWh".
	Unit string `json:"unit"`

	// ActivityUnit is the canonical input unit derived from Unit
	// (the part after the slash): m3, L, kg, kWh, km.
	ActivityUnit string `json:"activity_unit"`

	Source string `json:"source"`
	Year   int    `json:"year"`
}

// GWPEntry is one row of the global warming potential table.
type GWPEntry struct {
	Gas        string  `json:"gas"`
	Multiplier float64 `json:"multiplier"`
	Source     string  `json:"source"`
	Year       int     `json:"year"`
}
