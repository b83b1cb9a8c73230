// Package units converts activity quantities between measurement units.
//
// Conversions are pure arithmetic over published constants. Each supported
// unit belongs to exactly one dimension (volume, mass, energy, distance)
// and converts through that dimension's base unit. Converting across
// dimensions is an error: the package never estimates.
package units

import (
	"fmt"
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnsupportedUnit indicates that no conversion path exists between the
// requested units. Compare with errors.Is.
const ErrUnsupportedUnit = constError("unsupported unit conversion")

// dimension identifies a family of mutually convertible units.
type dimension int

const (
	dimVolume dimension = iota
	dimMass
	dimEnergy
	dimDistance
)

// unitDef maps a unit to its dimension and the factor that converts one of
// it into the dimension's base unit (m3, kg, kWh, km).
type unitDef struct {
	dim    dimension
	toBase float64
}

// Conversion constants. Energy values follow 1 GJ = 277.778 kWh exactly as
// 1e6/3600; the rest are exact metric definitions.
const (
	litersPerCubicMeter = 1000.0
	kgPerTonne          = 1000.0
	kWhPerGJ            = 1000.0 / 3.6
	kWhPerMWh           = 1000.0
	kmPerMile           = 1.609344
)

//nolint:gochecknoglobals // Static reference table, never mutated after init.
var unitTable = map[string]unitDef{
	"m3":    {dimVolume, 1},
	"l":     {dimVolume, 1 / litersPerCubicMeter},
	"kg":    {dimMass, 1},
	"t":     {dimMass, kgPerTonne},
	"tonne": {dimMass, kgPerTonne},
	"kwh":   {dimEnergy, 1},
	"mwh":   {dimEnergy, kWhPerMWh},
	"gj":    {dimEnergy, kWhPerGJ},
	"km":    {dimDistance, 1},
	"mi":    {dimDistance, kmPerMile},
}

// canonical normalizes unit spellings seen in activity data ("L", "M3",
// "tCO2e" style casing) to table keys.
func canonical(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// Convert returns amount expressed in the to unit.
//
// Identity conversions succeed for any non-empty unit string as long as
// both spellings normalize to the same key. Cross-dimension requests and
// unrecognized units return ErrUnsupportedUnit wrapped with both units.
func Convert(amount float64, from, to string) (float64, error) {
	fromKey, toKey := canonical(from), canonical(to)
	if fromKey == toKey && fromKey != "" {
		return amount, nil
	}

	fromDef, ok := unitTable[fromKey]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, from)
	}
	toDef, ok := unitTable[toKey]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, to)
	}
	if fromDef.dim != toDef.dim {
		return 0, fmt.Errorf("%w: %q to %q", ErrUnsupportedUnit, from, to)
	}

	return amount * fromDef.toBase / toDef.toBase, nil
}

// Supported reports whether the unit participates in any conversion.
func Supported(unit string) bool {
	_, ok := unitTable[canonical(unit)]
	return ok
}
