package factors

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/factors.json
var defaultFactors []byte

//go:embed data/schema.json
var factorSchema []byte

// fileFormat mirrors the on-disk factor table layout.
type fileFormat struct {
	Version     string                 `json:"version"`
	Fuels       map[string]fuelEntry   `json:"fuels"`
	Electricity map[string]factorEntry `json:"electricity"`
	Transport   map[string]factorEntry `json:"transport"`
	Cooling     map[string]factorEntry `json:"cooling"`
	Water       map[string]factorEntry `json:"water"`
	Waste       map[string]factorEntry `json:"waste"`
	GWP         map[string]gwpEntry    `json:"gwp"`
}

type fuelEntry struct {
	CO2          float64 `json:"co2"`
	CH4          float64 `json:"ch4"`
	N2O          float64 `json:"n2o"`
	HeatingValue float64 `json:"heating_value"`
	Unit         string  `json:"unit"`
	Source       string  `json:"source"`
	Year         int     `json:"year"`
}

type factorEntry struct {
	Factor float64 `json:"factor"`
	Unit   string  `json:"unit"`
	Source string  `json:"source"`
	Year   int     `json:"year"`
}

type gwpEntry struct {
	Factor float64 `json:"factor"`
	Source string  `json:"source"`
	Year   int     `json:"year"`
}

// Load reads, validates and indexes a factor table.
//
// An empty path loads the embedded default dataset. Any schema violation,
// unparseable version, or semantic defect (non-positive factor outside the
// waste category, CO2 GWP != 1) returns an error wrapping ErrLoad: the
// caller must treat it as fatal and refuse to calculate.
func Load(path string) (*Table, error) {
	if path == "" {
		return Parse(defaultFactors)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrLoad, path, err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse validates raw factor table JSON and builds an immutable Table.
func Parse(data []byte) (*Table, error) {
	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var raw fileFormat
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	if _, err := semver.NewVersion(raw.Version); err != nil {
		return nil, fmt.Errorf("%w: version %q is not semver: %v", ErrLoad, raw.Version, err)
	}

	table := &Table{
		Version: raw.Version,
		factors: make(map[Category]map[string]EmissionFactor),
		gwp:     make(map[string]GWPEntry, len(raw.GWP)),
	}

	for gas, entry := range raw.GWP {
		table.gwp[strings.ToUpper(gas)] = GWPEntry{
			Gas:        gas,
			Multiplier: entry.Factor,
			Source:     entry.Source,
			Year:       entry.Year,
		}
	}
	co2, ok := table.gwp["CO2"]
	if !ok || co2.Multiplier != 1 {
		return nil, fmt.Errorf("%w: GWP table must map CO2 to 1", ErrLoad)
	}

	if err := table.addFuels(raw.Fuels); err != nil {
		return nil, err
	}

	simple := []struct {
		cat     Category
		entries map[string]factorEntry
	}{
		{CategoryElectricity, raw.Electricity},
		{CategoryTransport, raw.Transport},
		{CategoryCooling, raw.Cooling},
		{CategoryWater, raw.Water},
		{CategoryWaste, raw.Waste},
	}
	for _, s := range simple {
		if err := table.addSimple(s.cat, s.entries); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// validateSchema checks the raw document against the embedded JSON Schema.
func validateSchema(data []byte) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(factorSchema))
	if err != nil {
		return fmt.Errorf("embedded schema: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("factors-schema.json", schemaDoc); err != nil {
		return fmt.Errorf("embedded schema: %v", err)
	}
	schema, err := compiler.Compile("factors-schema.json")
	if err != nil {
		return fmt.Errorf("embedded schema: %v", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return schema.Validate(instance)
}

func (t *Table) addFuels(entries map[string]fuelEntry) error {
	sub := make(map[string]EmissionFactor, len(entries))
	for key, e := range entries {
		activityUnit, err := activityUnitOf(e.Unit)
		if err != nil {
			return fmt.Errorf("%w: fuels/%s: %v", ErrLoad, key, err)
		}
		norm := normKey(key)
		if _, dup := sub[norm]; dup {
			return fmt.Errorf("%w: fuels/%s: duplicate key", ErrLoad, key)
		}
		sub[norm] = EmissionFactor{
			Category:     CategoryFuel,
			Key:          key,
			CO2Factor:    e.CO2,
			CH4Factor:    e.CH4,
			N2OFactor:    e.N2O,
			HeatingValue: e.HeatingValue,
			Unit:         e.Unit,
			ActivityUnit: activityUnit,
			Source:       e.Source,
			Year:         e.Year,
		}
	}
	t.factors[CategoryFuel] = sub
	return nil
}

func (t *Table) addSimple(cat Category, entries map[string]factorEntry) error {
	sub := make(map[string]EmissionFactor, len(entries))
	for key, e := range entries {
		// Negative factors model avoided emissions and are only
		// meaningful as waste credits (e.g. recycling).
		if e.Factor <= 0 && cat != CategoryWaste {
			return fmt.Errorf("%w: %s/%s: factor must be positive, got %v", ErrLoad, cat, key, e.Factor)
		}
		if e.Factor == 0 {
			return fmt.Errorf("%w: %s/%s: factor must be non-zero", ErrLoad, cat, key)
		}
		activityUnit, err := activityUnitOf(e.Unit)
		if err != nil {
			return fmt.Errorf("%w: %s/%s: %v", ErrLoad, cat, key, err)
		}
		norm := normKey(key)
		if _, dup := sub[norm]; dup {
			return fmt.Errorf("%w: %s/%s: duplicate key", ErrLoad, cat, key)
		}
		sub[norm] = EmissionFactor{
			Category:     cat,
			Key:          key,
			CO2Factor:    e.Factor,
			Unit:         e.Unit,
			ActivityUnit: activityUnit,
			Source:       e.Source,
			Year:         e.Year,
		}
	}
	t.factors[cat] = sub
	return nil
}

// activityUnitOf derives the canonical input unit from a published factor
// unit such as "GJ/m3" or "kg CO2e/kWh".
func activityUnitOf(unit string) (string, error) {
	idx := strings.LastIndex(unit, "/")
	if idx < 0 || idx == len(unit)-1 {
		return "", fmt.Errorf("unit %q has no per-activity denominator", unit)
	}
	return unit[idx+1:], nil
}

func normKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
