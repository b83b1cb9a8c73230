// Package ingest parses facility activity files into activity records.
//
// A facility file is the batch input for an annual assessment: one
// document describing everything a site consumed. JSON and YAML are both
// accepted. Parsing validates field-level constraints here; factor
// resolution and amount semantics are the calculators' concern.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/carbonfocus/carbonfocus/internal/calc"
	"github.com/carbonfocus/carbonfocus/internal/factors"
)

// Facility is the on-disk assessment input document.
type Facility struct {
	Name string `json:"name" yaml:"name" validate:"required"`

	// Region is the default emirate or province applied to every line
	// that does not carry its own.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	Fuels        []FuelLine       `json:"fuels,omitempty" yaml:"fuels,omitempty" validate:"dive"`
	Refrigerants []ActivityLine   `json:"refrigerants,omitempty" yaml:"refrigerants,omitempty" validate:"dive"`
	Electricity  *ElectricityLine `json:"electricity,omitempty" yaml:"electricity,omitempty"`
	Transport    []TransportLine  `json:"transport,omitempty" yaml:"transport,omitempty" validate:"dive"`
	Cooling      []ActivityLine   `json:"cooling,omitempty" yaml:"cooling,omitempty" validate:"dive"`
	Water        []ActivityLine   `json:"water,omitempty" yaml:"water,omitempty" validate:"dive"`
	Waste        []ActivityLine   `json:"waste,omitempty" yaml:"waste,omitempty" validate:"dive"`
}

// FuelLine is one combusted fuel entry.
type FuelLine struct {
	Type   string  `json:"type" yaml:"type" validate:"required"`
	Amount float64 `json:"amount" yaml:"amount" validate:"gte=0"`
	Unit   string  `json:"unit" yaml:"unit" validate:"required"`
}

// ElectricityLine is the purchased electricity entry.
type ElectricityLine struct {
	AmountKWh           float64 `json:"amount_kwh" yaml:"amount_kwh" validate:"gte=0"`
	Region              string  `json:"region,omitempty" yaml:"region,omitempty"`
	Method              string  `json:"method,omitempty" yaml:"method,omitempty" validate:"omitempty,oneof=location_based market_based"`
	RenewablePercentage float64 `json:"renewable_percentage,omitempty" yaml:"renewable_percentage,omitempty" validate:"gte=0,lte=100"`
}

// TransportLine is one travelled distance entry.
type TransportLine struct {
	Mode     string  `json:"mode" yaml:"mode" validate:"required"`
	Distance float64 `json:"distance" yaml:"distance" validate:"gte=0"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// ActivityLine is a generic typed quantity (refrigerants, cooling, water,
// waste).
type ActivityLine struct {
	Type   string  `json:"type" yaml:"type" validate:"required"`
	Amount float64 `json:"amount" yaml:"amount" validate:"gte=0"`
	Unit   string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

//nolint:gochecknoglobals // Validator instances are designed to be cached.
var validate = validator.New()

// LoadFacility reads and validates a facility file. The format follows
// the extension: .yaml/.yml parse as YAML, everything else as JSON.
func LoadFacility(path string) (*Facility, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading facility file: %w", err)
	}

	var facility Facility
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &facility)
	default:
		err = json.Unmarshal(data, &facility)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := validate.Struct(&facility); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return &facility, nil
}

// Records flattens the facility document into activity records in
// document order: fuels, refrigerants, electricity, transport, cooling,
// water, waste.
func (f *Facility) Records() []calc.ActivityRecord {
	var records []calc.ActivityRecord

	for _, line := range f.Fuels {
		records = append(records, calc.ActivityRecord{
			Scope:    calc.Scope1,
			Category: factors.CategoryFuel,
			Key:      line.Type,
			Amount:   line.Amount,
			Unit:     line.Unit,
			Region:   f.Region,
		})
	}

	for _, line := range f.Refrigerants {
		records = append(records, calc.ActivityRecord{
			Scope:    calc.Scope1,
			Category: factors.CategoryRefrigerant,
			Key:      line.Type,
			Amount:   line.Amount,
			Unit:     orDefault(line.Unit, "kg"),
		})
	}

	if e := f.Electricity; e != nil {
		records = append(records, calc.ActivityRecord{
			Scope:               calc.Scope2,
			Category:            factors.CategoryElectricity,
			Region:              orDefault(e.Region, f.Region),
			Amount:              e.AmountKWh,
			Unit:                "kWh",
			Method:              e.Method,
			RenewablePercentage: e.RenewablePercentage,
		})
	}

	for _, line := range f.Transport {
		records = append(records, calc.ActivityRecord{
			Scope:    calc.Scope3,
			Category: factors.CategoryTransport,
			Key:      line.Mode,
			Amount:   line.Distance,
			Unit:     orDefault(line.Unit, "km"),
		})
	}

	simple := []struct {
		category factors.Category
		lines    []ActivityLine
	}{
		{factors.CategoryCooling, f.Cooling},
		{factors.CategoryWater, f.Water},
		{factors.CategoryWaste, f.Waste},
	}
	for _, s := range simple {
		for _, line := range s.lines {
			records = append(records, calc.ActivityRecord{
				Scope:    calc.Scope3,
				Category: s.category,
				Key:      line.Type,
				Amount:   line.Amount,
				Unit:     line.Unit,
				Region:   f.Region,
			})
		}
	}

	return records
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
