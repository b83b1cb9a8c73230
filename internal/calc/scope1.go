package calc

import (
	"fmt"
	"math"

	"github.com/carbonfocus/carbonfocus/internal/factors"
	"github.com/carbonfocus/carbonfocus/internal/units"
)

// Scope1 computes direct emissions.
//
// Fuel combustion converts the amount into the fuel's canonical unit,
// derives energy content via the heating value, multiplies by the per-GJ
// gas factors and GWP-weights CH4 and N2O into the total. Refrigerant
// records model fugitive release: charge mass times the gas GWP.
func (c *Calculator) Scope1(record ActivityRecord) (EmissionResult, error) {
	if err := validateAmount(record.Amount); err != nil {
		return EmissionResult{}, err
	}

	category := record.Category
	if category == "" {
		category = factors.CategoryFuel
	}

	switch category {
	case factors.CategoryFuel:
		return c.scope1Combustion(record)
	case factors.CategoryRefrigerant:
		return c.scope1Refrigerant(record)
	default:
		return EmissionResult{}, fmt.Errorf("%w: scope 1 accepts fuel or refrigerant records, got %q",
			ErrInvalidInput, category)
	}
}

func (c *Calculator) scope1Combustion(record ActivityRecord) (EmissionResult, error) {
	factor, err := c.table.Lookup(factors.CategoryFuel, record.Key, record.Region)
	if err != nil {
		return EmissionResult{}, err
	}

	amount, err := units.Convert(record.Amount, record.Unit, factor.ActivityUnit)
	if err != nil {
		return EmissionResult{}, err
	}

	gwpCH4, err := c.table.GWP("CH4")
	if err != nil {
		return EmissionResult{}, err
	}
	gwpN2O, err := c.table.GWP("N2O")
	if err != nil {
		return EmissionResult{}, err
	}

	energyGJ := amount * factor.HeatingValue
	co2Kg := energyGJ * factor.CO2Factor
	ch4Kg := energyGJ * factor.CH4Factor
	n2oKg := energyGJ * factor.N2OFactor

	total := (co2Kg + ch4Kg*gwpCH4.Multiplier + n2oKg*gwpN2O.Multiplier) / kgPerTonne

	return EmissionResult{
		Activity:    fmt.Sprintf("%g %s of %s", record.Amount, record.Unit, factor.Key),
		Scope:       Scope1,
		Category:    factors.CategoryFuel,
		TotalTCO2e:  total,
		Breakdown:   map[string]float64{"CO2": co2Kg, "CH4": ch4Kg, "N2O": n2oKg},
		FactorUsed:  factor.CO2Factor,
		FactorUnit:  "kg CO2/GJ",
		Source:      factor.Source,
		Methodology: "GHG Protocol - stationary combustion",
	}, nil
}

func (c *Calculator) scope1Refrigerant(record ActivityRecord) (EmissionResult, error) {
	factor, err := c.table.Lookup(factors.CategoryRefrigerant, record.Key, "")
	if err != nil {
		return EmissionResult{}, err
	}

	chargeKg, err := units.Convert(record.Amount, record.Unit, factor.ActivityUnit)
	if err != nil {
		return EmissionResult{}, err
	}

	return EmissionResult{
		Activity:    fmt.Sprintf("%g %s of %s released", record.Amount, record.Unit, factor.Key),
		Scope:       Scope1,
		Category:    factors.CategoryRefrigerant,
		TotalTCO2e:  chargeKg * factor.CO2Factor / kgPerTonne,
		Breakdown:   map[string]float64{factor.Key: chargeKg},
		FactorUsed:  factor.CO2Factor,
		FactorUnit:  factor.Unit,
		Source:      factor.Source,
		Methodology: "GHG Protocol - fugitive emissions",
	}, nil
}

// validateAmount rejects negative, NaN and infinite activity amounts.
// Zero is valid and yields a zero-valued result downstream.
func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: amount must be finite", ErrInvalidInput)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative, got %g", ErrInvalidInput, amount)
	}
	return nil
}
