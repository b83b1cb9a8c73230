package calc

import (
	"fmt"

	"github.com/carbonfocus/carbonfocus/internal/factors"
	"github.com/carbonfocus/carbonfocus/internal/units"
)

// Scope3 computes value-chain emissions.
//
// Records dispatch by category to the transport, water, waste or cooling
// subtable. These factors are already net CO2e per activity unit, so no
// separate GWP step applies; the waste table's recycling credit keeps its
// negative sign to represent avoided emissions.
func (c *Calculator) Scope3(record ActivityRecord) (EmissionResult, error) {
	if err := validateAmount(record.Amount); err != nil {
		return EmissionResult{}, err
	}

	switch record.Category {
	case factors.CategoryTransport, factors.CategoryWater,
		factors.CategoryWaste, factors.CategoryCooling:
	default:
		return EmissionResult{}, fmt.Errorf("%w: scope 3 accepts transport, water, waste or cooling records, got %q",
			ErrInvalidInput, record.Category)
	}

	factor, err := c.table.Lookup(record.Category, record.Key, record.Region)
	if err != nil {
		return EmissionResult{}, err
	}

	amount, err := units.Convert(record.Amount, orDefault(record.Unit, factor.ActivityUnit), factor.ActivityUnit)
	if err != nil {
		return EmissionResult{}, err
	}

	co2eKg := amount * factor.CO2Factor

	return EmissionResult{
		Activity:    fmt.Sprintf("%g %s of %s", record.Amount, orDefault(record.Unit, factor.ActivityUnit), factor.Key),
		Scope:       Scope3,
		Category:    record.Category,
		TotalTCO2e:  co2eKg / kgPerTonne,
		Breakdown:   map[string]float64{"CO2e": co2eKg},
		FactorUsed:  factor.CO2Factor,
		FactorUnit:  factor.Unit,
		Source:      factor.Source,
		Methodology: "GHG Protocol - value chain",
	}, nil
}
