package calc

import (
	"fmt"

	"github.com/carbonfocus/carbonfocus/internal/factors"
	"github.com/carbonfocus/carbonfocus/internal/units"
)

const renewableMax = 100.0

// Scope2 computes energy-indirect emissions from purchased electricity.
//
// The grid factor is resolved by region (emirate or province). Under
// location_based the grid average applies as published. Under market_based
// the factor is reduced proportionally to the contracted renewable share:
// effective = factor × (1 − renewable/100).
func (c *Calculator) Scope2(record ActivityRecord) (EmissionResult, error) {
	if err := validateAmount(record.Amount); err != nil {
		return EmissionResult{}, err
	}

	method := record.Method
	if method == "" {
		method = MethodLocationBased
	}
	if method != MethodLocationBased && method != MethodMarketBased {
		return EmissionResult{}, fmt.Errorf("%w: %q", ErrInvalidMethod, record.Method)
	}
	if record.RenewablePercentage < 0 || record.RenewablePercentage > renewableMax {
		return EmissionResult{}, fmt.Errorf("%w: renewable percentage must be within [0, 100], got %g",
			ErrInvalidInput, record.RenewablePercentage)
	}

	// The grid factor is keyed by region; accept it in either field.
	region := record.Region
	if region == "" {
		region = record.Key
	}

	factor, err := c.table.Lookup(factors.CategoryElectricity, region, "")
	if err != nil {
		return EmissionResult{}, err
	}

	kwh, err := units.Convert(record.Amount, orDefault(record.Unit, factor.ActivityUnit), factor.ActivityUnit)
	if err != nil {
		return EmissionResult{}, err
	}

	effective := factor.CO2Factor
	if method == MethodMarketBased {
		effective *= 1 - record.RenewablePercentage/renewableMax
	}

	co2eKg := kwh * effective

	return EmissionResult{
		Activity:    fmt.Sprintf("%g kWh in %s", kwh, factor.Key),
		Scope:       Scope2,
		Category:    factors.CategoryElectricity,
		TotalTCO2e:  co2eKg / kgPerTonne,
		Breakdown:   map[string]float64{"CO2e": co2eKg},
		FactorUsed:  effective,
		FactorUnit:  factor.Unit,
		Source:      factor.Source,
		Methodology: "GHG Protocol - " + method,
	}, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
