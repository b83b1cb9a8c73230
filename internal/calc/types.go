// Package calc implements the GHG Protocol scope calculators.
//
// Each calculator resolves a published emission factor, converts the
// activity amount into the factor's canonical unit and multiplies through,
// producing an itemized EmissionResult. The Aggregator folds results into
// per-scope and grand totals. Everything here is a pure single-pass
// computation over the immutable factor table: no I/O, no retained state,
// safe for concurrent callers.
package calc

import (
	"fmt"

	"github.com/carbonfocus/carbonfocus/internal/factors"
)

// Scope is a GHG Protocol emission scope.
type Scope int

const (
	// Scope1 covers direct emissions: fuel combustion and fugitive
	// refrigerant release.
	Scope1 Scope = 1

	// Scope2 covers energy-indirect emissions from purchased
	// electricity.
	Scope2 Scope = 2

	// Scope3 covers value-chain emissions: transport, water, waste and
	// purchased cooling.
	Scope3 Scope = 3
)

// Scope 2 accounting methods.
const (
	MethodLocationBased = "location_based"
	MethodMarketBased   = "market_based"
)

// kgPerTonne converts gas mass in kilograms to tonnes of CO2e.
const kgPerTonne = 1000.0

// ActivityRecord is one line of activity data supplied by the caller.
// Records are transient: created per calculation and never persisted.
type ActivityRecord struct {
	Scope    Scope            `json:"scope"`
	Category factors.Category `json:"category"`

	// Key selects the factor table entry: fuel type, transport mode,
	// water source, and so on. For electricity the region doubles as
	// the key.
	Key string `json:"key"`

	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`

	// Region disambiguates regional factor variants (emirate or
	// province). Required for Scope 2.
	Region string `json:"region,omitempty"`

	// Method is the Scope 2 accounting method; defaults to
	// location_based when empty.
	Method string `json:"method,omitempty"`

	// RenewablePercentage reduces the effective Scope 2 grid factor
	// under the market_based method. Range [0, 100].
	RenewablePercentage float64 `json:"renewable_percentage,omitempty"`
}

// EmissionResult is the itemized outcome of one calculation. Immutable
// once produced.
type EmissionResult struct {
	// Activity describes the input, e.g. "1000 m3 of natural_gas".
	Activity string `json:"activity"`

	Scope    Scope            `json:"scope"`
	Category factors.Category `json:"category"`

	// TotalTCO2e is the GWP-weighted total in tonnes of CO2 equivalent.
	// Negative totals represent avoided emissions (waste credits).
	TotalTCO2e float64 `json:"total_tco2e"`

	// Breakdown maps gas symbol to emitted mass in kg, before GWP
	// weighting. Single-gas categories carry one CO2e entry.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`

	// FactorUsed is the resolved factor value in its published unit.
	FactorUsed float64 `json:"factor_used"`
	FactorUnit string  `json:"factor_unit"`
	Source     string  `json:"source"`

	Methodology string `json:"methodology"`
}

// Calculator resolves factors from an immutable table and computes
// emission results. The zero value is unusable; construct with New.
type Calculator struct {
	table *factors.Table
}

// New returns a Calculator reading from table.
func New(table *factors.Table) *Calculator {
	return &Calculator{table: table}
}

// Calculate dispatches a record to the calculator for its scope.
func (c *Calculator) Calculate(record ActivityRecord) (EmissionResult, error) {
	switch record.Scope {
	case Scope1:
		return c.Scope1(record)
	case Scope2:
		return c.Scope2(record)
	case Scope3:
		return c.Scope3(record)
	default:
		return EmissionResult{}, fmt.Errorf("%w: scope must be 1, 2 or 3, got %d", ErrInvalidInput, record.Scope)
	}
}
