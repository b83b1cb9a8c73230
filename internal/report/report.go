// Package report turns aggregated calculation results into exportable
// documents. It is a thin consumer of the aggregator's output: all
// arithmetic happens upstream, this package only shapes and renders.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/carbonfocus/carbonfocus/internal/calc"
)

// Methodology is the accounting standard stamped on every report.
const Methodology = "GHG Protocol Corporate Standard"

const percent = 100.0

// Report is the exportable emissions inventory document.
type Report struct {
	// ID is a ULID minted when the report is built, usable as a stable
	// reference for a calculation session.
	ID string `json:"id"`

	GeneratedAt time.Time `json:"generated_at"`
	Methodology string    `json:"methodology"`

	// Facility optionally names the assessed site.
	Facility string `json:"facility,omitempty"`

	// FactorsVersion records the factor table the results were computed
	// against, for auditability.
	FactorsVersion string `json:"factors_version,omitempty"`

	Results []calc.EmissionResult `json:"results"`
	Summary Summary               `json:"summary"`
}

// Summary carries per-scope totals and their share of the grand total.
type Summary struct {
	Scope1     float64 `json:"scope1_tco2e"`
	Scope2     float64 `json:"scope2_tco2e"`
	Scope3     float64 `json:"scope3_tco2e"`
	GrandTotal float64 `json:"total_tco2e"`

	Scope1Percent float64 `json:"scope1_pct"`
	Scope2Percent float64 `json:"scope2_pct"`
	Scope3Percent float64 `json:"scope3_pct"`
}

// Option customizes report construction.
type Option func(*Report)

// WithFacility stamps the assessed facility name on the report.
func WithFacility(name string) Option {
	return func(r *Report) { r.Facility = name }
}

// WithFactorsVersion records the factor table version used.
func WithFactorsVersion(version string) Option {
	return func(r *Report) { r.FactorsVersion = version }
}

// Build creates a Report from an aggregate. The aggregate's line items are
// referenced as-is; Build does not modify them.
func Build(aggregate calc.AggregateReport, opts ...Option) Report {
	summary := Summary{
		Scope1:     aggregate.ByScope[calc.Scope1],
		Scope2:     aggregate.ByScope[calc.Scope2],
		Scope3:     aggregate.ByScope[calc.Scope3],
		GrandTotal: aggregate.GrandTotal,
	}
	if aggregate.GrandTotal != 0 {
		summary.Scope1Percent = summary.Scope1 / aggregate.GrandTotal * percent
		summary.Scope2Percent = summary.Scope2 / aggregate.GrandTotal * percent
		summary.Scope3Percent = summary.Scope3 / aggregate.GrandTotal * percent
	}

	report := Report{
		ID:          ulid.Make().String(),
		GeneratedAt: time.Now().UTC(),
		Methodology: Methodology,
		Results:     aggregate.LineItems,
		Summary:     summary,
	}
	for _, opt := range opts {
		opt(&report)
	}
	return report
}

// WriteJSON encodes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// Save writes the JSON report to path.
func (r Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := r.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
