package calc

// AggregateReport combines itemized results into per-scope and overall
// totals. Line items keep their input order for traceability. Built once
// per calculation session and read-only afterwards.
type AggregateReport struct {
	ByScope    map[Scope]float64 `json:"by_scope"`
	GrandTotal float64           `json:"grand_total"`
	LineItems  []EmissionResult  `json:"line_items"`
}

// Aggregate sums results into an AggregateReport. It is a pure function of
// its input sequence: summation is commutative over the line items, so any
// ordering yields the same totals within floating point tolerance.
func Aggregate(results []EmissionResult) AggregateReport {
	report := AggregateReport{
		ByScope:   map[Scope]float64{Scope1: 0, Scope2: 0, Scope3: 0},
		LineItems: make([]EmissionResult, len(results)),
	}
	copy(report.LineItems, results)

	for _, r := range results {
		report.ByScope[r.Scope] += r.TotalTCO2e
		report.GrandTotal += r.TotalTCO2e
	}
	return report
}
