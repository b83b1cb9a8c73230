package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// tabwriterPadding is the minimum padding between rendered columns.
const tabwriterPadding = 2

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatTCO2e formats a tonnes-CO2e value with thousand separators and
// three decimals, the precision inventories are reported at.
func FormatTCO2e(v float64) string {
	return printer.Sprintf("%.3f", v)
}

// RenderTable writes the report as a plain-text table: one row per line
// item in calculation order, followed by the scope summary.
func (r Report) RenderTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	fmt.Fprintf(tw, "SCOPE\tCATEGORY\tACTIVITY\ttCO2e\tSOURCE\n")
	for _, item := range r.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			item.Scope, item.Category, item.Activity,
			FormatTCO2e(item.TotalTCO2e), item.Source)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering line items: %w", err)
	}

	fmt.Fprintln(w)

	sw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintf(sw, "Scope 1\t%s tCO2e\t%.1f%%\n", FormatTCO2e(r.Summary.Scope1), r.Summary.Scope1Percent)
	fmt.Fprintf(sw, "Scope 2\t%s tCO2e\t%.1f%%\n", FormatTCO2e(r.Summary.Scope2), r.Summary.Scope2Percent)
	fmt.Fprintf(sw, "Scope 3\t%s tCO2e\t%.1f%%\n", FormatTCO2e(r.Summary.Scope3), r.Summary.Scope3Percent)
	fmt.Fprintf(sw, "TOTAL\t%s tCO2e\t\n", FormatTCO2e(r.Summary.GrandTotal))
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}

	if r.FactorsVersion != "" {
		fmt.Fprintf(w, "\nFactor table v%s, %s\n", r.FactorsVersion, r.Methodology)
	}
	return nil
}
