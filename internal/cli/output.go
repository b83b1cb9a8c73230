package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carbonfocus/carbonfocus/internal/calc"
	"github.com/carbonfocus/carbonfocus/internal/report"
)

// printResult renders a single calculation result in the configured
// output format.
func printResult(cmd *cobra.Command, app *App, result calc.EmissionResult) error {
	if app.Config.Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Activity\t%s\n", result.Activity)
	fmt.Fprintf(tw, "Scope\t%d\n", result.Scope)
	fmt.Fprintf(tw, "Emissions\t%s tCO2e\n", report.FormatTCO2e(result.TotalTCO2e))
	fmt.Fprintf(tw, "Factor\t%g %s (%s)\n", result.FactorUsed, result.FactorUnit, result.Source)
	fmt.Fprintf(tw, "Methodology\t%s\n", result.Methodology)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.Breakdown) > 1 {
		gases := make([]string, 0, len(result.Breakdown))
		for gas := range result.Breakdown {
			gases = append(gases, gas)
		}
		sort.Strings(gases)

		fmt.Fprintln(out, "Breakdown (kg):")
		for _, gas := range gases {
			fmt.Fprintf(out, "  %s: %g\n", gas, result.Breakdown[gas])
		}
	}
	return nil
}
