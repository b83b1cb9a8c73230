package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonfocus/carbonfocus/internal/calc"
	"github.com/carbonfocus/carbonfocus/internal/ingest"
	"github.com/carbonfocus/carbonfocus/internal/report"
)

// newAssessCmd runs the full pipeline over a facility file: ingest,
// per-record calculation, aggregation, report.
func newAssessCmd(app *App) *cobra.Command {
	var (
		file string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess a whole facility from an activity file",
		Long: `Assess reads a facility activity file (JSON or YAML) describing fuel,
electricity, transport, cooling, water, waste and refrigerant usage,
calculates every line and prints the aggregated inventory. Use --out to
additionally save the full JSON report.`,
		Example: `  carbonfocus calc assess --file facility.json
  carbonfocus calc assess --file facility.yaml --out report.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			facility, err := ingest.LoadFacility(file)
			if err != nil {
				return err
			}

			records := facility.Records()
			if len(records) == 0 {
				return fmt.Errorf("facility %q contains no activity data", facility.Name)
			}

			results := make([]calc.EmissionResult, 0, len(records))
			for i, record := range records {
				result, err := app.Calculator.Calculate(record)
				if err != nil {
					return fmt.Errorf("line %d (%s/%s): %w", i+1, record.Category, record.Key, err)
				}
				results = append(results, result)
			}

			aggregate := calc.Aggregate(results)
			rep := report.Build(aggregate,
				report.WithFacility(facility.Name),
				report.WithFactorsVersion(app.Table.Version))

			app.Logger.Info().
				Str("operation", "assess").
				Str("facility", facility.Name).
				Int("line_items", len(results)).
				Float64("total_tco2e", aggregate.GrandTotal).
				Msg("assessment complete")

			if out != "" {
				if err := rep.Save(out); err != nil {
					return err
				}
				cmd.PrintErrf("Report saved to %s\n", out)
			}

			if app.Config.Output.Format == "json" {
				return rep.WriteJSON(cmd.OutOrStdout())
			}
			return rep.RenderTable(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Facility activity file (.json, .yaml)")
	cmd.Flags().StringVar(&out, "out", "", "Also save the full JSON report to this path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
