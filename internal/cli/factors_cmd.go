package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carbonfocus/carbonfocus/internal/factors"
)

// newFactorsCmd groups reference data inspection commands.
func newFactorsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Inspect and validate emission factor tables",
	}

	cmd.AddCommand(newFactorsListCmd(app))
	cmd.AddCommand(newFactorsValidateCmd(app))

	return cmd
}

func newFactorsListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the loaded emission factors with their sources",
		Example: `  carbonfocus factors list
  carbonfocus factors list --category electricity`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := factors.Categories()
			if category != "" {
				cat, err := factors.ParseCategory(category)
				if err != nil {
					return err
				}
				cats = []factors.Category{cat}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Factor table v%s\n\n", app.Table.Version)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "CATEGORY\tKEY\tFACTOR\tUNIT\tSOURCE\tYEAR\n")
			for _, cat := range cats {
				for _, f := range app.Table.Entries(cat) {
					fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%s\t%d\n",
						f.Category, f.Key, f.CO2Factor, f.Unit, f.Source, f.Year)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Restrict to one category (fuels, electricity, ...)")

	return cmd
}

func newFactorsValidateCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a factor table file against the schema",
		Long: `Validate checks a factor table file the same way startup does: JSON
Schema shape, semver version, positive factors outside waste credits,
and a cited source on every entry. Without --file it revalidates the
currently loaded table.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				cmd.Printf("Loaded factor table v%s is valid\n", app.Table.Version)
				return nil
			}

			table, err := factors.Load(file)
			if err != nil {
				return err
			}
			cmd.Printf("%s: valid factor table v%s\n", file, table.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Factor table file to validate")

	return cmd
}
