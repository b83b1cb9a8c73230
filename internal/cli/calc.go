package cli

import (
	"github.com/spf13/cobra"

	"github.com/carbonfocus/carbonfocus/internal/calc"
	"github.com/carbonfocus/carbonfocus/internal/factors"
)

// newCalcCmd groups the calculation subcommands.
func newCalcCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate emissions from activity data",
	}

	cmd.AddCommand(newScope1Cmd(app))
	cmd.AddCommand(newScope2Cmd(app))
	cmd.AddCommand(newScope3Cmd(app))
	cmd.AddCommand(newAssessCmd(app))

	return cmd
}

func newScope1Cmd(app *App) *cobra.Command {
	var (
		fuel        string
		refrigerant string
		amount      float64
		unit        string
	)

	cmd := &cobra.Command{
		Use:   "scope1",
		Short: "Direct emissions: fuel combustion or refrigerant release",
		Example: `  carbonfocus calc scope1 --fuel natural_gas --amount 1000 --unit m3
  carbonfocus calc scope1 --refrigerant R410A --amount 12 --unit kg`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record := calc.ActivityRecord{
				Scope:  calc.Scope1,
				Amount: amount,
				Unit:   unit,
			}
			switch {
			case refrigerant != "":
				record.Category = factors.CategoryRefrigerant
				record.Key = refrigerant
			default:
				record.Category = factors.CategoryFuel
				record.Key = fuel
			}

			result, err := app.Calculator.Scope1(record)
			if err != nil {
				return err
			}
			app.Logger.Info().
				Str("operation", "scope1").
				Str("key", record.Key).
				Float64("tco2e", result.TotalTCO2e).
				Msg("calculated")
			return printResult(cmd, app, result)
		},
	}

	cmd.Flags().StringVar(&fuel, "fuel", "", "Fuel type (natural_gas, diesel, gasoline, lpg, fuel_oil, coal)")
	cmd.Flags().StringVar(&refrigerant, "refrigerant", "", "Refrigerant gas released (R410A, R404A, R134a, R32, SF6)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Activity amount")
	cmd.Flags().StringVar(&unit, "unit", "", "Amount unit (m3, L, kg, t)")
	cmd.MarkFlagsOneRequired("fuel", "refrigerant")
	cmd.MarkFlagsMutuallyExclusive("fuel", "refrigerant")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newScope2Cmd(app *App) *cobra.Command {
	var (
		kwh       float64
		region    string
		method    string
		renewable float64
	)

	cmd := &cobra.Command{
		Use:   "scope2",
		Short: "Energy-indirect emissions: purchased electricity",
		Example: `  carbonfocus calc scope2 --kwh 50000 --region Dubai
  carbonfocus calc scope2 --kwh 50000 --region Dubai --method market_based --renewable 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.Calculator.Scope2(calc.ActivityRecord{
				Scope:               calc.Scope2,
				Category:            factors.CategoryElectricity,
				Region:              region,
				Amount:              kwh,
				Unit:                "kWh",
				Method:              method,
				RenewablePercentage: renewable,
			})
			if err != nil {
				return err
			}
			app.Logger.Info().
				Str("operation", "scope2").
				Str("region", region).
				Float64("tco2e", result.TotalTCO2e).
				Msg("calculated")
			return printResult(cmd, app, result)
		},
	}

	cmd.Flags().Float64Var(&kwh, "kwh", 0, "Electricity consumed in kWh")
	cmd.Flags().StringVar(&region, "region", "", "Emirate or province (Dubai, Abu Dhabi, Riyadh, ...)")
	cmd.Flags().StringVar(&method, "method", calc.MethodLocationBased, "Accounting method: location_based or market_based")
	cmd.Flags().Float64Var(&renewable, "renewable", 0, "Contracted renewable share in percent (market_based only)")
	_ = cmd.MarkFlagRequired("kwh")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func newScope3Cmd(app *App) *cobra.Command {
	var (
		category string
		key      string
		amount   float64
		unit     string
		region   string
	)

	cmd := &cobra.Command{
		Use:   "scope3",
		Short: "Value-chain emissions: transport, water, waste, cooling",
		Example: `  carbonfocus calc scope3 --category transport --key suv --amount 1200 --unit km
  carbonfocus calc scope3 --category water --key desalinated_water --amount 500 --unit m3 --region Dubai`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := factors.ParseCategory(category)
			if err != nil {
				return err
			}
			result, err := app.Calculator.Scope3(calc.ActivityRecord{
				Scope:    calc.Scope3,
				Category: cat,
				Key:      key,
				Amount:   amount,
				Unit:     unit,
				Region:   region,
			})
			if err != nil {
				return err
			}
			app.Logger.Info().
				Str("operation", "scope3").
				Str("category", category).
				Str("key", key).
				Float64("tco2e", result.TotalTCO2e).
				Msg("calculated")
			return printResult(cmd, app, result)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Activity category: transport, water, waste or cooling")
	cmd.Flags().StringVar(&key, "key", "", "Factor key, e.g. suv, recycling, desalinated_water")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Activity amount (distance for transport)")
	cmd.Flags().StringVar(&unit, "unit", "", "Amount unit (km, mi, m3, L, kg, t, kWh)")
	cmd.Flags().StringVar(&region, "region", "", "Region for factors with UAE/KSA variants")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
