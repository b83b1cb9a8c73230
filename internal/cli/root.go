// Package cli wires the carbonfocus commands. Commands are thin adapters:
// they translate flags and files into activity records, call the
// calculators and print results. No emission arithmetic lives here.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carbonfocus/carbonfocus/internal/calc"
	"github.com/carbonfocus/carbonfocus/internal/config"
	"github.com/carbonfocus/carbonfocus/internal/factors"
	"github.com/carbonfocus/carbonfocus/internal/logging"
)

// App holds state shared by every command for one CLI invocation: the
// resolved configuration, the loaded factor table and the calculator
// reading from it. It is populated by the root command's
// PersistentPreRunE before any subcommand runs.
type App struct {
	Config     *config.Config
	Table      *factors.Table
	Calculator *calc.Calculator
	Logger     zerolog.Logger

	configPath  string
	factorsPath string
	output      string
	logLevel    string
	debug       bool
}

// NewRootCmd creates the root carbonfocus command with all subcommands
// attached.
func NewRootCmd(version string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "carbonfocus",
		Short: "GHG emissions calculator for the UAE and KSA",
		Long: `CarbonFocus calculates greenhouse gas emissions following the GHG
Protocol Corporate Standard, using published emission factors for the UAE
and Saudi Arabia (IPCC, IEA, national utilities).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Scope 1: fuel combustion
  carbonfocus calc scope1 --fuel natural_gas --amount 1000 --unit m3

  # Scope 2: purchased electricity, market-based
  carbonfocus calc scope2 --kwh 50000 --region Dubai --method market_based --renewable 10

  # Full facility assessment
  carbonfocus calc assess --file facility.json --out report.json`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "Path to config file (default $HOME/.carbonfocus/config.yaml)")
	flags.StringVar(&app.factorsPath, "factors", "", "Path to a custom emission factor table (default embedded)")
	flags.StringVar(&app.output, "output", "", "Output format: table or json")
	flags.StringVar(&app.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	flags.BoolVar(&app.debug, "debug", false, "Shorthand for --log-level debug with console output")

	cmd.AddCommand(newCalcCmd(app))
	cmd.AddCommand(newFactorsCmd(app))

	return cmd
}

// setup resolves configuration, initializes logging and loads the factor
// table. A factor table that fails validation aborts the run: the
// calculator must never operate on unverified reference data.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "console"
	}
	if a.output != "" {
		if a.output != "table" && a.output != "json" {
			return fmt.Errorf("output format must be table or json, got %q", a.output)
		}
		cfg.Output.Format = a.output
	}
	if a.factorsPath != "" {
		cfg.Factors.Path = a.factorsPath
	}

	logger, fallbackReason := logging.NewLogger(cfg.Logging.ToLoggingConfig())
	a.Logger = logging.ComponentLogger(logger, "cli")
	if fallbackReason != "" {
		a.Logger.Warn().Str("reason", fallbackReason).Msg("log file unavailable, logging to stderr only")
	}
	cmd.SetContext(a.Logger.WithContext(cmd.Context()))

	table, err := factors.Load(cfg.Factors.Path)
	if err != nil {
		a.Logger.Error().Err(err).Str("path", cfg.Factors.Path).Msg("factor table rejected")
		return err
	}

	a.Config = cfg
	a.Table = table
	a.Calculator = calc.New(table)

	a.Logger.Debug().
		Str("factors_version", table.Version).
		Str("output", cfg.Output.Format).
		Msg("initialized")
	return nil
}
