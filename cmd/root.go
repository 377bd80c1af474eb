// =============================================================================
// Coffee Sales Dashboard - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Called without a
// subcommand it generates the dashboard with the configured defaults, so a
// bare "coffee-dashboard" behaves like the original one-shot script.
//
// COBRA CLI STRUCTURE:
//   rootCmd (coffee-dashboard)      generate the dashboard
//   ├── renderCmd  (render)         generate with --input/--output overrides
//   ├── summaryCmd (summary)        print the aggregates, no HTML
//   └── versionCmd (version)        print version information
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading config.yaml (a missing default file means built-in defaults)
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/logging"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coffee-dashboard",
	Short: "Coffee Sales Dashboard - Render coffee shop sales into a static HTML page",
	Long: `Coffee Sales Dashboard reads a spreadsheet of coffee sales, computes the
headline metrics and breakdowns, and writes a single static HTML page with
interactive Plotly charts.

When the input file is missing or unreadable, a synthetic dataset of 100
transactions is used so the page can still be previewed.

Example Usage:
  coffee-dashboard                                  # Coffe_sales.xlsx -> dashboard_estatico.html
  coffee-dashboard render --input sales.csv         # Use another input file
  coffee-dashboard summary --format json            # Print the aggregates
  coffee-dashboard --config ./dashboard.yaml        # Use a custom configuration file`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, "", "")
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	// An explicit path must exist; the default may be absent.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig reads the configuration named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	required := cmd.Flags().Changed("config")
	cfg, err := config.Load(cfgFile, required)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, nil
}

// runDashboard generates the page. Non-empty input and output replace the
// configured paths.
func runDashboard(cmd *cobra.Command, input, output string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if input != "" {
		cfg.Input.File = input
	}
	if output != "" {
		cfg.Output.File = output
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := report.New(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.UsedFallback {
		fmt.Fprintf(out, "Input '%s' not available; the page shows demonstration data.\n", result.InputFile)
	}
	fmt.Fprintf(out, "Static dashboard saved as '%s' (%d records).\n", result.OutputFile, result.Stats.Records)
	fmt.Fprintln(out, "Open this file directly in your browser.")
	return nil
}
