// =============================================================================
// Coffee Sales Dashboard - Render Command
// =============================================================================
//
// COMMAND USAGE:
//   coffee-dashboard render [--input FILE] [--output FILE]
//
// FLAGS:
//   --input   : Sales file to read (.xlsx or .csv); overrides input.file
//   --output  : Page to write; overrides output.file and accepts the
//               {date}, {timestamp}, {time} and {uuid} placeholders
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

// inputFile overrides the configured input path.
var inputFile string

// outputFile overrides the configured output path.
var outputFile string

// renderCmd represents the 'render' command.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate the static dashboard page",
	Long: `Render loads the sales file, computes the dashboard views and writes the
static HTML page. Without flags it is identical to running the root command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, inputFile, outputFile)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Sales file to read (overrides the config)")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "HTML file to write (overrides the config)")

	rootCmd.AddCommand(renderCmd)
}
