// =============================================================================
// Coffee Sales Dashboard - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Coffee Sales Dashboard CLI. It delegates
// command execution to the cmd package.
//
// USAGE:
//   coffee-dashboard            - Generate dashboard_estatico.html
//   coffee-dashboard render     - Generate with --input/--output overrides
//   coffee-dashboard summary    - Print the aggregates as text or JSON
//   coffee-dashboard version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Loading, aggregation, presentation and rendering
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/coffee-sales-dashboard/cmd"
)

func main() {
	cmd.Execute()
}
