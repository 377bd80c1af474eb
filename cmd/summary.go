// =============================================================================
// Coffee Sales Dashboard - Summary Command
// =============================================================================
//
// This file defines the 'summary' command, which prints the dashboard views
// to stdout instead of writing the HTML page.
//
// COMMAND USAGE:
//   coffee-dashboard summary [--input FILE] [--format text|json]
//
// OUTPUT (text):
//   Source                  Coffe_sales.xlsx
//   Total Sales             $54500.00
//   Number Of Transactions  100
//   Avg Transaction Value   $545.00
//
//   Sales By Payment Type
//     card                  $27000.00
//   ...
//
// Money is printed with two decimals; weekdays without sales print "-".
//
// =============================================================================

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/aggregator"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/report"
	"github.com/spf13/cobra"
)

// summaryInput overrides the configured input path.
var summaryInput string

// summaryFormat selects the output format: "text" or "json".
var summaryFormat string

// summaryCmd represents the 'summary' command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dashboard metrics without writing HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if summaryFormat != "text" && summaryFormat != "json" {
			return fmt.Errorf("unknown format %q (want text or json)", summaryFormat)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if summaryInput != "" {
			cfg.Input.File = summaryInput
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

		summary, err := report.New(cfg, logger).Summarize(ctx)
		if err != nil {
			return err
		}

		if summaryFormat == "json" {
			return writeSummaryJSON(cmd.OutOrStdout(), summary)
		}
		return writeSummaryText(cmd.OutOrStdout(), summary)
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryInput, "input", "i", "", "Sales file to read (overrides the config)")
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", "text", "Output format: text or json")

	rootCmd.AddCommand(summaryCmd)
}

// =============================================================================
// OUTPUT FORMATS
// =============================================================================

type summaryPoint struct {
	Label string  `json:"label"`
	Value *string `json:"value"`
}

type summaryDocument struct {
	Source              string         `json:"source"`
	Fallback            bool           `json:"fallback"`
	RunID               string         `json:"run_id"`
	TotalSales          string         `json:"total_sales"`
	TransactionCount    int            `json:"transaction_count"`
	AvgTransactionValue string         `json:"avg_transaction_value"`
	SalesByPaymentType  []summaryPoint `json:"sales_by_payment_type"`
	RevenueByProduct    []summaryPoint `json:"revenue_by_product"`
	WeeklyTrend         []summaryPoint `json:"weekly_trend"`
}

func writeSummaryJSON(w io.Writer, s report.Summary) error {
	doc := summaryDocument{
		Source:              s.InputFile,
		Fallback:            s.UsedFallback,
		RunID:               s.RunID,
		TotalSales:          s.Views.TotalSales.StringFixed(2),
		TransactionCount:    s.Views.TransactionCount,
		AvgTransactionValue: s.Views.AvgTransactionValue.StringFixed(2),
		SalesByPaymentType:  toSummaryPoints(s.Views.SalesByPaymentType),
		RevenueByProduct:    toSummaryPoints(s.Views.RevenueByProduct),
		WeeklyTrend:         toSummaryPoints(s.Views.WeeklyTrend),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toSummaryPoints(series aggregator.Series) []summaryPoint {
	points := make([]summaryPoint, 0, len(series.Points))
	for _, p := range series.Points {
		sp := summaryPoint{Label: p.Label}
		if p.Valid {
			v := p.Value.StringFixed(2)
			sp.Value = &v
		}
		points = append(points, sp)
	}
	return points
}

func writeSummaryText(w io.Writer, s report.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	source := s.InputFile
	if s.UsedFallback {
		source += " (unavailable, demonstration data)"
	}
	fmt.Fprintf(tw, "Source\t%s\n", source)
	fmt.Fprintf(tw, "Total Sales\t$%s\n", s.Views.TotalSales.StringFixed(2))
	fmt.Fprintf(tw, "Number Of Transactions\t%d\n", s.Views.TransactionCount)
	fmt.Fprintf(tw, "Avg Transaction Value\t$%s\n", s.Views.AvgTransactionValue.StringFixed(2))

	sections := []struct {
		title  string
		series aggregator.Series
	}{
		{"Sales By Payment Type", s.Views.SalesByPaymentType},
		{"Revenue By Coffee Type", s.Views.RevenueByProduct},
		{"Sales Trend By Day", s.Views.WeeklyTrend},
	}
	for _, sec := range sections {
		fmt.Fprintf(tw, "\n%s\t\n", sec.title)
		if sec.series.NoData() {
			fmt.Fprintf(tw, "  no data\t\n")
			continue
		}
		for _, p := range sec.series.Points {
			if p.Valid {
				fmt.Fprintf(tw, "  %s\t$%s\n", p.Label, p.Value.StringFixed(2))
			} else {
				fmt.Fprintf(tw, "  %s\t-\n", p.Label)
			}
		}
	}

	return tw.Flush()
}
