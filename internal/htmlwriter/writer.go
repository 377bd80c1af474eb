// =============================================================================
// Coffee Sales Dashboard - HTML Writer Module
// =============================================================================
//
// This module renders a presenter.Page into one self-contained HTML document.
// The page has no server side: it only references the Plotly script and the
// Pico stylesheet from their CDNs.
//
// The markup lives in dashboard.templ (Document, Row, Chart, ResizeScript);
// run `templ generate` after editing it to refresh dashboard_templ.go.
//
// DOCUMENT STRUCTURE:
//
//   <!doctype html>
//   <html>
//     <head>
//       <title>Coffee Sales Dashboard</title>
//       <link rel="stylesheet" href="...pico.min.css">
//       <script src="...plotly.min.js"></script>
//     </head>
//     <body style="background-color: #FDFBF5; ...">
//       <main class="container">
//         <h1>COFFEE SHOP SALES</h1>
//         <div class="grid">                 <!-- metrics row -->
//           <div style="card"> chart </div>  <!-- x4 -->
//         </div>
//         <div class="grid">                 <!-- charts row -->
//           <div style="card"> chart </div>  <!-- x2 -->
//         </div>
//         <script> draw figures, resize on load </script>
//       </main>
//     </body>
//   </html>
//
// Each chart is a <div id="..."> followed by a JSON script element holding
// its Plotly traces and layout. One inline script hands every figure to
// Plotly.newPlot. Charts without data render as a <p>.
//
// =============================================================================

package htmlwriter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/presenter"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for HTML generation.
type GenerateOptions struct {
	// PlotlyURL is the Plotly bundle loaded in <head>.
	PlotlyURL string

	// StylesURL is the stylesheet loaded in <head>.
	// Empty disables the link.
	StylesURL string

	// PageColor is the body background colour.
	PageColor string

	// TextColor is the heading colour.
	TextColor string

	// CardStyle is the inline style of every chart container.
	CardStyle string

	// RowGap is appended to the card style of every row after the first.
	// Default: "margin-top: 1.5rem;"
	RowGap string

	// ReportID, when set, is written to a <meta name="report-id"> tag.
	ReportID string
}

// OptionsFromConfig derives the generation options from cfg.
func OptionsFromConfig(cfg *config.Config) GenerateOptions {
	return GenerateOptions{
		PlotlyURL: cfg.Layout.PlotlyURL,
		StylesURL: cfg.Layout.StylesURL,
		PageColor: cfg.Theme.Page,
		TextColor: cfg.Theme.Text,
		CardStyle: cfg.Theme.CardStyle,
		RowGap:    "margin-top: 1.5rem;",
	}
}

// =============================================================================
// HTML GENERATION FUNCTIONS
// =============================================================================

// GenerateWithOptions renders page into one HTML document.
//
// PARAMETERS:
//   - ctx: Cancels rendering between components.
//   - page: The composed dashboard.
//   - options: Asset URLs, colours and the optional report id.
//
// RETURNS:
//   - The HTML document as a byte slice.
//   - An error if a chart cannot be serialized or ctx is done.
func GenerateWithOptions(ctx context.Context, page presenter.Page, options GenerateOptions) ([]byte, error) {
	var buffer bytes.Buffer
	if err := Document(page, options).Render(ctx, &buffer); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}
	return buffer.Bytes(), nil
}

// =============================================================================
// TEMPLATE HELPERS
// =============================================================================

// figure is the JSON payload read by the inline script for one chart.
type figure struct {
	Data   []any            `json:"data"`
	Layout presenter.Layout `json:"layout"`
}

func newFigure(chart presenter.Chart) figure {
	return figure{Data: chart.Data, Layout: chart.Layout}
}

// figureID is the id of the JSON script element that carries chart's figure.
func figureID(chart presenter.Chart) string {
	return chart.ID + "-figure"
}

func placeholder(chart presenter.Chart) string {
	if chart.Placeholder == "" {
		return "No data."
	}
	return chart.Placeholder
}

// The colours and card style come from the configuration file, not from the
// sales data, so they are passed to templ as SafeCSS.

func bodyStyle(options GenerateOptions) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("background-color: %s; font-family: sans-serif;", cssValue(options.PageColor)))
}

func headingStyle(options GenerateOptions) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("text-align: center; margin-bottom: 1.5rem; color: %s;", cssValue(options.TextColor)))
}

// cardStyle is the card style of row, with RowGap added after the first row.
func cardStyle(options GenerateOptions, row int) templ.SafeCSS {
	style := options.CardStyle
	if row > 0 && options.RowGap != "" {
		style = style + " " + options.RowGap
	}
	return templ.SafeCSS(style)
}

// cssValue strips characters that would end the style declaration.
func cssValue(v string) string {
	out := make([]rune, 0, len(v))
	for _, r := range v {
		switch r {
		case ';', '{', '}', '<', '>':
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
