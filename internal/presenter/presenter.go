// =============================================================================
// Coffee Sales Dashboard - Presenter
// =============================================================================
//
// The presenter maps aggregate views to chart specifications. It is pure
// formatting: no I/O, no aggregation.
//
// PAGE LAYOUT:
//   Row 1: Total Sales | Number Of Transactions | Avg Transaction Value | donut
//   Row 2: revenue by product (horizontal bar) | sales trend by day (line)
//
// FORMATTING RULES:
//   - Currency values are rounded to 2 decimals and prefixed with "$"
//   - Counts are shown as integers
//   - A "no data" view becomes a placeholder instead of a chart
//
// =============================================================================

package presenter

import (
	"fmt"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/aggregator"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/shopspring/decimal"
)

// Kind is the chart type.
type Kind string

const (
	KindIndicator Kind = "indicator"
	KindDonut     Kind = "donut"
	KindBar       Kind = "bar"
	KindLine      Kind = "line"
)

// Chart is one renderable chart specification.
type Chart struct {
	// ID is the DOM id of the chart container.
	ID string

	Kind  Kind
	Title string

	// Placeholder is set instead of Data when the view has no data.
	Placeholder string

	Data   []any
	Layout Layout
}

// HasData reports whether the chart carries a trace.
func (c Chart) HasData() bool {
	return c.Placeholder == "" && len(c.Data) > 0
}

// Page is the composed dashboard handed to the renderer.
type Page struct {
	Title   string
	Heading string
	Rows    [][]Chart
}

// Charts returns every chart in row order.
func (p Page) Charts() []Chart {
	var all []Chart
	for _, row := range p.Rows {
		all = append(all, row...)
	}
	return all
}

// Placeholder messages for empty views.
const (
	NoDataDonut = "No data for the payment type chart."
	NoDataBar   = "No data for the product revenue chart."
	NoDataLine  = "No data for the weekly trend chart."
)

// Presenter builds charts with an explicit theme and layout.
type Presenter struct {
	theme  config.ThemeConfig
	layout config.LayoutConfig
}

// New creates a Presenter.
func New(theme config.ThemeConfig, layout config.LayoutConfig) *Presenter {
	return &Presenter{theme: theme, layout: layout}
}

// Dashboard composes the full page from the views.
func (p *Presenter) Dashboard(v aggregator.Views) Page {
	metrics := []Chart{
		p.MetricCard("chart-total-sales", v.TotalSales, "Total Sales", true),
		p.MetricCard("chart-transactions", decimal.NewFromInt(int64(v.TransactionCount)), "Number Of Transactions", false),
		p.MetricCard("chart-avg-value", v.AvgTransactionValue, "Avg Transaction Value", true),
		p.Donut("chart-payment-type", v.SalesByPaymentType),
	}
	charts := []Chart{
		p.Bar("chart-product-revenue", v.RevenueByProduct),
		p.Line("chart-weekly-trend", v.WeeklyTrend),
	}

	return Page{
		Title:   p.layout.PageTitle,
		Heading: p.layout.Heading,
		Rows:    [][]Chart{metrics, charts},
	}
}

// MetricCard renders a single number. Currency values are rounded to two
// decimals with a "$" prefix; other values are truncated to an integer.
func (p *Presenter) MetricCard(id string, value decimal.Decimal, title string, currency bool) Chart {
	number := &IndicatorNumber{Font: &Font{Color: p.theme.Text, Size: 36}}

	var v float64
	if currency {
		v = value.Round(2).InexactFloat64()
		number.Prefix = "$"
	} else {
		v = float64(value.IntPart())
	}

	trace := IndicatorTrace{
		Type:   "indicator",
		Mode:   "number",
		Value:  v,
		Title:  &Title{Text: title, Font: &Font{Color: p.theme.Text, Size: 16}},
		Number: number,
	}

	return Chart{
		ID:    id,
		Kind:  KindIndicator,
		Title: title,
		Data:  []any{trace},
		Layout: Layout{
			Height:       p.layout.CardHeight,
			PaperBGColor: p.theme.Background,
			PlotBGColor:  p.theme.Background,
		},
	}
}

// Donut renders sales by payment type.
func (p *Presenter) Donut(id string, s aggregator.Series) Chart {
	const title = "Sales By Payment Type"
	if s.NoData() {
		return Chart{ID: id, Kind: KindDonut, Title: title, Placeholder: NoDataDonut}
	}

	trace := PieTrace{
		Type:      "pie",
		Labels:    s.Labels(),
		Values:    floats(s),
		Hole:      0.6,
		Direction: "clockwise",
		Sort:      false,
		TextInfo:  "percent",
		HoverInfo: "label+percent",
		TextFont:  &Font{Size: 12, Color: "white"},
		Marker: &Marker{
			Colors: p.theme.Palette,
			Line:   &Line{Color: "#000000", Width: 1},
		},
	}

	return Chart{
		ID:    id,
		Kind:  KindDonut,
		Title: title,
		Data:  []any{trace},
		Layout: Layout{
			Title:        p.title(title),
			Height:       p.layout.DonutHeight,
			PaperBGColor: p.theme.Background,
			PlotBGColor:  p.theme.Background,
			ShowLegend:   boolPtr(true),
			Legend: &Legend{
				Orientation: "h",
				YAnchor:     "bottom",
				Y:           -0.4,
				XAnchor:     "center",
				X:           0.5,
				Font:        &Font{Color: p.theme.Text},
			},
		},
	}
}

// Bar renders revenue by product as horizontal bars. The series arrives
// ascending, which Plotly draws bottom-up, so the largest bar is on top.
func (p *Presenter) Bar(id string, s aggregator.Series) Chart {
	const title = "Revenue By Coffee Type"
	if s.NoData() {
		return Chart{ID: id, Kind: KindBar, Title: title, Placeholder: NoDataBar}
	}

	labels := make([]string, len(s.Points))
	for i, pt := range s.Points {
		labels[i] = ThousandsLabel(pt.Value)
	}

	trace := BarTrace{
		Type:         "bar",
		Orientation:  "h",
		X:            floats(s),
		Y:            s.Labels(),
		Text:         labels,
		TextPosition: "auto",
		Marker:       &Marker{Color: p.theme.Text},
	}

	return Chart{
		ID:    id,
		Kind:  KindBar,
		Title: title,
		Data:  []any{trace},
		Layout: Layout{
			Title:        p.title(title),
			Height:       p.layout.ChartHeight,
			PaperBGColor: p.theme.Background,
			PlotBGColor:  p.theme.Background,
			XAxis:        &Axis{ShowGrid: false, Visible: boolPtr(false)},
			YAxis: &Axis{
				ShowGrid: false,
				TickFont: &Font{Color: p.theme.Text},
				Title:    &Title{Font: &Font{Color: p.theme.Text}},
			},
		},
	}
}

// Line renders the weekday trend. Weekdays without sales are null points.
func (p *Presenter) Line(id string, s aggregator.Series) Chart {
	const title = "Sales Trend By Day"
	if s.NoData() {
		return Chart{ID: id, Kind: KindLine, Title: title, Placeholder: NoDataLine}
	}

	y := make([]*float64, len(s.Points))
	for i, pt := range s.Points {
		if pt.Valid {
			v := pt.Value.Round(2).InexactFloat64()
			y[i] = &v
		}
	}

	trace := ScatterTrace{
		Type:   "scatter",
		Mode:   "lines+markers",
		X:      s.Labels(),
		Y:      y,
		Line:   &Line{Color: p.theme.Text, Width: 3},
		Marker: &Marker{Color: p.theme.Text, Size: 6},
	}

	return Chart{
		ID:    id,
		Kind:  KindLine,
		Title: title,
		Data:  []any{trace},
		Layout: Layout{
			Title:        p.title(title),
			Height:       p.layout.ChartHeight,
			PaperBGColor: p.theme.Background,
			PlotBGColor:  p.theme.Background,
			XAxis: &Axis{
				ShowGrid: false,
				TickFont: &Font{Color: p.theme.Text},
				Title:    &Title{Font: &Font{Color: p.theme.Text}},
			},
			YAxis: &Axis{
				ShowGrid:  true,
				GridColor: p.theme.Grid,
				TickFont:  &Font{Color: p.theme.Text},
				Title:     &Title{Font: &Font{Color: p.theme.Text}},
			},
		},
	}
}

// ThousandsLabel formats a revenue as "$<thousands>K", e.g. 17820 -> "$18K".
// Exact halves round to even: 2500 -> "$2K", 3500 -> "$4K".
func ThousandsLabel(v decimal.Decimal) string {
	return fmt.Sprintf("$%sK", v.Div(decimal.NewFromInt(1000)).StringFixedBank(0))
}

func (p *Presenter) title(text string) *Title {
	return &Title{Text: text, Font: &Font{Color: p.theme.Text}, X: 0.5}
}

func floats(s aggregator.Series) []float64 {
	out := make([]float64, len(s.Points))
	for i, pt := range s.Points {
		out[i] = pt.Value.Round(2).InexactFloat64()
	}
	return out
}
