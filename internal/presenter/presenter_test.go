package presenter

import (
	"encoding/json"
	"testing"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/aggregator"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/loader"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresenter() *Presenter {
	cfg := config.Default()
	return New(cfg.Theme, cfg.Layout)
}

func TestMetricCard_Currency(t *testing.T) {
	c := newPresenter().MetricCard("x", decimal.RequireFromString("33.526666"), "Avg Transaction Value", true)

	require.Len(t, c.Data, 1)
	trace := c.Data[0].(IndicatorTrace)
	assert.Equal(t, 33.53, trace.Value)
	assert.Equal(t, "$", trace.Number.Prefix)
	assert.Equal(t, "Avg Transaction Value", trace.Title.Text)
	assert.Equal(t, 350, c.Layout.Height)
	assert.True(t, c.HasData())
}

func TestMetricCard_Count(t *testing.T) {
	c := newPresenter().MetricCard("x", decimal.NewFromInt(100), "Number Of Transactions", false)

	trace := c.Data[0].(IndicatorTrace)
	assert.Equal(t, 100.0, trace.Value)
	assert.Empty(t, trace.Number.Prefix)
}

func TestThousandsLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"17820", "$18K"},
		{"18150", "$18K"},
		{"499", "$0K"},
		{"500", "$0K"},
		{"500.01", "$1K"},
		{"1500", "$2K"},
		{"2500", "$2K"},
		{"3500", "$4K"},
		{"123456.78", "$123K"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ThousandsLabel(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestDonut(t *testing.T) {
	s := aggregator.SalesByPaymentType(loader.FallbackDataset())
	c := newPresenter().Donut("pay", s)

	trace := c.Data[0].(PieTrace)
	assert.Equal(t, []string{"card", "cash"}, trace.Labels)
	assert.Equal(t, []float64{27000, 27500}, trace.Values)
	assert.Equal(t, 0.6, trace.Hole)
	assert.Equal(t, []string{"#D2B48C", "#2A140D"}, trace.Marker.Colors)
	assert.Equal(t, "Sales By Payment Type", c.Layout.Title.Text)
}

func TestBar_OrderAndLabels(t *testing.T) {
	s := aggregator.RevenueByProduct(loader.FallbackDataset())
	c := newPresenter().Bar("bar", s)

	trace := c.Data[0].(BarTrace)
	assert.Equal(t, "h", trace.Orientation)
	assert.Equal(t, []string{"Latte", "Capuccino", "Espresso"}, trace.Y)
	assert.Equal(t, []float64{17820, 18150, 18530}, trace.X)
	assert.Equal(t, []string{"$18K", "$18K", "$19K"}, trace.Text)
	require.NotNil(t, c.Layout.XAxis.Visible)
	assert.False(t, *c.Layout.XAxis.Visible)
}

func TestLine_NullGaps(t *testing.T) {
	ds := types.NewDataset("one", []types.Transaction{{
		Amount:      decimal.NewFromInt(12),
		PaymentType: "card",
		ProductName: "Latte",
		Date:        loader.FallbackDataset().Records()[0].Date, // Wednesday
	}})
	c := newPresenter().Line("line", aggregator.WeeklyTrend(ds))

	raw, err := json.Marshal(c.Data[0])
	require.NoError(t, err)

	var decoded struct {
		X []string   `json:"x"`
		Y []*float64 `json:"y"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "Monday", decoded.X[0])
	require.Len(t, decoded.Y, 7)
	assert.Nil(t, decoded.Y[0])
	require.NotNil(t, decoded.Y[2])
	assert.Equal(t, 12.0, *decoded.Y[2])
	assert.Contains(t, string(raw), `"y":[null,null,12,null,null,null,null]`)
}

func TestNoDataPlaceholders(t *testing.T) {
	p := newPresenter()
	empty := aggregator.Series{}

	tests := []struct {
		name  string
		chart Chart
		want  string
	}{
		{"donut", p.Donut("a", empty), NoDataDonut},
		{"bar", p.Bar("b", empty), NoDataBar},
		{"line", p.Line("c", empty), NoDataLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.chart.HasData())
			assert.Equal(t, tt.want, tt.chart.Placeholder)
			assert.Empty(t, tt.chart.Data)
		})
	}
}

func TestDashboard_Layout(t *testing.T) {
	page := newPresenter().Dashboard(aggregator.Compute(loader.FallbackDataset()))

	assert.Equal(t, "Coffee Sales Dashboard", page.Title)
	assert.Equal(t, "COFFEE SHOP SALES", page.Heading)
	require.Len(t, page.Rows, 2)
	require.Len(t, page.Rows[0], 4)
	require.Len(t, page.Rows[1], 2)

	kinds := []Kind{}
	for _, c := range page.Charts() {
		kinds = append(kinds, c.Kind)
		assert.True(t, c.HasData(), c.ID)
	}
	assert.Equal(t, []Kind{KindIndicator, KindIndicator, KindIndicator, KindDonut, KindBar, KindLine}, kinds)

	total := page.Rows[0][0].Data[0].(IndicatorTrace)
	assert.Equal(t, 54500.0, total.Value)
}

func TestDashboard_EmptyDataset(t *testing.T) {
	page := newPresenter().Dashboard(aggregator.Compute(types.NewDataset("empty", nil)))

	for _, c := range page.Rows[0][:3] {
		assert.True(t, c.HasData(), "metric cards always render")
	}
	assert.Equal(t, NoDataDonut, page.Rows[0][3].Placeholder)
	assert.Equal(t, NoDataBar, page.Rows[1][0].Placeholder)
	assert.Equal(t, NoDataLine, page.Rows[1][1].Placeholder)
}
