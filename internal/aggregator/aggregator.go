// =============================================================================
// Coffee Sales Dashboard - Aggregator
// =============================================================================
//
// This module computes the dashboard views from a Dataset:
//
//   | View                  | Definition                                   |
//   |-----------------------|----------------------------------------------|
//   | TotalSales            | sum(amount)                                  |
//   | TransactionCount      | count(records)                               |
//   | AvgTransactionValue   | mean(amount), 0 for an empty dataset         |
//   | SalesByPaymentType    | payment type -> sum, keys ascending          |
//   | RevenueByProduct      | product -> sum, ascending by value           |
//   | WeeklyTrend           | weekday -> mean, Monday..Sunday              |
//
// Grouped views on an empty dataset are "no data" series rather than errors.
// All money arithmetic is exact (shopspring/decimal).
//
// =============================================================================

package aggregator

import (
	"cmp"
	"slices"
	"time"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/shopspring/decimal"
)

// =============================================================================
// VIEW TYPES
// =============================================================================

// Point is one labelled value of a grouped view.
type Point struct {
	Label string

	// Value is meaningful only when Valid is true.
	Value decimal.Decimal

	// Valid is false for a weekday with no sales.
	Valid bool
}

// Series is an ordered grouped view.
type Series struct {
	Points []Point
}

// NoData reports whether the view was computed from an empty dataset.
func (s Series) NoData() bool {
	return len(s.Points) == 0
}

// Labels returns the point labels in order.
func (s Series) Labels() []string {
	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Label
	}
	return labels
}

// Sum adds the valid point values.
func (s Series) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Points {
		if p.Valid {
			total = total.Add(p.Value)
		}
	}
	return total
}

// Lookup returns the point with the given label.
func (s Series) Lookup(label string) (Point, bool) {
	for _, p := range s.Points {
		if p.Label == label {
			return p, true
		}
	}
	return Point{}, false
}

// Views holds every aggregate for one run.
type Views struct {
	TotalSales          decimal.Decimal
	TransactionCount    int
	AvgTransactionValue decimal.Decimal
	SalesByPaymentType  Series
	RevenueByProduct    Series
	WeeklyTrend         Series
}

// Weekdays is the fixed display order of the weekly trend.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// =============================================================================
// AGGREGATE FUNCTIONS
// =============================================================================

// Compute returns all views for ds.
func Compute(ds *types.Dataset) Views {
	return Views{
		TotalSales:          TotalSales(ds),
		TransactionCount:    TransactionCount(ds),
		AvgTransactionValue: AverageTransactionValue(ds),
		SalesByPaymentType:  SalesByPaymentType(ds),
		RevenueByProduct:    RevenueByProduct(ds),
		WeeklyTrend:         WeeklyTrend(ds),
	}
}

// TotalSales sums every amount. Zero for an empty dataset.
func TotalSales(ds *types.Dataset) decimal.Decimal {
	total := decimal.Zero
	ds.Each(func(tx types.Transaction) {
		total = total.Add(tx.Amount)
	})
	return total
}

// TransactionCount is the number of records.
func TransactionCount(ds *types.Dataset) int {
	return ds.Len()
}

// AverageTransactionValue is the mean amount, reported as zero for an empty
// dataset.
func AverageTransactionValue(ds *types.Dataset) decimal.Decimal {
	n := ds.Len()
	if n == 0 {
		return decimal.Zero
	}
	return TotalSales(ds).Div(decimal.NewFromInt(int64(n)))
}

// SalesByPaymentType sums amounts per payment type, keys ascending.
func SalesByPaymentType(ds *types.Dataset) Series {
	sums := sumBy(ds, func(tx types.Transaction) string { return tx.PaymentType })

	points := toPoints(sums)
	slices.SortFunc(points, func(a, b Point) int {
		return cmp.Compare(a.Label, b.Label)
	})
	return Series{Points: points}
}

// RevenueByProduct sums amounts per product, smallest revenue first. Ties
// are broken by name so the order is stable between runs.
func RevenueByProduct(ds *types.Dataset) Series {
	sums := sumBy(ds, func(tx types.Transaction) string { return tx.ProductName })

	points := toPoints(sums)
	slices.SortFunc(points, func(a, b Point) int {
		if c := a.Value.Cmp(b.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return Series{Points: points}
}

// WeeklyTrend is the mean amount per weekday, Monday first. A non-empty
// dataset always yields seven points; days without sales are not Valid.
func WeeklyTrend(ds *types.Dataset) Series {
	if ds.IsEmpty() {
		return Series{}
	}

	var (
		sums   [7]decimal.Decimal
		counts [7]int64
	)
	ds.Each(func(tx types.Transaction) {
		day := tx.Date.Weekday()
		sums[day] = sums[day].Add(tx.Amount)
		counts[day]++
	})

	points := make([]Point, 0, len(Weekdays))
	for _, day := range Weekdays {
		p := Point{Label: day.String()}
		if counts[day] > 0 {
			p.Value = sums[day].Div(decimal.NewFromInt(counts[day]))
			p.Valid = true
		}
		points = append(points, p)
	}
	return Series{Points: points}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func sumBy(ds *types.Dataset, key func(types.Transaction) string) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	ds.Each(func(tx types.Transaction) {
		k := key(tx)
		sums[k] = sums[k].Add(tx.Amount)
	})
	return sums
}

func toPoints(sums map[string]decimal.Decimal) []Point {
	if len(sums) == 0 {
		return nil
	}
	points := make([]Point, 0, len(sums))
	for label, value := range sums {
		points = append(points, Point{Label: label, Value: value, Valid: true})
	}
	return points
}
