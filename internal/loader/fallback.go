package loader

import (
	"time"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/shopspring/decimal"
)

// FallbackSize is the number of synthetic records.
const FallbackSize = 100

var (
	fallbackPayments = []string{"card", "cash"}
	fallbackProducts = []string{"Espresso", "Latte", "Capuccino"}
	fallbackStart    = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// FallbackDataset returns the deterministic demo dataset used when the real
// input is unavailable. Record i has amount 10*i+50, alternates card/cash,
// cycles through three products and falls on 2025-01-01 plus i days.
func FallbackDataset() *types.Dataset {
	records := make([]types.Transaction, FallbackSize)
	for i := range records {
		records[i] = types.Transaction{
			Amount:      decimal.NewFromInt(int64(10*i + 50)),
			PaymentType: fallbackPayments[i%len(fallbackPayments)],
			ProductName: fallbackProducts[i%len(fallbackProducts)],
			Date:        fallbackStart.AddDate(0, 0, i),
		}
	}

	ds := types.NewDataset(types.FallbackSource, records)
	ds.Fallback = true
	return ds
}
