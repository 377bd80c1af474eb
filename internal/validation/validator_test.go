package validation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultColumns() config.ColumnSettings {
	return config.Default().Input.Columns
}

func table(headers []string, rows ...map[string]string) *types.RawTable {
	t := &types.RawTable{SourceFile: "sales.xlsx", Headers: headers}
	for i, r := range rows {
		t.Rows = append(t.Rows, types.RawRow{Number: i + 2, Fields: r})
	}
	return t
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "38.7", want: "38.7"},
		{in: " 40 ", want: "40"},
		{in: "$1,204.50", want: "1204.5"},
		{in: "12,345,678", want: "12345678"},
		{in: "-1,000", want: "-1000"},
		{in: "38,70", wantErr: true},
		{in: "1,5", wantErr: true},
		{in: "1,2,3", wantErr: true},
		{in: "1234,567", wantErr: true},
		{in: ",500", wantErr: true},
		{in: "-3", want: "-3"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "45352", want: "2024-03-01"},
		{in: "45352.42766", want: "2024-03-01"},
		{in: "2024-03-01", want: "2024-03-01"},
		{in: "2024-03-01 10:15:50", want: "2024-03-01"},
		{in: "2024-03-01T10:15:50Z", want: "2024-03-01"},
		{in: "03/01/2024", want: "2024-03-01"},
		{in: "3/1/24", want: "2024-03-01"},
		{in: "20240301", want: "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}

	for _, bad := range []string{"", "tomorrow", "2024-13-45"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestCheckColumns(t *testing.T) {
	tbl := table([]string{"Date", "CASH_TYPE", "money", "coffee_name", "hour_of_day"})

	idx, err := CheckColumns(tbl, defaultColumns())
	require.NoError(t, err)
	assert.Equal(t, "money", idx.Amount)
	assert.Equal(t, "CASH_TYPE", idx.PaymentType)
	assert.Equal(t, "coffee_name", idx.Product)
	assert.Equal(t, "Date", idx.Date)
}

func TestCheckColumns_Missing(t *testing.T) {
	tbl := table([]string{"money", "coffee_name"})

	_, err := CheckColumns(tbl, defaultColumns())

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"cash_type", "date"}, schemaErr.Missing)
	assert.Contains(t, err.Error(), "sales.xlsx")
}

func TestToTransactions(t *testing.T) {
	tbl := table([]string{"date", "cash_type", "money", "coffee_name"},
		map[string]string{"date": "2024-03-01", "cash_type": "card", "money": "38.7", "coffee_name": "Latte"},
		map[string]string{"date": "45353", "cash_type": "", "money": "28.9", "coffee_name": " Americano "},
	)

	txs, err := ToTransactions(tbl, defaultColumns())
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "card", txs[0].PaymentType)
	assert.Equal(t, "Latte", txs[0].ProductName)
	assert.True(t, decimal.RequireFromString("38.7").Equal(txs[0].Amount))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, 2, txs[0].Row)

	assert.Equal(t, UnknownLabel, txs[1].PaymentType)
	assert.Equal(t, "Americano", txs[1].ProductName)
	assert.Equal(t, "2024-03-02", txs[1].Date.Format("2006-01-02"))
}

func TestToTransactions_CollectsErrors(t *testing.T) {
	headers := []string{"date", "cash_type", "money", "coffee_name"}
	var rows []map[string]string
	for i := 0; i < MaxReportedErrors+5; i++ {
		rows = append(rows, map[string]string{"date": "2024-03-01", "cash_type": "card", "money": fmt.Sprintf("bad%d", i), "coffee_name": "Latte"})
	}
	rows = append(rows, map[string]string{"date": "nope", "cash_type": "card", "money": "1", "coffee_name": "Latte"})

	_, err := ToTransactions(table(headers, rows...), defaultColumns())

	var verr *ValidationErrors
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MaxReportedErrors+6, verr.Total)
	assert.Len(t, verr.Errors, MaxReportedErrors)
	assert.Equal(t, "money", verr.Errors[0].Field)
	assert.Equal(t, 2, verr.Errors[0].Row)
	assert.Contains(t, err.Error(), "and 6 more")
}

func TestToTransactions_SchemaError(t *testing.T) {
	_, err := ToTransactions(table([]string{"money"}), defaultColumns())

	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestToTransactions_DecimalCommaRejected(t *testing.T) {
	tbl := table([]string{"date", "cash_type", "money", "coffee_name"},
		map[string]string{"date": "2024-03-01", "cash_type": "card", "money": "38,70", "coffee_name": "Latte"},
		map[string]string{"date": "2024-03-01", "cash_type": "card", "money": "1,204.50", "coffee_name": "Latte"},
	)

	_, err := ToTransactions(tbl, defaultColumns())

	var verr *ValidationErrors
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, 2, verr.Errors[0].Row)
	assert.Equal(t, "money", verr.Errors[0].Field)
	assert.Equal(t, "38,70", verr.Errors[0].Value)
}
