package xlsxparser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseWithOptions(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{" money ", "", "cash_type", "coffee_name"},
		{38.7, "x", "card", "Latte"},
		{},
		{28.9, "", "cash", "Americano"},
		{30},
	})

	table, err := ParseWithOptions(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, path, table.SourceFile)
	assert.Equal(t, "Sheet1", table.Sheet)
	assert.Equal(t, []string{"money", "Column_2", "cash_type", "coffee_name"}, table.Headers)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, 2, table.Rows[0].Number)
	assert.Equal(t, "38.7", table.Rows[0].Fields["money"])
	assert.Equal(t, "Latte", table.Rows[0].Fields["coffee_name"])

	assert.Equal(t, 4, table.Rows[1].Number)
	assert.Equal(t, "Americano", table.Rows[1].Fields["coffee_name"])

	// Short rows are padded with empty values.
	assert.Equal(t, 5, table.Rows[2].Number)
	assert.Equal(t, "", table.Rows[2].Fields["coffee_name"])
}

func TestParseWithOptions_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Sales", [][]any{
		{"money"},
		{10},
	})

	table, err := ParseWithOptions(path, Options{Sheet: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, "Sales", table.Sheet)
	assert.Len(t, table.Rows, 1)

	_, err = ParseWithOptions(path, Options{Sheet: "Missing"})
	assert.ErrorContains(t, err, `sheet "Missing" not found`)
}

func TestParseWithOptions_HeaderOnly(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{{"money", "date"}})

	table, err := ParseWithOptions(path, Options{})
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestParseWithOptions_EmptySheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", nil)

	_, err := ParseWithOptions(path, Options{})
	assert.ErrorContains(t, err, "no header row")
	assert.False(t, errors.Is(err, types.ErrOpen))
}

func TestParseWithOptions_OpenErrors(t *testing.T) {
	_, err := ParseWithOptions(filepath.Join(t.TempDir(), "missing.xlsx"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrOpen)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a zip"), 0o644))
	_, err = ParseWithOptions(garbage, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrOpen)
}

func TestIsRowEmpty(t *testing.T) {
	assert.True(t, IsRowEmpty(nil))
	assert.True(t, IsRowEmpty([]string{"", "  "}))
	assert.False(t, IsRowEmpty([]string{"", "x"}))
}

func TestParseWithOptions_DuplicateHeaders(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"money", "cash_type", "money", "money"},
		{38.7, "card", 99, 2},
	})

	table, err := ParseWithOptions(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"money", "cash_type", "money.1", "money.2"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "38.7", table.Rows[0].Fields["money"])
	assert.Equal(t, "99", table.Rows[0].Fields["money.1"])
	assert.Equal(t, "2", table.Rows[0].Fields["money.2"])
}

func TestCleanHeaders(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"trims and names blanks", []string{"\ufeff date ", "", "money"}, []string{"date", "Column_2", "money"}},
		{"suffixes repeats", []string{"date", "date", "date"}, []string{"date", "date.1", "date.2"}},
		{"case-sensitive", []string{"Date", "date"}, []string{"Date", "date"}},
		{"skips taken suffix", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanHeaders(tt.in))
		})
	}
}
