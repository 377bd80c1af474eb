// =============================================================================
// Coffee Sales Dashboard - XLSX Sheet Parser
// =============================================================================
//
// This module reads the sales workbook into a RawTable. It does not interpret
// cell values; typing happens in the validation package.
//
// SHEET STRUCTURE (Expected Layout):
//
//   | Row 1   | date       | datetime            | cash_type | money | coffee_name |
//   |---------|------------|---------------------|-----------|-------|-------------|
//   | Row 2   | 2024-03-01 | 2024-03-01 10:15:50 | card      | 38.7  | Latte       |
//   | Row 3   | 2024-03-01 | 2024-03-01 12:19:22 | card      | 38.7  | Hot Chocolate|
//
//   Column order does not matter; extra columns are ignored downstream.
//
// CELL VALUES:
//   Cells are read raw (RawCellValue), so date cells come back as Excel
//   serial numbers ("45352") rather than display strings whose format depends
//   on the workbook locale.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// PARSER OPTIONS
// =============================================================================

// Options controls which part of the workbook is read.
type Options struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string

	// HeaderRow is the 0-based row containing column headers.
	// Default: 0 (Row 1)
	HeaderRow int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ParseWithOptions reads one sheet of an XLSX workbook into a RawTable.
//
// PARAMETERS:
//   - path: The path to the workbook.
//   - opts: Sheet selection and header position.
//
// RETURNS:
//   - The parsed table. A sheet with a header row and no data rows yields a
//     table with zero rows, not an error.
//   - An error if the file cannot be opened or the sheet cannot be read.
//     Open errors wrap the underlying os error, so errors.Is(err,
//     fs.ErrNotExist) works for a missing file.
func ParseWithOptions(path string, opts Options) (*types.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrOpen, err)
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheetName, err)
	}

	return buildTable(path, sheetName, rows, opts.HeaderRow)
}

// resolveSheet returns the sheet to read, checking that a named sheet exists.
func resolveSheet(f *excelize.File, requested string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	if requested == "" {
		return sheets[0], nil
	}

	if !slices.Contains(sheets, requested) {
		return "", fmt.Errorf("sheet %q not found (available: %s)", requested, strings.Join(sheets, ", "))
	}
	return requested, nil
}

// buildTable converts excelize rows into a RawTable.
func buildTable(path, sheet string, rows [][]string, headerRow int) (*types.RawTable, error) {
	if headerRow < 0 || headerRow >= len(rows) {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	headers := CleanHeaders(rows[headerRow])
	table := &types.RawTable{
		SourceFile: path,
		Sheet:      sheet,
		Headers:    headers,
		Rows:       make([]types.RawRow, 0, len(rows)-headerRow-1),
	}

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		// Skip empty rows.
		if IsRowEmpty(row) {
			continue
		}

		table.Rows = append(table.Rows, types.RawRow{
			Number: i + 1,
			Fields: RowToMap(headers, row),
		})
	}

	return table, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================
// These are shared with the CSV parser so both inputs produce identical
// tables for identical content.

// CleanHeaders trims headers and names blank ones Column_<n>. A repeated
// header keeps its first column; later copies become "<name>.1", "<name>.2"
// and so on, so RowToMap never lets one column overwrite another.
func CleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	seen := make(map[string]bool, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		if seen[header] {
			base := header
			for n := 1; seen[header]; n++ {
				header = fmt.Sprintf("%s.%d", base, n)
			}
		}
		seen[header] = true
		cleaned[i] = header
	}

	return cleaned
}

// RowToMap pairs cells with headers. Short rows get empty values.
func RowToMap(headers, row []string) map[string]string {
	fields := make(map[string]string, len(headers))
	for col, header := range headers {
		if col < len(row) {
			fields[header] = strings.TrimSpace(row[col])
		} else {
			fields[header] = ""
		}
	}
	return fields
}

// IsRowEmpty checks if a row contains only empty cells.
func IsRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
