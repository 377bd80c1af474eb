// =============================================================================
// Coffee Sales Dashboard - CSV Parser Module
// =============================================================================
//
// This module reads a CSV export of the sales sheet into the same RawTable
// shape the XLSX parser produces, so the rest of the pipeline does not care
// which format the shop exported.
//
// FEATURES:
//   - Configurable single-character delimiter (comma, semicolon, tab, pipe)
//   - Lazy quotes and variable field counts, as spreadsheet exports are messy
//   - UTF-8 BOM stripped from the first header
//   - Empty rows skipped
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/xlsxparser"
)

// Settings contains settings for parsing CSV files.
type Settings struct {
	// Delimiter is the field separator. Accepts a single character or one of
	// the names "tab", "pipe", "semicolon".
	// Default: ","
	Delimiter string
}

// Parse reads a CSV file and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - A pointer to the RawTable containing the parsed data.
//   - An error if the file cannot be opened (wrapping types.ErrOpen) or
//     its content cannot be parsed.
func Parse(filePath string, settings Settings) (*types.RawTable, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrOpen, err)
	}
	defer file.Close()

	table, err := ParseReader(bufio.NewReader(file), settings)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath
	return table, nil
}

// ParseReader parses CSV content from any reader.
func ParseReader(r io.Reader, settings Settings) (*types.RawTable, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := xlsxparser.CleanHeaders(allRows[0])
	table := &types.RawTable{
		Headers: headers,
		Rows:    make([]types.RawRow, 0, len(allRows)-1),
	}

	for i := 1; i < len(allRows); i++ {
		if xlsxparser.IsRowEmpty(allRows[i]) {
			continue
		}
		table.Rows = append(table.Rows, types.RawRow{
			Number: i + 1,
			Fields: xlsxparser.RowToMap(headers, allRows[i]),
		})
	}

	return table, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings Settings) {
	switch settings.Delimiter {
	case "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if r := []rune(settings.Delimiter); len(r) > 0 {
			reader.Comma = r[0]
		} else {
			reader.Comma = ','
		}
	}

	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}
