// =============================================================================
// Coffee Sales Dashboard - Validation Engine
// =============================================================================
//
// This module turns a RawTable into typed Transactions. It checks:
//   - Schema: every required column is present (case-insensitive match)
//   - Amount: the money cell is a decimal number (a "$" prefix and thousands
//     separators are tolerated)
//   - Date: the date cell is an Excel serial number or one of the supported
//     text layouts
//
// ERROR HANDLING:
//   - A missing column is reported once as a *SchemaError.
//   - Cell errors are collected, not thrown immediately, so one run reports
//     every bad row (up to MaxReportedErrors) as ValidationErrors.
//   - Both are fatal to the run: the loader never falls back on bad data.
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// MaxReportedErrors caps the cell errors carried by ValidationErrors.
const MaxReportedErrors = 20

// thousandsGrouped matches a number whose integer part is split into
// comma-separated groups of three digits, e.g. "1,204.50".
var thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// UnknownLabel replaces a blank payment type or product name.
const UnknownLabel = "unknown"

// maxExcelSerial is the serial number of 9999-12-31, the last Excel date.
const maxExcelSerial = 2958465

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// SchemaError reports required columns missing from the input.
type SchemaError struct {
	Source    string
	Missing   []string
	Available []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column(s) %s (found: %s)",
		e.Source,
		strings.Join(e.Missing, ", "),
		strings.Join(e.Available, ", "),
	)
}

// ValidationError represents a single bad cell.
type ValidationError struct {
	// Row is the 1-based row number in the source file.
	Row int

	// Field is the header of the offending column.
	Field string

	// Value is the raw cell value.
	Value string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d, field '%s': %s (value: '%s')", e.Row, e.Field, e.Message, e.Value)
}

// ValidationErrors is the list of cell errors found in one table.
type ValidationErrors struct {
	Source string
	Errors []*ValidationError

	// Total counts every bad cell, including those beyond MaxReportedErrors.
	Total int
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d invalid value(s)", e.Source, e.Total)
	for _, ve := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(ve.Error())
	}
	if e.Total > len(e.Errors) {
		fmt.Fprintf(&b, "\n  ... and %d more", e.Total-len(e.Errors))
	}
	return b.String()
}

func (e *ValidationErrors) add(ve *ValidationError) {
	e.Total++
	if len(e.Errors) < MaxReportedErrors {
		e.Errors = append(e.Errors, ve)
	}
}

// =============================================================================
// SCHEMA CHECK
// =============================================================================

// ColumnIndex maps each logical column to the actual header in the table.
type ColumnIndex struct {
	Amount      string
	PaymentType string
	Product     string
	Date        string
}

// CheckColumns resolves the configured columns against the table headers.
//
// PARAMETERS:
//   - table: The parsed input.
//   - columns: The configured header names.
//
// RETURNS:
//   - The resolved headers, using the spelling found in the file.
//   - A *SchemaError if any column is missing.
func CheckColumns(table *types.RawTable, columns config.ColumnSettings) (ColumnIndex, error) {
	byKey := make(map[string]string, len(table.Headers))
	for _, h := range table.Headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := byKey[key]; !dup {
			byKey[key] = h
		}
	}

	var missing []string
	resolve := func(want string) string {
		got, ok := byKey[strings.ToLower(strings.TrimSpace(want))]
		if !ok {
			missing = append(missing, want)
		}
		return got
	}

	idx := ColumnIndex{
		Amount:      resolve(columns.Amount),
		PaymentType: resolve(columns.PaymentType),
		Product:     resolve(columns.Product),
		Date:        resolve(columns.Date),
	}

	if len(missing) > 0 {
		return ColumnIndex{}, &SchemaError{
			Source:    table.SourceFile,
			Missing:   missing,
			Available: table.Headers,
		}
	}
	return idx, nil
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// ToTransactions validates every row and converts it to a Transaction.
//
// RETURNS:
//   - The transactions in file order.
//   - A *SchemaError or *ValidationErrors on failure.
func ToTransactions(table *types.RawTable, columns config.ColumnSettings) ([]types.Transaction, error) {
	idx, err := CheckColumns(table, columns)
	if err != nil {
		return nil, err
	}

	out := make([]types.Transaction, 0, len(table.Rows))
	problems := &ValidationErrors{Source: table.SourceFile}

	for _, row := range table.Rows {
		tx := types.Transaction{
			PaymentType: labelOrUnknown(row.Fields[idx.PaymentType]),
			ProductName: labelOrUnknown(row.Fields[idx.Product]),
			Row:         row.Number,
		}

		amount, err := ParseAmount(row.Fields[idx.Amount])
		if err != nil {
			problems.add(&ValidationError{Row: row.Number, Field: idx.Amount, Value: row.Fields[idx.Amount], Message: err.Error()})
		}
		tx.Amount = amount

		date, err := ParseDate(row.Fields[idx.Date])
		if err != nil {
			problems.add(&ValidationError{Row: row.Number, Field: idx.Date, Value: row.Fields[idx.Date], Message: err.Error()})
		}
		tx.Date = date

		out = append(out, tx)
	}

	if problems.Total > 0 {
		return nil, problems
	}
	return out, nil
}

func labelOrUnknown(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return UnknownLabel
	}
	return value
}

// =============================================================================
// FIELD PARSERS
// =============================================================================

// ParseAmount parses a money cell such as "38.7", "$1,204.50" or "40".
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	// Commas are only thousands separators: "38,70" and "1,2,3" are errors.
	if strings.Contains(cleaned, ",") {
		if !thousandsGrouped.MatchString(cleaned) {
			return decimal.Zero, fmt.Errorf("commas must separate groups of three digits")
		}
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a valid decimal number")
	}
	return amount, nil
}

// dateLayouts are tried in order for text date cells.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"20060102",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a date cell. Numeric values are read as Excel serial
// dates (1900 date system); text values are matched against dateLayouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 && serial <= maxExcelSerial {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("not a valid Excel date: %w", err)
		}
		return t, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("not a valid date")
}
