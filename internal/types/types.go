// =============================================================================
// Coffee Sales Dashboard - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - xlsxparser / csvparser (RawTable)
//   - validation (RawTable -> Transaction)
//   - loader, aggregator, report (Dataset)
//
// =============================================================================

package types

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RAW TABLE
// =============================================================================

// ErrOpen marks parser errors raised while opening the input file, as opposed
// to errors found in its content. The underlying os error is wrapped as well.
var ErrOpen = errors.New("failed to open input file")

// RawTable is a parsed input sheet before any typing is applied.
// Both the XLSX and the CSV parser produce this shape.
type RawTable struct {
	// SourceFile is the path to the file the table was read from.
	SourceFile string

	// Sheet is the worksheet name. Empty for CSV input.
	Sheet string

	// Headers contains the cleaned column headers, in file order.
	Headers []string

	// Rows contains the data rows, in file order.
	Rows []RawRow
}

// RawRow is a single data row keyed by header.
type RawRow struct {
	// Number is the 1-based row number in the source file.
	// Useful for error reporting.
	Number int

	// Fields maps header -> cell value (trimmed).
	Fields map[string]string
}

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// Transaction is one sale from the input sheet.
type Transaction struct {
	// Amount is the money paid. Non-negative amounts are assumed, not enforced.
	Amount decimal.Decimal

	// PaymentType is the payment method, e.g. "card" or "cash".
	PaymentType string

	// ProductName is the product sold, e.g. "Latte".
	ProductName string

	// Date is the calendar date of the sale.
	Date time.Time

	// Row is the source row number, 0 for synthetic records.
	Row int
}

// Dataset is the immutable table of transactions for one run.
type Dataset struct {
	// Source is the input path, or FallbackSource for synthetic data.
	Source string

	// Fallback is true when the records were generated instead of loaded.
	Fallback bool

	records []Transaction
}

// FallbackSource is the Source of a synthetic dataset.
const FallbackSource = "fallback"

// NewDataset copies records into a new Dataset.
func NewDataset(source string, records []Transaction) *Dataset {
	owned := make([]Transaction, len(records))
	copy(owned, records)
	return &Dataset{Source: source, records: owned}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// IsEmpty reports whether the dataset holds no records.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Records returns a copy of the records so callers cannot mutate the dataset.
func (d *Dataset) Records() []Transaction {
	if d == nil {
		return nil
	}
	out := make([]Transaction, len(d.records))
	copy(out, d.records)
	return out
}

// Each calls fn for every record in order without copying the slice.
func (d *Dataset) Each(fn func(Transaction)) {
	if d == nil {
		return
	}
	for _, tx := range d.records {
		fn(tx)
	}
}
