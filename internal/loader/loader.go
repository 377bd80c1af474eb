// =============================================================================
// Coffee Sales Dashboard - Loader
// =============================================================================
//
// The loader reads the sales file into a Dataset. Failures come back as a
// *LoadError carrying a Kind, and the caller decides through a FallbackPolicy
// which kinds are recoverable.
//
// LOAD PIPELINE:
//   1. Pick a parser by extension (.csv -> csvparser, anything else -> xlsx)
//   2. Parse the file into a RawTable
//   3. Validate columns and cells into Transactions
//   4. Wrap them in an immutable Dataset
//
// FALLBACK:
//   A missing or unreadable file is an expected condition: LoadOrFallback
//   substitutes the deterministic synthetic dataset and logs a warning.
//   Schema and cell errors are never recovered.
//
// =============================================================================

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/csvparser"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/validation"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/xlsxparser"
	"go.uber.org/zap"
)

// =============================================================================
// LOAD ERRORS
// =============================================================================

// Kind classifies a load failure.
type Kind int

const (
	// KindNotFound means the input file does not exist.
	KindNotFound Kind = iota + 1

	// KindUnreadable means the file exists but could not be opened or is not
	// a readable spreadsheet.
	KindUnreadable

	// KindSchema means the file was read but its columns or cells are wrong.
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnreadable:
		return "unreadable"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against a *LoadError.
var (
	ErrNotFound   = errors.New("input file not found")
	ErrUnreadable = errors.New("input file unreadable")
	ErrSchema     = errors.New("input file has an invalid schema")
)

// LoadError is returned by Load.
type LoadError struct {
	Path string
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying parser or validation error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches the Kind sentinels.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnreadable:
		return e.Kind == KindUnreadable
	case ErrSchema:
		return e.Kind == KindSchema
	}
	return false
}

// =============================================================================
// FALLBACK POLICY
// =============================================================================

// FallbackPolicy reports whether a load error may be replaced by the
// synthetic dataset.
type FallbackPolicy func(err error) bool

// DefaultFallbackPolicy recovers a missing or unreadable file, never a bad
// schema.
func DefaultFallbackPolicy(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnreadable)
}

// NeverFallback makes every load error fatal.
func NeverFallback(error) bool {
	return false
}

// =============================================================================
// LOADER
// =============================================================================

// Loader reads the sales sheet described by an InputConfig.
type Loader struct {
	input  config.InputConfig
	policy FallbackPolicy
	logger *zap.Logger
}

// Option customises a Loader.
type Option func(*Loader)

// WithFallbackPolicy replaces DefaultFallbackPolicy.
func WithFallbackPolicy(policy FallbackPolicy) Option {
	return func(l *Loader) {
		if policy != nil {
			l.policy = policy
		}
	}
}

// New creates a Loader. A nil logger is replaced by a no-op logger.
func New(input config.InputConfig, logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{
		input:  input,
		policy: DefaultFallbackPolicy,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads path into a Dataset. It never falls back; errors are
// *LoadError values.
func (l *Loader) Load(path string) (*types.Dataset, error) {
	table, err := l.parse(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: classifyParseError(err), Err: err}
	}

	records, err := validation.ToTransactions(table, l.input.Columns)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: KindSchema, Err: err}
	}

	return types.NewDataset(path, records), nil
}

// LoadOrFallback reads path, substituting FallbackDataset when the policy
// accepts the error. Errors the policy rejects are returned unchanged.
func (l *Loader) LoadOrFallback(path string) (*types.Dataset, error) {
	ds, err := l.Load(path)
	if err == nil {
		l.logger.Info("input loaded",
			zap.String("path", path),
			zap.Int("records", ds.Len()),
		)
		return ds, nil
	}

	if !l.policy(err) {
		return nil, err
	}

	l.logger.Warn("input unavailable, using synthetic fallback data",
		zap.String("path", path),
		zap.Error(err),
		zap.Int("records", FallbackSize),
	)
	return FallbackDataset(), nil
}

// parse dispatches on the file extension.
func (l *Loader) parse(path string) (*types.RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return csvparser.Parse(path, csvparser.Settings{Delimiter: l.input.CSVDelimiter})
	default:
		return xlsxparser.ParseWithOptions(path, xlsxparser.Options{Sheet: l.input.Sheet})
	}
}

// classifyParseError maps a parser error to a Kind. Anything that failed
// before the content was reached counts as unreadable.
func classifyParseError(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, types.ErrOpen):
		return KindUnreadable
	default:
		return KindSchema
	}
}
