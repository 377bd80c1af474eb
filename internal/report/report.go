// =============================================================================
// Coffee Sales Dashboard - Report Module
// =============================================================================
//
// This module orchestrates one dashboard run, from loading the sales file to
// writing the static HTML page.
//
// PIPELINE:
//   1. Load the input file (or the synthetic fallback dataset)
//   2. Compute the aggregate views
//   3. Compose the chart specifications
//   4. Render the HTML document
//   5. Write the output file
//
// Every log line of a run carries its run id.
//
// =============================================================================

package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/aggregator"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/config"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/htmlwriter"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/loader"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/presenter"
	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/ginjaninja78/coffee-sales-dashboard/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one run.
type Result struct {
	// InputFile is the configured input path, even when the fallback was used.
	InputFile string

	// OutputFile is the path of the written page.
	OutputFile string

	// UsedFallback is true when the synthetic dataset replaced the input.
	UsedFallback bool

	// RunID identifies the run in logs and in the page's report-id meta tag.
	RunID string

	// Stats contains run statistics.
	Stats Stats
}

// Stats contains statistics about a run.
type Stats struct {
	// Records is the number of transactions aggregated.
	Records int

	// Bytes is the size of the written page on disk.
	Bytes int64

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Summary is the outcome of a run that stops after aggregation.
type Summary struct {
	InputFile    string
	UsedFallback bool
	RunID        string
	Views        aggregator.Views
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator runs the dashboard pipeline for one configuration.
type Generator struct {
	cfg    *config.Config
	logger *zap.Logger

	loaderOpts []loader.Option
	now        func() time.Time
	newID      func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithFallbackPolicy overrides which load errors fall back to synthetic data.
func WithFallbackPolicy(policy loader.FallbackPolicy) Option {
	return func(g *Generator) {
		g.loaderOpts = append(g.loaderOpts, loader.WithFallbackPolicy(policy))
	}
}

// WithClock sets the clock used for output name placeholders and timing.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRunID fixes the run id instead of generating a UUID.
func WithRunID(id string) Option {
	return func(g *Generator) {
		g.newID = func() string { return id }
	}
}

// New creates a new Generator.
//
// PARAMETERS:
//   - cfg: The validated configuration.
//   - logger: The base logger; nil disables logging.
//   - opts: Optional overrides.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Generator{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// =============================================================================
// MAIN PROCESSING FUNCTIONS
// =============================================================================

// Run executes the full pipeline and writes the page.
//
// RETURNS:
//   - A Result describing the run.
//   - An error if loading (other than a recoverable fallback), rendering or
//     writing fails, or if ctx is cancelled between steps.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	start := g.now()
	runID := g.newID()
	log := g.logger.With(zap.String("run_id", runID))

	result := Result{
		InputFile: g.cfg.Input.File,
		RunID:     runID,
	}

	log.Info("generating static dashboard",
		zap.String("input", g.cfg.Input.File),
		zap.String("output", g.cfg.Output.File))

	// =========================================================================
	// STEP 1-2: LOAD AND AGGREGATE
	// =========================================================================

	ds, views, err := g.aggregate(ctx, log)
	if err != nil {
		return result, err
	}
	result.UsedFallback = ds.Fallback
	result.Stats.Records = ds.Len()

	// =========================================================================
	// STEP 3-4: PRESENT AND RENDER
	// =========================================================================

	page := presenter.New(g.cfg.Theme, g.cfg.Layout).Dashboard(views)

	options := htmlwriter.OptionsFromConfig(g.cfg)
	options.ReportID = runID

	html, err := htmlwriter.GenerateWithOptions(ctx, page, options)
	if err != nil {
		return result, err
	}
	log.Debug("rendered dashboard", zap.Int("charts", len(page.Charts())))

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// =========================================================================
	// STEP 5: WRITE OUTPUT FILE
	// =========================================================================

	outputPath := utils.GenerateOutputFileName(g.cfg.Output.File, runID, start)
	replaced := utils.FileExists(outputPath)
	if err := utils.WriteOutputFile(outputPath, html); err != nil {
		return result, err
	}

	size, err := utils.GetFileSize(outputPath)
	if err != nil {
		return result, fmt.Errorf("failed to stat output file: %w", err)
	}

	result.OutputFile = outputPath
	result.Stats.Bytes = size
	result.Stats.Duration = g.now().Sub(start)

	log.Info("static dashboard written",
		zap.String("output", outputPath),
		zap.Int64("bytes", size),
		zap.Bool("replaced", replaced),
		zap.Int("records", result.Stats.Records),
		zap.Bool("fallback", result.UsedFallback),
		zap.Duration("duration", result.Stats.Duration))

	return result, nil
}

// Summarize loads and aggregates the input without rendering a page.
func (g *Generator) Summarize(ctx context.Context) (Summary, error) {
	runID := g.newID()
	log := g.logger.With(zap.String("run_id", runID))

	ds, views, err := g.aggregate(ctx, log)
	if err != nil {
		return Summary{InputFile: g.cfg.Input.File, RunID: runID}, err
	}

	return Summary{
		InputFile:    g.cfg.Input.File,
		UsedFallback: ds.Fallback,
		RunID:        runID,
		Views:        views,
	}, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func (g *Generator) aggregate(ctx context.Context, log *zap.Logger) (*types.Dataset, aggregator.Views, error) {
	if err := ctx.Err(); err != nil {
		return nil, aggregator.Views{}, err
	}

	l := loader.New(g.cfg.Input, log, g.loaderOpts...)
	ds, err := l.LoadOrFallback(g.cfg.Input.File)
	if err != nil {
		log.Error("failed to load input", zap.String("path", g.cfg.Input.File), zap.Error(err))
		return nil, aggregator.Views{}, fmt.Errorf("failed to load sales data: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, aggregator.Views{}, err
	}

	views := aggregator.Compute(ds)
	log.Debug("computed views",
		zap.String("total_sales", views.TotalSales.StringFixed(2)),
		zap.Int("transactions", views.TransactionCount))

	return ds, views, nil
}
