// =============================================================================
// Coffee Sales Dashboard - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. Every setting has a default, so the tool runs with no
// configuration file at all.
//
// CONFIGURATION SOURCES (later wins):
//   1. Built-in defaults (Default())
//   2. config.yaml (optional unless requested explicitly)
//   3. Environment overrides (COFFEE_INPUT_FILE, COFFEE_OUTPUT_FILE,
//      COFFEE_LOG_LEVEL)
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the complete application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Theme   ThemeConfig   `yaml:"theme"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// InputConfig describes where the sales sheet lives and how to read it.
type InputConfig struct {
	// File is the path to the sales spreadsheet (.xlsx or .csv).
	// Default: "Coffe_sales.xlsx"
	File string `yaml:"file"`

	// Sheet is the worksheet to read. Empty means the first sheet.
	Sheet string `yaml:"sheet"`

	// Columns maps the logical fields to the header names in the sheet.
	Columns ColumnSettings `yaml:"columns"`

	// CSVDelimiter is used when the input is a CSV file.
	// Default: ","
	CSVDelimiter string `yaml:"csv_delimiter"`
}

// ColumnSettings names the four columns the loader needs.
// Header matching is case-insensitive.
type ColumnSettings struct {
	Amount      string `yaml:"amount"`
	PaymentType string `yaml:"payment_type"`
	Product     string `yaml:"product"`
	Date        string `yaml:"date"`
}

// Required returns the configured headers in a fixed order.
func (c ColumnSettings) Required() []string {
	return []string{c.Amount, c.PaymentType, c.Product, c.Date}
}

// OutputConfig controls the generated HTML file.
type OutputConfig struct {
	// File is the output path. It may contain placeholders:
	//   {timestamp} - YYYYMMDD_HHMMSS
	//   {date}      - YYYYMMDD
	//   {uuid}      - the run id
	// Default: "dashboard_estatico.html"
	File string `yaml:"file"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "console" or "json".
	// Default: "console"
	Format string `yaml:"format"`
}

// ThemeConfig holds the colours used by the charts and page.
type ThemeConfig struct {
	// Background is the chart paper and plot colour.
	// Default: "rgba(0,0,0,0)" (transparent, the card shows through)
	Background string   `yaml:"background"`
	Page       string   `yaml:"page"`
	Text       string   `yaml:"text"`
	Palette    []string `yaml:"palette"`
	Grid       string   `yaml:"grid"`
	CardStyle  string   `yaml:"card_style"`
}

// LayoutConfig holds sizes, titles and asset URLs.
type LayoutConfig struct {
	PageTitle   string `yaml:"page_title"`
	Heading     string `yaml:"heading"`
	CardHeight  int    `yaml:"card_height"`
	DonutHeight int    `yaml:"donut_height"`
	ChartHeight int    `yaml:"chart_height"`
	PlotlyURL   string `yaml:"plotly_url"`
	StylesURL   string `yaml:"styles_url"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Input.File == "" {
		cfg.Input.File = "Coffe_sales.xlsx"
	}
	if cfg.Input.Columns.Amount == "" {
		cfg.Input.Columns.Amount = "money"
	}
	if cfg.Input.Columns.PaymentType == "" {
		cfg.Input.Columns.PaymentType = "cash_type"
	}
	if cfg.Input.Columns.Product == "" {
		cfg.Input.Columns.Product = "coffee_name"
	}
	if cfg.Input.Columns.Date == "" {
		cfg.Input.Columns.Date = "date"
	}
	if cfg.Input.CSVDelimiter == "" {
		cfg.Input.CSVDelimiter = ","
	}
	if cfg.Output.File == "" {
		cfg.Output.File = "dashboard_estatico.html"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	// Theme defaults.
	if cfg.Theme.Background == "" {
		cfg.Theme.Background = "rgba(0,0,0,0)"
	}
	if cfg.Theme.Page == "" {
		cfg.Theme.Page = "#FDFBF5"
	}
	if cfg.Theme.Text == "" {
		cfg.Theme.Text = "#2A140D"
	}
	if len(cfg.Theme.Palette) == 0 {
		cfg.Theme.Palette = []string{"#D2B48C", "#2A140D"}
	}
	if cfg.Theme.Grid == "" {
		cfg.Theme.Grid = "#eee"
	}
	if cfg.Theme.CardStyle == "" {
		cfg.Theme.CardStyle = "border: 1px solid #EAEAEA; border-radius: 8px; padding: 1rem; " +
			"background-color: #FFFFFF; box-shadow: 0 2px 4px rgba(0,0,0,0.05);"
	}

	// Layout defaults.
	if cfg.Layout.PageTitle == "" {
		cfg.Layout.PageTitle = "Coffee Sales Dashboard"
	}
	if cfg.Layout.Heading == "" {
		cfg.Layout.Heading = "COFFEE SHOP SALES"
	}
	if cfg.Layout.CardHeight == 0 {
		cfg.Layout.CardHeight = 350
	}
	if cfg.Layout.DonutHeight == 0 {
		cfg.Layout.DonutHeight = 350
	}
	if cfg.Layout.ChartHeight == 0 {
		cfg.Layout.ChartHeight = 450
	}
	if cfg.Layout.PlotlyURL == "" {
		cfg.Layout.PlotlyURL = "https://cdn.plot.ly/plotly-2.32.0.min.js"
	}
	if cfg.Layout.StylesURL == "" {
		cfg.Layout.StylesURL = "https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css"
	}
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults instead of an
//     error. The CLI passes true only when --config was given explicitly.
//
// RETURNS:
//   - A pointer to the Config struct with defaults and env overrides applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, required bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		// No file: run on defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides lets the environment replace a few common settings.
func applyEnvOverrides(cfg *Config) {
	cfg.Input.File = getEnvString("COFFEE_INPUT_FILE", cfg.Input.File)
	cfg.Output.File = getEnvString("COFFEE_OUTPUT_FILE", cfg.Output.File)
	cfg.Logging.Level = getEnvString("COFFEE_LOG_LEVEL", cfg.Logging.Level)
}

func getEnvString(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, col := range c.Input.Columns.Required() {
		key := strings.ToLower(strings.TrimSpace(col))
		if key == "" {
			return fmt.Errorf("input column names must not be empty")
		}
		if seen[key] {
			return fmt.Errorf("input column %q is mapped more than once", col)
		}
		seen[key] = true
	}

	switch strings.ToLower(c.Input.CSVDelimiter) {
	case "tab", "pipe", "semicolon", "\\t":
	default:
		if len([]rune(c.Input.CSVDelimiter)) != 1 {
			return fmt.Errorf("csv_delimiter must be a single character, got %q", c.Input.CSVDelimiter)
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	if c.Layout.CardHeight < 0 || c.Layout.DonutHeight < 0 || c.Layout.ChartHeight < 0 {
		return fmt.Errorf("chart heights must be positive")
	}

	return nil
}
