// Package config provides configuration management for wbcharts.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - API: base_url, timeout
//   - Charts: countries, start_year, end_year, failure_policy
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Charts.WithProgress
//   - HomeDir (set once at startup)
//
// # Country Selection
//
// An empty list of countries is not an error: the default selection of
// ten countries stays in place. This is the only merge rule for
// countries, a non-empty list replaces the default completely.
//
// # Environment Variables
//
// Use WBCHARTS_ prefix with underscores for nesting:
//
//	WBCHARTS_API_BASE_URL=http://api.worldbank.org/v2
//	WBCHARTS_CHARTS_END_YEAR=2014
//	WBCHARTS_LOG_LEVEL=info
package config

import (
	"github.com/gnames/wbcharts/pkg/indicator"
)

const (
	// PolicyEmpty turns a failed indicator into an empty table.
	PolicyEmpty = "empty"

	// PolicyAbort stops the pipeline on the first failed indicator.
	PolicyAbort = "abort"
)

// Config represents the complete wbcharts configuration.
type Config struct {
	// API contains settings of the World Bank API client.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Charts contains settings of the dashboard figures.
	Charts ChartsConfig `mapstructure:"charts" yaml:"charts"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// APIConfig contains World Bank API connection settings.
type APIConfig struct {
	// BaseURL is the API root, query paths are appended to it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Timeout is the HTTP request timeout in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// ChartsConfig contains settings of the produced figures.
type ChartsConfig struct {
	// Countries is the ordered country selection used in API queries.
	Countries indicator.Selection `mapstructure:"countries" yaml:"countries"`

	// StartYear is the first year of queried data.
	StartYear int `mapstructure:"start_year" yaml:"start_year"`

	// EndYear is the last year of queried data. Bar charts show this year.
	EndYear int `mapstructure:"end_year" yaml:"end_year"`

	// FailurePolicy decides what happens when an indicator cannot be
	// fetched. Valid values: "empty", "abort".
	FailurePolicy string `mapstructure:"failure_policy" yaml:"failure_policy"`

	// WithProgress shows a progress bar while indicators are fetched.
	WithProgress bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		API: APIConfig{
			BaseURL: "http://api.worldbank.org/v2",
			Timeout: 60,
		},
		Charts: ChartsConfig{
			Countries:     indicator.DefaultSelection(),
			StartYear:     1990,
			EndYear:       2014,
			FailurePolicy: PolicyEmpty,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
