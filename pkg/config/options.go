package config

import (
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/wbcharts/pkg/indicator"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptAPIBaseURL sets the World Bank API root URL.
func OptAPIBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("API Base URL", s) {
			c.API.BaseURL = strings.TrimRight(s, "/")
		}
	}
}

// OptAPITimeout sets the HTTP request timeout in seconds.
func OptAPITimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("API Timeout", i) {
			c.API.Timeout = i
		}
	}
}

// OptCountries sets the country selection.
// Entries without a name or with a code that is not 3 letters long are
// dropped. An empty selection keeps the current one.
func OptCountries(sel indicator.Selection) Option {
	var res indicator.Selection
	for _, v := range sel {
		country, ok := indicator.ParseCountry(v.Name + "=" + v.ISO3)
		if !ok {
			gn.Warn("Country <em>%s (%s)</em> is not valid, ignoring",
				v.Name, v.ISO3)
			continue
		}
		res = append(res, country)
	}
	return func(c *Config) {
		if len(res) > 0 {
			c.Charts.Countries = res
		}
	}
}

// OptYears sets the inclusive range of queried years.
// Both years must be positive and start must not exceed end.
func OptYears(start, end int) Option {
	return func(c *Config) {
		if !isValidInt("Start Year", start) || !isValidInt("End Year", end) {
			return
		}
		if start > end {
			gn.Warn(
				"Start year <em>%d</em> is after end year <em>%d</em>, ignoring",
				start, end,
			)
			return
		}
		c.Charts.StartYear = start
		c.Charts.EndYear = end
	}
}

// OptFailurePolicy sets what happens when an indicator cannot be fetched.
// Valid values: "empty", "abort".
func OptFailurePolicy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Charts.FailurePolicy", s) {
			c.Charts.FailurePolicy = s
		}
	}
}

// OptWithProgress shows or hides the fetch progress bar.
// Runtime-only field - not in ToOptions().
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.Charts.WithProgress = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the directory config and log paths are based on.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
