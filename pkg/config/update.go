package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, WithProgress).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.API.BaseURL
	if s != "" {
		res = append(res, OptAPIBaseURL(s))
	}
	i = c.API.Timeout
	if i > 0 {
		res = append(res, OptAPITimeout(i))
	}

	if len(c.Charts.Countries) > 0 {
		res = append(res, OptCountries(c.Charts.Countries))
	}
	if c.Charts.StartYear > 0 || c.Charts.EndYear > 0 {
		start, end := c.Charts.StartYear, c.Charts.EndYear
		def := New()
		if start == 0 {
			start = def.Charts.StartYear
		}
		if end == 0 {
			end = def.Charts.EndYear
		}
		res = append(res, OptYears(start, end))
	}
	s = c.Charts.FailurePolicy
	if s != "" {
		res = append(res, OptFailurePolicy(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidURL(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	res := strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	if !res {
		gn.Warn("<em>%s</em> must start with http:// or https://, ignoring %s",
			name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Charts.FailurePolicy": {PolicyEmpty: s, PolicyAbort: s},
		"Log.Level":            {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":           {"json": s, "text": s, "tint": s},
		"Log.Destination":      {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
