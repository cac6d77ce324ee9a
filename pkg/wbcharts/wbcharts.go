// Package wbcharts defines the interfaces of the World Bank dashboard
// pipeline: fetching indicators and turning them into figures.
package wbcharts

import (
	"context"

	"github.com/gnames/wbcharts/pkg/chart"
	"github.com/gnames/wbcharts/pkg/indicator"
)

var (
	// Version of wbcharts, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)

// Result is the outcome of fetching one indicator.
// Exactly one of Records and Err is meaningful: when Err is not nil,
// Records is empty and must not be used.
type Result struct {
	Code    indicator.Code
	Records []indicator.Observation
	Err     error
}

// Fetcher retrieves indicator observations from the statistics API.
type Fetcher interface {
	// Fetch requests every indicator sequentially, in the given order.
	// It returns one Result per indicator in the same order. A failed
	// indicator does not stop the remaining requests.
	Fetch(
		ctx context.Context,
		countries indicator.Selection,
		codes []indicator.Code,
		startYear, endYear int,
	) []Result

	// URL returns the query URL used for an indicator.
	URL(
		countries indicator.Selection,
		code indicator.Code,
		startYear, endYear int,
	) string
}

// Dashboard produces the figures of the dashboard.
type Dashboard interface {
	// Figures fetches all indicators and builds the eight figures.
	// Every call fetches the data anew.
	Figures(ctx context.Context) ([]chart.Figure, error)

	// URLs returns the query URLs Figures would request.
	URLs() []string
}
