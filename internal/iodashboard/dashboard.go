// Package iodashboard implements the Dashboard interface. It fetches the
// indicators, applies the failure policy and builds the figures.
package iodashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wbcharts/pkg/chart"
	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/gnames/wbcharts/pkg/table"
	"github.com/gnames/wbcharts/pkg/wbcharts"
)

type dashboard struct {
	cfg     *config.Config
	fetcher wbcharts.Fetcher
}

// New creates a Dashboard that gets its data from the given fetcher.
func New(cfg *config.Config, fetcher wbcharts.Fetcher) wbcharts.Dashboard {
	return &dashboard{cfg: cfg, fetcher: fetcher}
}

func (d *dashboard) Figures(ctx context.Context) ([]chart.Figure, error) {
	if err := ctx.Err(); err != nil {
		return nil, CancelledError(err)
	}

	start := time.Now()
	sel := d.cfg.Charts.Countries.OrDefault()
	startYear, endYear := d.cfg.Charts.StartYear, d.cfg.Charts.EndYear

	slog.Info("Producing figures",
		"countries", len(sel),
		"start_year", startYear,
		"end_year", endYear,
	)

	results := d.fetcher.Fetch(ctx, sel, indicator.All(), startYear, endYear)

	if err := ctx.Err(); err != nil {
		return nil, CancelledError(err)
	}

	tt, err := d.tables(results)
	if err != nil {
		return nil, err
	}

	countries := chart.CountryOrdering(tt, sel.Names())
	figs, stats := chart.Build(tt, countries, endYear)

	if stats.SkippedRatios > 0 {
		slog.Warn("Skipped CO2 over forest area values",
			"skipped", stats.SkippedRatios,
			"reason", "missing value or zero forest area",
		)
	}

	slog.Info("Figures are ready",
		"figures", len(figs),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return figs, nil
}

// tables converts fetch results to indicator tables according to the
// failure policy.
func (d *dashboard) tables(results []wbcharts.Result) (chart.Tables, error) {
	var res chart.Tables
	var failed []indicator.Code
	var firstErr error

	for _, r := range results {
		t := table.Empty()
		if r.Err != nil {
			failed = append(failed, r.Code)
			if firstErr == nil {
				firstErr = r.Err
			}
		} else {
			t = table.New(r.Records)
			if err := t.Err(); err != nil {
				return res, TableError(r.Code, err)
			}
		}
		res.Set(r.Code, t)
	}

	if len(results) > 0 && len(failed) == len(results) {
		return res, AllIndicatorsFailedError(failed, firstErr)
	}

	if len(failed) == 0 {
		return res, nil
	}

	if d.cfg.Charts.FailurePolicy == config.PolicyAbort {
		return res, IndicatorFailedError(failed[0], firstErr)
	}

	for _, code := range failed {
		gn.Warn("Indicator <em>%s</em> is not available, its figures are empty",
			code)
	}
	return res, nil
}

func (d *dashboard) URLs() []string {
	sel := d.cfg.Charts.Countries.OrDefault()
	codes := indicator.All()
	res := make([]string, len(codes))
	for i, code := range codes {
		res[i] = d.fetcher.URL(
			sel, code, d.cfg.Charts.StartYear, d.cfg.Charts.EndYear,
		)
	}
	return res
}
