// Package iofetch implements the Fetcher interface for the World Bank
// indicators API.
// This is an impure I/O package: it performs HTTP requests.
package iofetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/gnames/wbcharts/pkg/wbcharts"
)

// fetcher implements the Fetcher interface.
type fetcher struct {
	baseURL      string
	client       *http.Client
	withProgress bool
	enc          gnfmt.GNjson
}

// New creates a Fetcher that uses API settings from the config.
func New(cfg *config.Config) wbcharts.Fetcher {
	return &fetcher{
		baseURL: cfg.API.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.API.Timeout) * time.Second,
		},
		withProgress: cfg.Charts.WithProgress,
	}
}

func (f *fetcher) URL(
	countries indicator.Selection,
	code indicator.Code,
	startYear, endYear int,
) string {
	q := indicator.Query{
		BaseURL:   f.baseURL,
		Countries: countries,
		Code:      code,
		StartYear: startYear,
		EndYear:   endYear,
	}
	return q.URL()
}

func (f *fetcher) Fetch(
	ctx context.Context,
	countries indicator.Selection,
	codes []indicator.Code,
	startYear, endYear int,
) []wbcharts.Result {
	var bar *pb.ProgressBar
	if f.withProgress {
		bar = newProgressBar(len(codes), "Fetching indicators: ")
		defer bar.Finish()
	}

	res := make([]wbcharts.Result, 0, len(codes))
	for _, code := range codes {
		url := f.URL(countries, code, startYear, endYear)
		start := time.Now()

		records, err := f.fetchOne(ctx, code, url)
		if bar != nil {
			bar.Increment()
		}
		if err != nil {
			slog.Error("Could not load indicator",
				"indicator", code,
				"url", url,
				"error", err,
			)
			res = append(res, wbcharts.Result{Code: code, Err: err})
			continue
		}

		slog.Info("Fetched indicator",
			"indicator", code,
			"records", humanize.Comma(int64(len(records))),
			"duration", gnfmt.TimeString(time.Since(start).Seconds()),
		)
		res = append(res, wbcharts.Result{Code: code, Records: records})
	}
	return res
}

func (f *fetcher) fetchOne(
	ctx context.Context,
	code indicator.Code,
	url string,
) ([]indicator.Observation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, RequestError(code, url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, RequestError(code, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError(code, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(code, url, err)
	}

	page, err := f.decode(code, url, body)
	if err != nil {
		return nil, err
	}

	if page.meta.Pages > 1 {
		slog.Warn("Indicator data truncated to the first page",
			"indicator", code,
			"pages", page.meta.Pages,
			"total", page.meta.Total,
			"per_page", indicator.PerPage,
		)
	}

	return page.observations(code, url)
}

// newProgressBar creates a new progress bar with consistent
// settings.
func newProgressBar(
	total int,
	prefix string,
) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
