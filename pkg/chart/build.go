package chart

import (
	"fmt"

	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/gnames/wbcharts/pkg/table"
)

// Tables holds the indicator tables figures are built from.
// Nil tables are treated as empty.
type Tables struct {
	Renewable     *table.Table
	CO2PerCapita  *table.Table
	CO2Total      *table.Table
	ForestArea    *table.Table
	ResourceRents *table.Table
}

// Set assigns the table of an indicator. Unknown codes are ignored.
func (tt *Tables) Set(code indicator.Code, t *table.Table) {
	switch code {
	case indicator.Renewable:
		tt.Renewable = t
	case indicator.CO2PerCapita:
		tt.CO2PerCapita = t
	case indicator.CO2Total:
		tt.CO2Total = t
	case indicator.ForestArea:
		tt.ForestArea = t
	case indicator.ResourceRents:
		tt.ResourceRents = t
	}
}

// Stats reports data dropped while building figures.
type Stats struct {
	// SkippedRatios is the number of (country, year) pairs left out of the
	// CO2 over forest area figure because of a missing value or a zero
	// forest area.
	SkippedRatios int
}

// Build creates the eight dashboard figures. Countries define the order
// of series in every multi-series figure, endYear selects the rows of the
// bar figures.
func Build(tt Tables, countries []string, endYear int) ([]Figure, Stats) {
	tt = tt.withDefaults()
	var stats Stats

	res := make([]Figure, SlotsNum)

	res[CO2PerCapitaLine] = newFigure(
		CO2PerCapitaLine,
		lineTraces(tt.CO2PerCapita, countries),
		yearLayout("CO2 emissions per capita", "Metric tons"),
	)

	res[CO2PerCapitaBar] = newFigure(
		CO2PerCapitaBar,
		[]Trace{barTrace(tt.CO2PerCapita, endYear, true)},
		countryLayout(
			fmt.Sprintf("CO2 emissions per capita in %d", endYear),
			"metric tons",
		),
	)

	res[CO2VsForestScatter] = newFigure(
		CO2VsForestScatter,
		scatterTraces(tt.CO2Total.InnerJoin(tt.ForestArea), countries),
		Layout{
			Title: "CO2 emission VS forestal area",
			XAxis: logAxis("CO2 emission (kt)"),
			YAxis: logAxis("Forestal area (sq. km)"),
		},
	)

	ratio, skipped := table.Ratio(tt.CO2Total, tt.ForestArea, countries)
	stats.SkippedRatios = skipped
	res[CO2OverForestBar] = newFigure(
		CO2OverForestBar,
		[]Trace{barTrace(ratio, endYear, true)},
		countryLayout(
			fmt.Sprintf(
				"CO2 emissions (kt) over Forestal area (sq. km) in %d", endYear,
			),
			"kt CO2 / km2 forestal area",
		),
	)

	renewableAxis := "% of total final energy consumption"
	res[RenewableLine] = newFigure(
		RenewableLine,
		lineTraces(tt.Renewable, countries),
		yearLayout("Renewable energy consumption", renewableAxis),
	)

	res[RenewableBar] = newFigure(
		RenewableBar,
		[]Trace{barTrace(tt.Renewable, endYear, false)},
		countryLayout(
			fmt.Sprintf("Renewable energy consumption in %d", endYear),
			renewableAxis,
		),
	)

	res[ResourceRentsLine] = newFigure(
		ResourceRentsLine,
		lineTraces(tt.ResourceRents, countries),
		yearLayout("Total natural resources rents", "% of GDP"),
	)

	res[ResourceRentsBar] = newFigure(
		ResourceRentsBar,
		[]Trace{barTrace(tt.ResourceRents, endYear, true)},
		countryLayout(
			fmt.Sprintf("Total natural resources rents in %d", endYear),
			"% of GDP",
		),
	)

	return res, stats
}

func (tt Tables) withDefaults() Tables {
	for _, t := range []**table.Table{
		&tt.Renewable, &tt.CO2PerCapita, &tt.CO2Total,
		&tt.ForestArea, &tt.ResourceRents,
	} {
		if *t == nil {
			*t = table.Empty()
		}
	}
	return tt
}

// lineTraces makes one line per country, years ascending.
func lineTraces(t *table.Table, countries []string) []Trace {
	sorted := t.SortByDate(true)
	res := make([]Trace, 0, len(countries))
	for _, country := range countries {
		x, y := []any{}, []any{}
		for _, row := range sorted.FilterCountry(country).Rows() {
			x = append(x, row.Date)
			y = append(y, value(row.Value))
		}
		res = append(res, Trace{
			Type: traceScatter,
			Mode: modeLines,
			Name: country,
			X:    x,
			Y:    y,
		})
	}
	return res
}

// barTrace makes a single bar series of endYear values by country.
func barTrace(t *table.Table, endYear int, ascending bool) Trace {
	x, y := []any{}, []any{}
	for _, row := range t.SortByValue(ascending).FilterDate(endYear).Rows() {
		x = append(x, row.Country)
		y = append(y, value(row.Value))
	}
	return Trace{Type: traceBar, X: x, Y: y}
}

// scatterTraces plots the left joined value against the right one,
// one series per country with "{country} {year}" hover labels.
func scatterTraces(j *table.Joined, countries []string) []Trace {
	sorted := j.SortByDate(true)
	res := make([]Trace, 0, len(countries))
	for _, country := range countries {
		x, y := []any{}, []any{}
		var text []string
		for _, row := range sorted.FilterCountry(country).Rows() {
			x = append(x, value(row.Left))
			y = append(y, value(row.Right))
			text = append(text, fmt.Sprintf("%s %d", row.Country, row.Date))
		}
		res = append(res, Trace{
			Type: traceScatter,
			Mode: modeLinesMarkers,
			Name: country,
			X:    x,
			Y:    y,
			Text: text,
		})
	}
	return res
}

func yearLayout(title, yTitle string) Layout {
	return Layout{
		Title: title,
		XAxis: Axis{Title: "Year"},
		YAxis: Axis{Title: yTitle},
	}
}

func countryLayout(title, yTitle string) Layout {
	return Layout{
		Title: title,
		XAxis: Axis{Title: "Country"},
		YAxis: Axis{Title: yTitle},
	}
}

func logAxis(title string) Axis {
	return Axis{Title: title, Type: "log", RangeMode: "nonnegative"}
}

// CountryOrdering returns the countries of the CO2 per capita table in
// the order of their first appearance. If that table is empty, the first
// non-empty table of renewable, CO2 total, forest area and resource rents
// gives the order. If all tables are empty the fallback is returned.
func CountryOrdering(tt Tables, fallback []string) []string {
	for _, t := range []*table.Table{
		tt.CO2PerCapita, tt.Renewable, tt.CO2Total,
		tt.ForestArea, tt.ResourceRents,
	} {
		if t == nil {
			continue
		}
		if res := t.Countries(); len(res) > 0 {
			return res
		}
	}
	return fallback
}
