// Package chart builds plotly-compatible figures from indicator tables.
//
// Build always returns eight figures. Their position in the result is a
// contract with the presentation layer, see the Slot constants.
package chart

import (
	"fmt"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Slot is the position of a figure in the result of Build.
type Slot int

const (
	// CO2PerCapitaLine is "CO2 emissions per capita", a line per country.
	CO2PerCapitaLine Slot = iota
	// CO2PerCapitaBar is CO2 emissions per capita in the end year.
	CO2PerCapitaBar
	// CO2VsForestScatter is CO2 emission against forest area, log axes.
	CO2VsForestScatter
	// CO2OverForestBar is CO2 emissions over forest area in the end year.
	CO2OverForestBar
	// RenewableLine is renewable energy consumption, a line per country.
	RenewableLine
	// RenewableBar is renewable energy consumption in the end year.
	RenewableBar
	// ResourceRentsLine is total natural resources rents, a line per country.
	ResourceRentsLine
	// ResourceRentsBar is total natural resources rents in the end year.
	ResourceRentsBar

	// SlotsNum is the number of figures produced by Build.
	SlotsNum
)

// Figure is one chart: its data series and layout.
type Figure struct {
	// ID is a UUIDv5 derived from the slot and the title.
	ID     uuid.UUID `json:"id"     yaml:"id"`
	Data   []Trace   `json:"data"   yaml:"data"`
	Layout Layout    `json:"layout" yaml:"layout"`
}

// Trace is a data series. X and Y hold years, country names or numbers;
// nil in Y means a missing value.
type Trace struct {
	Type string   `json:"type"           yaml:"type"`
	Mode string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	X    []any    `json:"x"              yaml:"x"`
	Y    []any    `json:"y"              yaml:"y"`
	Text []string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Layout holds the title and axes of a figure.
type Layout struct {
	Title string `json:"title" yaml:"title"`
	XAxis Axis   `json:"xaxis" yaml:"xaxis"`
	YAxis Axis   `json:"yaxis" yaml:"yaxis"`
}

// Axis describes one axis. Type is "log" for logarithmic axes,
// RangeMode "nonnegative" clamps the range at zero.
type Axis struct {
	Title     string `json:"title"               yaml:"title"`
	Type      string `json:"type,omitempty"      yaml:"type,omitempty"`
	RangeMode string `json:"rangemode,omitempty" yaml:"rangemode,omitempty"`
}

const (
	traceScatter = "scatter"
	traceBar     = "bar"

	modeLines        = "lines"
	modeLinesMarkers = "lines+markers"
)

func newFigure(slot Slot, data []Trace, layout Layout) Figure {
	id := gnuuid.New(fmt.Sprintf("%d|%s", slot, layout.Title))
	return Figure{ID: id, Data: data, Layout: layout}
}

func value(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
