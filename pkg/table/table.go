// Package table assembles indicator observations into dataframes keyed
// by (country, date) and provides the filtering, sorting and joining
// operations the chart builder needs.
//
// Tables are immutable: every operation returns a new Table.
package table

import (
	"math"
	"strconv"

	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	colCountry = "country"
	colDate    = "date"
	colValue   = "value"
	colLeft    = "left"
	colRight   = "right"
)

// Table is a set of observations of one indicator.
type Table struct {
	df dataframe.DataFrame
}

// Row is one (country, date, value) entry of a Table.
// Value is nil for missing data.
type Row struct {
	Country string
	Date    int
	Value   *float64
}

// New creates a Table from observations, keeping their order.
func New(obs []indicator.Observation) *Table {
	countries := make([]string, len(obs))
	dates := make([]int, len(obs))
	values := make([]string, len(obs))
	for i, v := range obs {
		countries[i] = v.Country
		dates[i] = v.Date
		values[i] = formatValue(v.Value)
	}
	return &Table{df: newFrame(countries, dates, values, colValue)}
}

// Empty returns a Table without rows.
func Empty() *Table {
	return New(nil)
}

func newFrame(
	countries []string,
	dates []int,
	values []string,
	valueCol string,
) dataframe.DataFrame {
	return dataframe.New(
		series.New(countries, series.String, colCountry),
		series.New(dates, series.Int, colDate),
		series.New(values, series.Float, valueCol),
	)
}

// formatValue renders a value so that gota parses it back without loss.
// Missing values become NaN, which gota keeps as NA.
func formatValue(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return "NaN"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.df.Nrow()
}

// Err returns an error accumulated by dataframe operations, if any.
func (t *Table) Err() error {
	return t.df.Err
}

// FilterCountry keeps rows of the given country.
func (t *Table) FilterCountry(country string) *Table {
	if t.Len() == 0 {
		return t
	}
	df := t.df.Filter(dataframe.F{
		Colname:    colCountry,
		Comparator: series.Eq,
		Comparando: country,
	})
	return &Table{df: df}
}

// FilterDate keeps rows of the given year.
func (t *Table) FilterDate(year int) *Table {
	if t.Len() == 0 {
		return t
	}
	df := t.df.Filter(dataframe.F{
		Colname:    colDate,
		Comparator: series.Eq,
		Comparando: year,
	})
	return &Table{df: df}
}

// SortByDate sorts rows by year. The sort is stable.
func (t *Table) SortByDate(ascending bool) *Table {
	return t.arrange(colDate, ascending)
}

// SortByValue sorts rows by value. The sort is stable and rows without
// a value go last in both directions.
func (t *Table) SortByValue(ascending bool) *Table {
	return t.arrange(colValue, ascending)
}

func (t *Table) arrange(col string, ascending bool) *Table {
	if t.Len() == 0 {
		return t
	}
	order := dataframe.Sort(col)
	if !ascending {
		order = dataframe.RevSort(col)
	}
	return &Table{df: t.df.Arrange(order)}
}

// Rows returns table rows in their current order.
func (t *Table) Rows() []Row {
	if t.Len() == 0 {
		return nil
	}
	countries := t.df.Col(colCountry).Records()
	dates, _ := t.df.Col(colDate).Int()
	values := t.df.Col(colValue).Float()

	res := make([]Row, len(countries))
	for i := range countries {
		res[i] = Row{
			Country: countries[i],
			Date:    dates[i],
			Value:   valuePtr(values[i]),
		}
	}
	return res
}

// Dates returns years in their current order.
func (t *Table) Dates() []int {
	if t.Len() == 0 {
		return nil
	}
	res, _ := t.df.Col(colDate).Int()
	return res
}

// Countries returns distinct countries in the order of their first
// appearance.
func (t *Table) Countries() []string {
	if t.Len() == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var res []string
	for _, v := range t.df.Col(colCountry).Records() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

func valuePtr(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}
