package table

import (
	"github.com/gnames/wbcharts/pkg/indicator"
)

// Ratio divides values of num by values of denom for every country in
// countries and every year present in both tables. Years follow the
// order of denom.
//
// Rows are skipped when either value is missing or the denominator is
// zero. The number of skipped rows is returned with the result.
func Ratio(num, denom *Table, countries []string) (*Table, int) {
	var obs []indicator.Observation
	var skipped int

	for _, country := range countries {
		numVals := firstValues(num.FilterCountry(country))
		for _, row := range denom.FilterCountry(country).Rows() {
			n, ok := numVals[row.Date]
			if !ok {
				continue
			}
			if n == nil || row.Value == nil || *row.Value == 0 {
				skipped++
				continue
			}
			v := *n / *row.Value
			obs = append(obs, indicator.Observation{
				Country: country,
				Date:    row.Date,
				Value:   &v,
			})
		}
	}
	return New(obs), skipped
}

// firstValues maps years to the first value seen for that year.
func firstValues(t *Table) map[int]*float64 {
	res := make(map[int]*float64)
	for _, row := range t.Rows() {
		if _, ok := res[row.Date]; !ok {
			res[row.Date] = row.Value
		}
	}
	return res
}
