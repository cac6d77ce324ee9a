package table

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Joined is the inner join of two tables on (country, date).
type Joined struct {
	df dataframe.DataFrame
}

// JoinedRow holds values of both joined tables for a (country, date) pair.
type JoinedRow struct {
	Country string
	Date    int
	Left    *float64
	Right   *float64
}

// InnerJoin joins t with other on (country, date). Rows without a match
// in both tables are dropped.
func (t *Table) InnerJoin(other *Table) *Joined {
	if t.Len() == 0 || other.Len() == 0 {
		return &Joined{df: emptyJoined()}
	}
	left := t.df.Rename(colLeft, colValue)
	right := other.df.Rename(colRight, colValue)
	return &Joined{df: left.InnerJoin(right, colCountry, colDate)}
}

func emptyJoined() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{}, series.String, colCountry),
		series.New([]int{}, series.Int, colDate),
		series.New([]float64{}, series.Float, colLeft),
		series.New([]float64{}, series.Float, colRight),
	)
}

// Len returns the number of joined rows.
func (j *Joined) Len() int {
	return j.df.Nrow()
}

// SortByDate sorts joined rows by year. The sort is stable.
func (j *Joined) SortByDate(ascending bool) *Joined {
	if j.Len() == 0 {
		return j
	}
	order := dataframe.Sort(colDate)
	if !ascending {
		order = dataframe.RevSort(colDate)
	}
	return &Joined{df: j.df.Arrange(order)}
}

// FilterCountry keeps joined rows of the given country.
func (j *Joined) FilterCountry(country string) *Joined {
	if j.Len() == 0 {
		return j
	}
	df := j.df.Filter(dataframe.F{
		Colname:    colCountry,
		Comparator: series.Eq,
		Comparando: country,
	})
	return &Joined{df: df}
}

// Rows returns joined rows in their current order.
func (j *Joined) Rows() []JoinedRow {
	if j.Len() == 0 {
		return nil
	}
	countries := j.df.Col(colCountry).Records()
	dates, _ := j.df.Col(colDate).Int()
	left := j.df.Col(colLeft).Float()
	right := j.df.Col(colRight).Float()

	res := make([]JoinedRow, len(countries))
	for i := range countries {
		res[i] = JoinedRow{
			Country: countries[i],
			Date:    dates[i],
			Left:    valuePtr(left[i]),
			Right:   valuePtr(right[i]),
		}
	}
	return res
}
