package table_test

import (
	"testing"

	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/gnames/wbcharts/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	t.Run("divides common years", func(t *testing.T) {
		co2 := table.New([]indicator.Observation{
			obs("Canada", 2001, val(500)),
			obs("Canada", 2000, val(400)),
			obs("Japan", 2001, val(1000)),
		})
		forest := table.New([]indicator.Observation{
			obs("Canada", 2001, val(250)),
			obs("Canada", 1999, val(100)),
			obs("Japan", 2001, val(500)),
			obs("Japan", 2000, val(500)),
		})

		res, skipped := table.Ratio(co2, forest, []string{"Japan", "Canada"})
		assert.Equal(t, 0, skipped)

		rows := res.Rows()
		require.Len(t, rows, 2)
		assert.Equal(t, "Japan", rows[0].Country)
		assert.Equal(t, 2.0, *rows[0].Value)
		assert.Equal(t, "Canada", rows[1].Country)
		assert.Equal(t, 2001, rows[1].Date)
		assert.Equal(t, 2.0, *rows[1].Value)
	})

	t.Run("skips zero denominators and nulls", func(t *testing.T) {
		co2 := table.New([]indicator.Observation{
			obs("Canada", 2000, val(400)),
			obs("Canada", 2001, val(500)),
			obs("Canada", 2002, nil),
		})
		forest := table.New([]indicator.Observation{
			obs("Canada", 2000, val(0)),
			obs("Canada", 2001, val(250)),
			obs("Canada", 2002, val(250)),
		})

		res, skipped := table.Ratio(co2, forest, []string{"Canada"})
		assert.Equal(t, 2, skipped)

		rows := res.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, 2001, rows[0].Date)
		assert.Equal(t, 2.0, *rows[0].Value)
	})

	t.Run("countries outside ordering are ignored", func(t *testing.T) {
		co2 := table.New([]indicator.Observation{obs("Canada", 2000, val(1))})
		forest := table.New([]indicator.Observation{obs("Canada", 2000, val(1))})
		res, _ := table.Ratio(co2, forest, []string{"Japan"})
		assert.Equal(t, 0, res.Len())
	})
}
