package indicator

import (
	"fmt"
	"strings"
)

// PerPage is the fixed page size of every query. Results beyond the first
// page are not requested.
const PerPage = 1000

// Query describes one API request for one indicator.
type Query struct {
	BaseURL   string
	Countries Selection
	Code      Code
	StartYear int
	EndYear   int
}

// URL builds the request URL, for example:
//
//	http://api.worldbank.org/v2/countries/usa;bra/indicators/AG.LND.FRST.K2?date=1990:2014&per_page=1000&format=json
func (q Query) URL() string {
	base := strings.TrimRight(q.BaseURL, "/")
	return fmt.Sprintf(
		"%s/countries/%s/indicators/%s?date=%d:%d&per_page=%d&format=json",
		base, q.Countries.Filter(), q.Code, q.StartYear, q.EndYear, PerPage,
	)
}
