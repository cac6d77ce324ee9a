// Package indicator describes the World Bank indicators, country selections
// and observation records used to build the dashboard charts.
//
// This package is pure: it performs no I/O. Fetching happens in
// internal/iofetch, which produces the Observation values defined here.
package indicator

// Code is an indicator identifier from the World Bank catalog.
type Code string

const (
	// Renewable is renewable energy consumption
	// (% of total final energy consumption).
	Renewable Code = "EG.FEC.RNEW.ZS"

	// CO2PerCapita is CO2 emissions (metric tons per capita).
	CO2PerCapita Code = "EN.ATM.CO2E.PC"

	// CO2Total is CO2 emissions (kt).
	CO2Total Code = "EN.ATM.CO2E.KT"

	// ForestArea is forest area (sq. km).
	ForestArea Code = "AG.LND.FRST.K2"

	// ResourceRents is total natural resources rents (% of GDP).
	ResourceRents Code = "NY.GDP.TOTL.RT.ZS"
)

// All returns the indicators used by the dashboard in fetch order.
func All() []Code {
	return []Code{Renewable, CO2PerCapita, CO2Total, ForestArea, ResourceRents}
}

func (c Code) String() string {
	return string(c)
}

// Observation is one value of an indicator for a country and a year.
type Observation struct {
	// Country is the display name reported by the API.
	Country string

	// Date is the year of the observation.
	Date int

	// Indicator is the display name of the indicator.
	Indicator string

	// Value is nil when the API has no value for the year.
	Value *float64
}
