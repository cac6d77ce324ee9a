package indicator

import (
	"strings"
)

// Country pairs a display name with its ISO-3 code.
type Country struct {
	Name string `mapstructure:"name" yaml:"name"`
	ISO3 string `mapstructure:"iso3" yaml:"iso3"`
}

// Selection is an ordered list of countries. The order defines the order
// of country codes in API queries.
type Selection []Country

// DefaultSelection returns a fresh copy of the default set of countries.
func DefaultSelection() Selection {
	return Selection{
		{Name: "Canada", ISO3: "CAN"},
		{Name: "United States", ISO3: "USA"},
		{Name: "Brazil", ISO3: "BRA"},
		{Name: "France", ISO3: "FRA"},
		{Name: "India", ISO3: "IND"},
		{Name: "Italy", ISO3: "ITA"},
		{Name: "Germany", ISO3: "DEU"},
		{Name: "United Kingdom", ISO3: "GBR"},
		{Name: "China", ISO3: "CHN"},
		{Name: "Japan", ISO3: "JPN"},
	}
}

// OrDefault returns the selection itself, or the default selection
// if it is empty.
func (s Selection) OrDefault() Selection {
	if len(s) == 0 {
		return DefaultSelection()
	}
	return s
}

// Names returns display names in selection order.
func (s Selection) Names() []string {
	res := make([]string, len(s))
	for i, v := range s {
		res[i] = v.Name
	}
	return res
}

// Filter returns the semicolon-joined lowercase ISO-3 codes the API
// expects in its countries path segment.
func (s Selection) Filter() string {
	codes := make([]string, len(s))
	for i, v := range s {
		codes[i] = strings.ToLower(v.ISO3)
	}
	return strings.Join(codes, ";")
}

// ParseCountry parses "Name=ISO" notation. The ISO-3 code is upper-cased.
func ParseCountry(s string) (Country, bool) {
	name, code, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	if !ok || name == "" || len(code) != 3 {
		return Country{}, false
	}
	return Country{Name: name, ISO3: code}, true
}
