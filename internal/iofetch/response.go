package iofetch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/wbcharts/pkg/indicator"
)

// pageMeta is the first element of an API response.
type pageMeta struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// ref is a nested {"id": ..., "value": ...} object of a record.
type ref struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// rawObservation is one element of the second part of an API response.
type rawObservation struct {
	Indicator ref      `json:"indicator"`
	Country   ref      `json:"country"`
	ISO3      string   `json:"countryiso3code"`
	Date      string   `json:"date"`
	Value     *float64 `json:"value"`
}

// apiMessage is returned by the API instead of data for invalid queries.
type apiMessage struct {
	Message []struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"message"`
}

type page struct {
	meta    pageMeta
	records []rawObservation
}

// decode parses the two-element array returned by the API.
// A null second element means there is no data for the query.
func (f *fetcher) decode(
	code indicator.Code,
	url string,
	body []byte,
) (*page, error) {
	var doc []json.RawMessage
	if err := f.enc.Decode(body, &doc); err != nil {
		return nil, DecodeError(code, url, err)
	}

	switch len(doc) {
	case 0:
		return nil, DecodeError(code, url, errors.New("empty response array"))
	case 1:
		var msg apiMessage
		if err := f.enc.Decode(doc[0], &msg); err == nil && len(msg.Message) > 0 {
			var texts []string
			for _, v := range msg.Message {
				texts = append(texts, strings.TrimSpace(v.Key+": "+v.Value))
			}
			return nil, APIError(code, url, strings.Join(texts, "; "))
		}
		return nil, DecodeError(code, url,
			errors.New("response has no observations element"))
	}

	var res page
	if err := f.enc.Decode(doc[0], &res.meta); err != nil {
		return nil, DecodeError(code, url,
			fmt.Errorf("pagination metadata: %w", err))
	}
	if isNull(doc[1]) {
		return &res, nil
	}
	if err := f.enc.Decode(doc[1], &res.records); err != nil {
		return nil, DecodeError(code, url,
			fmt.Errorf("observations: %w", err))
	}
	return &res, nil
}

// isNull reports whether a raw element is a JSON null.
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// observations flattens nested indicator and country objects to their
// display names and converts dates to years.
func (p *page) observations(
	code indicator.Code,
	url string,
) ([]indicator.Observation, error) {
	res := make([]indicator.Observation, 0, len(p.records))
	for _, v := range p.records {
		year, err := strconv.Atoi(strings.TrimSpace(v.Date))
		if err != nil {
			return nil, DecodeError(code, url,
				fmt.Errorf("date %q of %s: %w", v.Date, v.Country.Value, err))
		}
		res = append(res, indicator.Observation{
			Country:   v.Country.Value,
			Date:      year,
			Indicator: v.Indicator.Value,
			Value:     v.Value,
		})
	}
	return res, nil
}
