package iofetch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wbcharts/pkg/errcode"
	"github.com/gnames/wbcharts/pkg/indicator"
)

// RequestError creates an error for when the HTTP request for an
// indicator cannot be made or its body cannot be read.
func RequestError(code indicator.Code, url string, err error) error {
	msg := `Cannot load indicator <em>%s</em>

<em>URL:</em> %s

<em>Possible causes:</em>
  - No network connection
  - API is unavailable or too slow (see <em>api.timeout</em>)`

	vars := []any{code, url}

	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("request for %s failed: %w", code, err),
	}
}

// StatusError creates an error for a non-200 API response.
func StatusError(code indicator.Code, url string, status int) error {
	msg := `API returned status <em>%d</em> for indicator <em>%s</em>

<em>URL:</em> %s`

	vars := []any{status, code, url}

	return &gn.Error{
		Code: errcode.FetchStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unexpected status %d for %s", status, code),
	}
}

// DecodeError creates an error for a response that does not have the
// expected shape.
func DecodeError(code indicator.Code, url string, err error) error {
	msg := `Cannot parse API response for indicator <em>%s</em>

<em>URL:</em> %s`

	vars := []any{code, url}

	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode response for %s: %w", code, err),
	}
}

// APIError creates an error for a message document the API returns
// instead of data, for example for an unknown indicator or country.
func APIError(code indicator.Code, url, apiMsg string) error {
	msg := `API rejected the query for indicator <em>%s</em>

<em>Message:</em> %s
<em>URL:</em> %s

<em>How to fix:</em>
  1. Check country ISO-3 codes in <em>config.yaml</em>
  2. Check the years range`

	vars := []any{code, apiMsg, url}

	return &gn.Error{
		Code: errcode.FetchAPIError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("API error for %s: %s", code, apiMsg),
	}
}
