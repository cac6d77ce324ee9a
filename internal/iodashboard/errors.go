package iodashboard

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/wbcharts/pkg/errcode"
	"github.com/gnames/wbcharts/pkg/indicator"
)

// IndicatorFailedError is returned with the "abort" failure policy when
// an indicator could not be fetched.
func IndicatorFailedError(code indicator.Code, err error) error {
	msg := `Indicator <em>%s</em> could not be fetched

<em>Hint:</em> set <em>charts.failure_policy</em> to "empty"
to build figures from the remaining indicators`

	vars := []any{code}

	return &gn.Error{
		Code: errcode.IndicatorFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("indicator %s failed: %w", code, err),
	}
}

// AllIndicatorsFailedError is returned when no indicator could be
// fetched, there is nothing to build figures from.
func AllIndicatorsFailedError(codes []indicator.Code, err error) error {
	msg := `None of <em>%d</em> indicators could be fetched

<em>Possible causes:</em>
  - No network connection
  - Wrong <em>api.base_url</em> in config.yaml`

	strs := make([]string, len(codes))
	for i, v := range codes {
		strs[i] = v.String()
	}
	vars := []any{len(codes)}

	return &gn.Error{
		Code: errcode.AllIndicatorsFailedError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("all indicators failed (%s): %w",
			strings.Join(strs, ", "), err),
	}
}

// CancelledError is returned when the context is done before figures
// are built.
func CancelledError(err error) error {
	msg := "Figures production was cancelled"

	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("figures cancelled: %w", err),
	}
}

// TableError is returned when records of an indicator cannot be
// converted into a table.
func TableError(code indicator.Code, err error) error {
	msg := "Cannot assemble data of indicator <em>%s</em>"
	vars := []any{code}

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot build table for %s: %w", code, err),
	}
}
