package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wbcharts/pkg/errcode"
)

func FormatError(format string) error {
	msg := `Unknown output format <em>%s</em>

<em>Supported formats:</em> json, yaml`
	vars := []any{format}
	return &gn.Error{
		Code: errcode.ExportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown format %q", format),
	}
}

func EncodeError(f Format, err error) error {
	msg := "Cannot encode figures to <em>%s</em>"
	vars := []any{f}
	return &gn.Error{
		Code: errcode.ExportEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot encode figures to %s: %w", f, err),
	}
}
