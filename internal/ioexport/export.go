// Package ioexport encodes dashboard figures for the front-end and writes
// them to a file or to standard output.
package ioexport

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/wbcharts/internal/iofs"
	"github.com/gnames/wbcharts/pkg/chart"
	"gopkg.in/yaml.v3"
)

// Format of the exported figures.
type Format int

const (
	JSON Format = iota
	YAML
)

// NewFormat converts a format name to Format.
func NewFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return JSON, FormatError(s)
	}
}

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// Encode serializes figures. Pretty is used only by JSON, YAML is
// always indented.
func Encode(figs []chart.Figure, f Format, pretty bool) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(figs); err != nil {
			return nil, EncodeError(f, err)
		}
		if err := enc.Close(); err != nil {
			return nil, EncodeError(f, err)
		}
		return buf.Bytes(), nil
	default:
		enc := gnfmt.GNjson{Pretty: pretty}
		res, err := enc.Encode(figs)
		if err != nil {
			return nil, EncodeError(f, err)
		}
		return append(res, '\n'), nil
	}
}

// Write encodes figures and writes them to path. An empty path or "-"
// means standard output.
func Write(path string, figs []chart.Figure, f Format, pretty bool) error {
	data, err := Encode(figs, f, pretty)
	if err != nil {
		return err
	}

	if path == "" || path == "-" {
		return write(os.Stdout, data)
	}
	return iofs.WriteFile(path, data)
}

func write(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return iofs.WriteFileError("STDOUT", err)
	}
	return nil
}
