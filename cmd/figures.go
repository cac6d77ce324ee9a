/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/gnames/wbcharts/internal/iodashboard"
	"github.com/gnames/wbcharts/internal/ioexport"
	"github.com/gnames/wbcharts/internal/iofetch"
	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/spf13/cobra"
)

// figuresFlags keeps values of the figures command flags.
type figuresFlags struct {
	countries     []string
	startYear     int
	endYear       int
	output        string
	format        string
	pretty        bool
	withProgress  bool
	failurePolicy string
}

// getFiguresCmd returns the figures command.
func getFiguresCmd() *cobra.Command {
	var flags figuresFlags

	figuresCmd := &cobra.Command{
		Use:   "figures",
		Short: "Fetch indicators and write dashboard figures",
		Long: `Fetch the indicators from the World Bank API and write eight
figures as JSON or YAML.

Each -c flag adds a country as "Name=ISO3". When any -c flag is given,
the flags replace the countries from config.yaml.

Examples:
  # Default countries and years, compact JSON to STDOUT
  wbcharts figures

  # Two countries, 2000-2010, pretty JSON to a file
  wbcharts figures -c "Canada=CAN" -c "Japan=JPN" -s 2000 -e 2010 \
    -o figures.json --pretty

  # YAML output
  wbcharts figures -f yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFigures(cmd, flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	figuresCmd.Flags().StringArrayVarP(
		&flags.countries, "country", "c", nil,
		`country as "Name=ISO3", repeatable`,
	)
	figuresCmd.Flags().IntVarP(
		&flags.startYear, "start-year", "s", 0,
		"first year of data",
	)
	figuresCmd.Flags().IntVarP(
		&flags.endYear, "end-year", "e", 0,
		"last year of data, bar figures show this year",
	)
	figuresCmd.Flags().StringVarP(
		&flags.output, "output", "o", "",
		"output file (default STDOUT)",
	)
	figuresCmd.Flags().StringVarP(
		&flags.format, "format", "f", "json",
		"output format: json, yaml",
	)
	figuresCmd.Flags().BoolVarP(
		&flags.pretty, "pretty", "p", false,
		"indent JSON output",
	)
	figuresCmd.Flags().BoolVar(
		&flags.withProgress, "progress", false,
		"show fetch progress on STDERR",
	)
	figuresCmd.Flags().StringVar(
		&flags.failurePolicy, "failure-policy", "",
		"what to do when an indicator fails: empty, abort",
	)

	return figuresCmd
}

func runFigures(cmd *cobra.Command, flags figuresFlags) error {
	format, err := ioexport.NewFormat(flags.format)
	if err != nil {
		return err
	}

	cfg.Update(figuresOptions(cmd, flags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dash := iodashboard.New(cfg, iofetch.New(cfg))
	figs, err := dash.Figures(ctx)
	if err != nil {
		return err
	}

	if err = ioexport.Write(flags.output, figs, format, flags.pretty); err != nil {
		return err
	}

	if flags.output != "" && flags.output != "-" {
		msg := gnlib.FormatMessage(
			"<em>%d</em> figures are saved to <em>%s</em>",
			[]any{len(figs), flags.output},
		)
		fmt.Fprintln(os.Stderr, msg)
	}
	return nil
}

// figuresOptions converts explicitly set flags to config options.
func figuresOptions(cmd *cobra.Command, flags figuresFlags) []config.Option {
	var res []config.Option

	if cmd.Flags().Changed("country") {
		res = append(res, config.OptCountries(parseCountries(flags.countries)))
	}

	hasStart := cmd.Flags().Changed("start-year")
	hasEnd := cmd.Flags().Changed("end-year")
	if hasStart || hasEnd {
		start, end := cfg.Charts.StartYear, cfg.Charts.EndYear
		if hasStart {
			start = flags.startYear
		}
		if hasEnd {
			end = flags.endYear
		}
		res = append(res, config.OptYears(start, end))
	}

	if cmd.Flags().Changed("failure-policy") {
		res = append(res, config.OptFailurePolicy(flags.failurePolicy))
	}

	if flags.withProgress {
		res = append(res, config.OptWithProgress(true))
	}
	return res
}

// parseCountries converts "Name=ISO3" strings to a selection, skipping
// malformed entries.
func parseCountries(ss []string) indicator.Selection {
	var res indicator.Selection
	for _, s := range ss {
		c, ok := indicator.ParseCountry(s)
		if !ok {
			gn.Warn("Cannot parse country <em>%s</em>, use \"Name=ISO3\"", s)
			continue
		}
		res = append(res, c)
	}
	return res
}
