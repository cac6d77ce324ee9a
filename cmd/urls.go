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
	"fmt"

	"github.com/gnames/wbcharts/internal/iodashboard"
	"github.com/gnames/wbcharts/internal/iofetch"
	"github.com/spf13/cobra"
)

// getURLsCmd returns the urls command.
func getURLsCmd() *cobra.Command {
	urlsCmd := &cobra.Command{
		Use:   "urls",
		Short: "Print API query URLs without fetching",
		Long: `Print the World Bank API URLs the figures command would request,
one per indicator, using countries and years from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := iodashboard.New(cfg, iofetch.New(cfg))
			for _, url := range dash.URLs() {
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}

	return urlsCmd
}
