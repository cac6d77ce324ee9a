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
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/wbcharts/internal/iofs"
	"github.com/gnames/wbcharts/internal/iologger"
	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/wbcharts"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command when called without any
// subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", wbcharts.Version, wbcharts.Build,
		),
		Use:   "wbcharts",
		Short: "Builds dashboard figures from World Bank indicators",
		Long: `wbcharts fetches five environmental indicators from the World Bank
API for a selection of countries and builds eight chart-ready figures:

  0  CO2 emissions per capita (lines)
  1  CO2 emissions per capita in the end year (bars)
  2  CO2 emission VS forestal area (log-log scatter)
  3  CO2 emissions over forestal area in the end year (bars)
  4  Renewable energy consumption (lines)
  5  Renewable energy consumption in the end year (bars)
  6  Total natural resources rents (lines)
  7  Total natural resources rents in the end year (bars)

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (WBCHARTS_*)
  3. Config file (~/.config/wbcharts/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "wbcharts version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for wbcharts")

	rootCmd.AddCommand(getFiguresCmd())
	rootCmd.AddCommand(getURLsCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables are bound one by one, they match the fields of
	// config.ToOptions(). Countries are a list and are set in config.yaml
	// or with the -c flag only.
	v.SetEnvPrefix("WBCHARTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// API configuration
	v.BindEnv("api.base_url", "WBCHARTS_API_BASE_URL")
	v.BindEnv("api.timeout", "WBCHARTS_API_TIMEOUT")

	// Charts configuration
	v.BindEnv("charts.start_year", "WBCHARTS_CHARTS_START_YEAR")
	v.BindEnv("charts.end_year", "WBCHARTS_CHARTS_END_YEAR")
	v.BindEnv("charts.failure_policy", "WBCHARTS_CHARTS_FAILURE_POLICY")

	// Log configuration
	v.BindEnv("log.level", "WBCHARTS_LOG_LEVEL")
	v.BindEnv("log.format", "WBCHARTS_LOG_FORMAT")
	v.BindEnv("log.destination", "WBCHARTS_LOG_DESTINATION")

	v.AutomaticEnv()
}
