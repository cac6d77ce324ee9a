package cmd

import (
	"bytes"
	"testing"

	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "wbcharts", cmd.Use)
	assert.NotNil(t, cmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)

	names := make(map[string]bool)
	for _, v := range cmd.Commands() {
		names[v.Name()] = true
	}
	assert.True(t, names["figures"])
	assert.True(t, names["urls"])

	assert.NotSame(t, cmd, getRootCmd(),
		"Each getRootCmd call should return new instance")
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			cmd := getRootCmd()
			cmd.Version = "version: v1.2.3\nbuild:   abc123"

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{flag})

			require.NoError(t, cmd.Execute())
			assert.Contains(t, buf.String(), "v1.2.3")
			assert.Contains(t, buf.String(), "abc123")
			assert.NotContains(t, buf.String(), "wbcharts version")
		})
	}
}

func TestInvalidCommand(t *testing.T) {
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"nonexistent-command"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestInitEnvVars(t *testing.T) {
	t.Setenv("WBCHARTS_API_TIMEOUT", "15")
	t.Setenv("WBCHARTS_CHARTS_END_YEAR", "2010")
	t.Setenv("WBCHARTS_CHARTS_FAILURE_POLICY", "abort")
	t.Setenv("WBCHARTS_LOG_FORMAT", "tint")

	v := viper.New()
	initEnvVars(v)

	var res config.Config
	require.NoError(t, v.Unmarshal(&res))
	assert.Equal(t, 15, res.API.Timeout)
	assert.Equal(t, 2010, res.Charts.EndYear)
	assert.Equal(t, "abort", res.Charts.FailurePolicy)
	assert.Equal(t, "tint", res.Log.Format)

	cfg := config.New()
	cfg.Update(res.ToOptions())
	assert.Equal(t, 15, cfg.API.Timeout)
	assert.Equal(t, 1990, cfg.Charts.StartYear)
	assert.Equal(t, 2010, cfg.Charts.EndYear)
	assert.Equal(t, indicator.DefaultSelection(), cfg.Charts.Countries)
}

func TestInitConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := initConfig(t.TempDir())
		assert.Error(t, err)
	})
}
