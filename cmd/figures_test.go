package cmd

import (
	"testing"

	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/indicator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiguresFlags(t *testing.T) {
	cmd := getFiguresCmd()
	tests := []struct {
		name, short, def string
	}{
		{"country", "c", "[]"},
		{"start-year", "s", "0"},
		{"end-year", "e", "0"},
		{"output", "o", ""},
		{"format", "f", "json"},
		{"pretty", "p", "false"},
		{"progress", "", "false"},
		{"failure-policy", "", ""},
	}
	for _, v := range tests {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.short, flag.Shorthand, v.name)
		assert.Equal(t, v.def, flag.DefValue, v.name)
	}
}

func TestParseCountries(t *testing.T) {
	res := parseCountries([]string{
		"Canada=CAN", "Japan=jpn", "Atlantis", "Mars=MARS",
	})
	assert.Equal(t, indicator.Selection{
		{Name: "Canada", ISO3: "CAN"},
		{Name: "Japan", ISO3: "JPN"},
	}, res)
}

func TestFiguresOptions(t *testing.T) {
	cfg = config.New()
	t.Cleanup(func() { cfg = nil })

	cmd := getFiguresCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"-c", "Brazil=BRA", "-c", "India=IND",
		"-e", "2010",
		"--failure-policy", "abort",
		"--progress",
	}))

	var flags figuresFlags
	flags.countries, _ = cmd.Flags().GetStringArray("country")
	flags.endYear, _ = cmd.Flags().GetInt("end-year")
	flags.failurePolicy, _ = cmd.Flags().GetString("failure-policy")
	flags.withProgress, _ = cmd.Flags().GetBool("progress")

	cfg.Update(figuresOptions(cmd, flags))

	assert.Equal(t, indicator.Selection{
		{Name: "Brazil", ISO3: "BRA"},
		{Name: "India", ISO3: "IND"},
	}, cfg.Charts.Countries)
	assert.Equal(t, 1990, cfg.Charts.StartYear)
	assert.Equal(t, 2010, cfg.Charts.EndYear)
	assert.Equal(t, config.PolicyAbort, cfg.Charts.FailurePolicy)
	assert.True(t, cfg.Charts.WithProgress)
}

func TestFiguresOptionsUnchanged(t *testing.T) {
	cfg = config.New()
	t.Cleanup(func() { cfg = nil })

	cmd := getFiguresCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	assert.Empty(t, figuresOptions(cmd, figuresFlags{}))
}
