package iologger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, parseLevel(v.in), v.in)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		msg    string
		format string
		check  func(*testing.T, string)
	}{
		{"json", "json", func(t *testing.T, out string) {
			var rec map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &rec))
			assert.Equal(t, "Skipped values", rec["msg"])
			assert.Equal(t, "wbcharts", rec["app"])
			assert.Equal(t, float64(2), rec["skipped"])
		}},
		{"text", "text", func(t *testing.T, out string) {
			assert.Contains(t, out, `msg="Skipped values"`)
			assert.Contains(t, out, "skipped=2")
		}},
		{"tint", "tint", func(t *testing.T, out string) {
			assert.Contains(t, out, "Skipped values")
			assert.Contains(t, out, "skipped=2")
			assert.NotContains(t, out, "\x1b[", "no colors expected")
		}},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config.LogConfig{Format: v.format, Level: "warn"}
			log := newLogger(&buf, cfg, true)

			log.Info("Not shown")
			assert.Empty(t, buf.String())

			log.Warn("Skipped values", "skipped", 2)
			v.check(t, buf.String())
		})
	}
}

func TestInitFile(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	logDir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	require.NoError(t, Init(logDir, cfg))

	slog.Info("Fetched indicator", "indicator", "EN.ATM.CO2E.PC")

	content, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "EN.ATM.CO2E.PC")
}

func TestInitClosesPreviousFile(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	logDir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	require.NoError(t, Init(logDir, cfg))
	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Init(logDir, cfg))
	assert.NotSame(t, first, logFile)
	_, err := first.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	cfg.Destination = "stderr"
	require.NoError(t, Init(logDir, cfg))
	assert.Nil(t, logFile)
}

func TestInitFileError(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	err := Init(filepath.Join(t.TempDir(), "missing"), cfg)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}
