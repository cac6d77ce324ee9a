// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/wbcharts/pkg/config"
	"github.com/gnames/wbcharts/pkg/wbcharts"
	"github.com/lmittmann/tint"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "wbcharts.log"

// logFile is the log file opened by the last Init call.
var logFile *os.File

// Init initializes the global slog logger with the given configuration.
// Creates a fresh log file in logDir if destination is "file".
// A log file opened by a previous call is closed.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer
	var isFile bool
	var file *os.File

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		var err error
		file, err = os.Create(logPath)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
		isFile = true
	default:
		writer = os.Stderr
	}

	slog.SetDefault(newLogger(writer, cfg, isFile))

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig, noColor bool) *slog.Logger {
	level := parseLevel(cfg.Level)

	var handler slog.Handler
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "tint":
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		})
	default:
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	return slog.New(handler).With(
		"app", config.AppName,
		"version", wbcharts.Version,
	)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
