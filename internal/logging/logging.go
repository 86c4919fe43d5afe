// SPDX-License-Identifier: MPL-2.0

// Package logging builds the idevctl diagnostics logger.
//
// Everything goes to one charmbracelet/log logger on stderr. Library packages
// log through log/slog; Install routes slog's default logger to the same sink.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idevctl/idevctl/internal/config"
)

// New creates a logger writing to w. verbose forces debug level regardless
// of cfg.Level.
func New(w io.Writer, cfg config.LogConfig, verbose bool) (*log.Logger, error) {
	level, err := log.ParseLevel(string(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = log.DebugLevel
	}

	formatter, err := formatterFor(cfg.Format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// Install makes l the backend of slog.Default.
func Install(l *log.Logger) {
	slog.SetDefault(slog.New(l))
}

func formatterFor(f config.LogFormat) (log.Formatter, error) {
	switch f {
	case config.LogFormatText, "":
		return log.TextFormatter, nil
	case config.LogFormatJSON:
		return log.JSONFormatter, nil
	case config.LogFormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return 0, &config.InvalidLogFormatError{Value: f}
	}
}
