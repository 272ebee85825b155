// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/KaramelBytes/crosstab-cli/internal/config"
)

// TimeFormat is the layout of the time attribute.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Setup initializes the logging system. The returned closer releases a log file and is a
// no-op for stdout and stderr.
func Setup(cfg config.LogConfig) (func() error, error) {
	h, closer, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(h))
	slog.Debug("logger initialized", "level", cfg.Level, "format", cfg.Format, "output", cfg.Output)
	return closer, nil
}

// NewHandler builds the handler described by cfg without installing it.
func NewHandler(cfg config.LogConfig) (slog.Handler, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	noop := func() error { return nil }

	var w io.Writer
	closer := noop
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	case "file":
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("log file path is required when output is 'file'")
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f.Close
	default:
		return nil, nil, fmt.Errorf("invalid log output: %s", cfg.Output)
	}

	h, err := handlerFor(w, cfg.Format, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(TimeFormat))
			}
			return a
		},
	})
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return h, closer, nil
}

func handlerFor(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(format) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	}
	return nil, fmt.Errorf("invalid log format: %s", format)
}

// ParseLevel parses a level name. An empty name is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
