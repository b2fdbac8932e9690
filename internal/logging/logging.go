// Package logging builds the slog logger used for diagnostics.
//
// Diagnostics always go to a separate writer (stderr in the CLI) so the
// result line on stdout stays clean.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/handiism/wav-duration/internal/config"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to warn.
func ParseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelWarn
}

// New creates a logger writing to w with the given settings.
func New(cfg config.LogSettings, w io.Writer) (*slog.Logger, error) {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unrecognized log format: %s", cfg.Format)
	}
}

// Init creates a logger with New and installs it as the slog default.
func Init(cfg config.LogSettings, w io.Writer) error {
	logger, err := New(cfg, w)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
