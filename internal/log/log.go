// Package log builds the structured logger used by the command line tool.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("log")

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "logfmt"}

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// Options select the handler.
type Options struct {
	// Format is text, json or logfmt.
	Format string

	// Level is debug, info, warn or error.
	Level string

	// NoColor disables colors for the text format.
	NoColor bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	handler, err := newHandler(w, opts.Format, level, opts.NoColor)
	if err != nil {
		return nil, err
	}

	return slog.New(handler), nil
}

// IsTerminal reports whether w is a terminal that can render colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, Error.New("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

func newHandler(w io.Writer, format string, level slog.Level, noColor bool) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}), nil
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "logfmt":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	default:
		return nil, Error.New("invalid log-format %q: expected text, json, or logfmt", format)
	}
}
