// Package logger holds the process-wide structured logger for rotatectl.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Verbose bool       // Log debug records as text to Stderr
	File    string     // Append JSON records to this file
	Level   slog.Level // Minimum level for File. Default: LevelInfo
	Stderr  io.Writer  // Default: os.Stderr
}

// Init configures logging and returns a function that releases any opened
// log file. With neither Verbose nor File set, all log output is discarded.
func Init(opts Options) (func() error, error) {
	noop := func() error { return nil }

	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return noop, err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return noop, err
		}
		level := opts.Level
		if opts.Verbose {
			level = slog.LevelDebug
		}
		L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		return f.Close, nil

	case opts.Verbose:
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}
		L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return noop, nil

	default:
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return noop, nil
	}
}
