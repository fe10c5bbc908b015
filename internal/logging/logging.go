// Package logging builds the process logger. Logs go to a file, never to the terminal, since the TUI owns the screen.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// EnvLogFile names an environment variable that, when set, overrides the configured log file.
const EnvLogFile = "MORPH_LOG_FILE"

// New returns a logger that appends text records to path, and a function that closes the file.
//
// If path is empty (after applying EnvLogFile), the logger discards everything. verbose enables debug records.
func New(path string, verbose bool) (*slog.Logger, func() error, error) {
	if env := os.Getenv(EnvLogFile); env != "" {
		path = env
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}
