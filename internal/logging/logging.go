// Package logging builds the structured logger shared by co's components.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by the logger.
const Prefix = "co"

// New returns a logger writing to w at the named level
// (debug, info, warn, error, fatal).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile opens path for appending, creating it and its directory as needed.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log file %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log file %s: %w", path, err)
	}

	return f, nil
}
