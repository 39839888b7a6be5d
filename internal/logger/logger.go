// Package logger builds the charmbracelet/log loggers used across dictionarium.
//
// The terminal belongs to the UI while a session runs, so loggers normally
// write to a file opened with OpenFile.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DefaultFile is the log file used when none is configured
const DefaultFile = "dictionarium.log"

// New creates a logger writing to w with the given prefix and level
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	})
}

// OpenFile opens path for appending, creating it if needed
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		path = DefaultFile
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Install makes l the package-level default logger
func Install(l *log.Logger) {
	log.SetDefault(l)
}
