// Package logger wraps charmbracelet/log construction so every component logs
// with a consistent prefix and the globally configured level.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates the default charm log for a component prefix.
// Build-phase components (corpus load, index build, ngram training) log to
// stderr so stdout stays clean for score output.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a charm log with custom options for callers that need
// their own formatting, e.g. the interactive CLI.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
