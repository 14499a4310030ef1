// Package output provides terminal output utilities.
package output

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates the logger handed to every component. Verbose runs log at
// debug level and include timestamps.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    false,
	})
}
