package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostics logger. Recognized text goes to stdout
// through scopelog; everything about the run itself goes here, on stderr.
var Logger = NewLogger(os.Stderr)

// NewLogger returns a diagnostics logger writing to w.
func NewLogger(w io.Writer) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Prefix:          "ocrscan",
	})
}

// SetVerbose switches the shared logger between info and debug level.
func SetVerbose(v bool) {
	if v {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
