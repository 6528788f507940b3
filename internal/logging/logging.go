// Package logging provides the diagnostics logger used by hostlog itself:
// swallowed persistence failures, malformed config and similar events that
// must never reach the script-facing log stream.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Flags holds the CLI flags that affect diagnostics output.
type Flags struct {
	Verbose bool
	Quiet   bool
	NoColor bool
}

// NewLogger creates a diagnostics logger writing to w.
// The default level is WarnLevel.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "hostlog",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewLogger(io.Discard)
}

// Configure adjusts l based on CLI flags.
// Quiet takes precedence over verbose when both are set.
func Configure(l *log.Logger, f Flags) {
	switch {
	case f.Quiet:
		l.SetLevel(log.ErrorLevel)
	case f.Verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.WarnLevel)
	}

	if f.NoColor {
		l.SetColorProfile(termenv.Ascii)
	}
}
