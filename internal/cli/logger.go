package cli

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/joshuadavidthomas/hostlog/internal/logging"
)

// newConfiguredLogger creates the diagnostics logger configured from CLI flags.
func newConfiguredLogger() *log.Logger {
	l := logging.NewLogger(os.Stderr)
	logging.Configure(l, logging.Flags{
		Verbose: verbose,
		Quiet:   quiet,
		NoColor: noColor,
	})
	return l
}
