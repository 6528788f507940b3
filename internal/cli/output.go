package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuadavidthomas/hostlog/internal/display"
)

// outWriter is the writer used for all command output, script log lines
// included. Tests can replace this to capture output.
var outWriter io.Writer = os.Stdout

// out prints formatted output to the configured writer.
func out(format string, a ...any) {
	_, _ = fmt.Fprintf(outWriter, format, a...)
}

// outln prints a line to the configured writer.
func outln(a ...any) {
	_, _ = fmt.Fprintln(outWriter, a...)
}

// outTerminal returns the terminal behind outWriter, if there is one.
func outTerminal() (*os.File, bool) {
	f, ok := outWriter.(*os.File)
	if !ok || !display.IsTerminal(f) {
		return nil, false
	}
	return f, true
}
