package display

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth returns the width of the terminal behind f, or fallback when
// f is not a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	w, _, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
