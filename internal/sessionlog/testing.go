package sessionlog

import (
	"bytes"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/joshuadavidthomas/hostlog/internal/format"
	"github.com/joshuadavidthomas/hostlog/internal/session"
)

// NewTestFacility builds a facility from opts that writes uncolored lines to
// a new buffer. A nil opts.Store gets a fresh in-memory session. It panics on
// invalid options, which only tests should pass.
func NewTestFacility(opts Options) (*Facility, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	if opts.Store == nil {
		opts.Store = session.NewMemoryStore()
	}
	if opts.Renderer == nil {
		r := lipgloss.NewRenderer(buf)
		r.SetColorProfile(termenv.Ascii)
		opts.Renderer = format.DefaultDispatcher(r, format.Styles{})
	}
	opts.Outputs = []Output{NewConsoleOutput(buf)}

	f, err := New(opts)
	if err != nil {
		panic(err)
	}
	return f, buf
}
