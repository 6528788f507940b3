package logging

import (
	"bytes"
	"context"
)

// NewTestContext creates a context carrying a diagnostics logger configured
// per flags and writing to a new buffer, so tests can inspect its output.
func NewTestContext(flags Flags) (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)
	flags.NoColor = true
	Configure(l, flags)
	return WithLogger(context.Background(), l), buf
}
