package sessionlog

import (
	"context"
	"io"

	"github.com/joshuadavidthomas/hostlog/internal/session"
)

type contextKey struct{}

// WithFacility returns a new context carrying f.
func WithFacility(ctx context.Context, f *Facility) context.Context {
	return context.WithValue(ctx, contextKey{}, f)
}

// FromContext returns the facility stored in ctx. If there is none, it
// returns a facility with an in-memory session that discards all output.
func FromContext(ctx context.Context) *Facility {
	if ctx != nil {
		if f, ok := ctx.Value(contextKey{}).(*Facility); ok && f != nil {
			return f
		}
	}
	f, _ := New(Options{
		Store:   session.NewMemoryStore(),
		Outputs: []Output{NewConsoleOutput(io.Discard)},
	})
	return f
}
