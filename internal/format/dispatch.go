package format

import (
	"maps"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuadavidthomas/hostlog/internal/level"
)

// Default highlight backgrounds for the boxed templates.
const (
	ErrorBackground    = "#EEEEEE"
	CriticalBackground = "#FFDABF"
)

// Dispatcher selects a Template per level. It is not modified after
// construction.
type Dispatcher struct {
	byLevel  map[level.Level]Template
	fallback Template
	maxWidth int
}

// NewDispatcher copies byLevel; levels missing from it use fallback.
func NewDispatcher(fallback Template, byLevel map[level.Level]Template) *Dispatcher {
	return &Dispatcher{
		byLevel:  maps.Clone(byLevel),
		fallback: fallback,
	}
}

// WithMaxWidth returns a copy that wraps styled lines to fit width columns.
// Zero disables wrapping.
func (d *Dispatcher) WithMaxWidth(width int) *Dispatcher {
	nd := *d
	nd.maxWidth = width
	return &nd
}

// Select returns the template for an exact level match, else the fallback.
func (d *Dispatcher) Select(l level.Level) Template {
	if t, ok := d.byLevel[l]; ok {
		return t
	}
	return d.fallback
}

// Render formats a pre-processed message for logger name at level l.
func (d *Dispatcher) Render(l level.Level, name, message string) string {
	return d.Select(l).render(l.String(), name, message, d.maxWidth)
}

// Styles configures DefaultDispatcher.
type Styles struct {
	Pattern            string
	ErrorBackground    string
	CriticalBackground string
}

// DefaultDispatcher builds the standard table: a plain template for every
// level, a boxed light grey one for ERROR and a boxed peach one for
// CRITICAL. Colors follow the renderer's profile; nil means the lipgloss
// default renderer.
func DefaultDispatcher(r *lipgloss.Renderer, s Styles) *Dispatcher {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if s.ErrorBackground == "" {
		s.ErrorBackground = ErrorBackground
	}
	if s.CriticalBackground == "" {
		s.CriticalBackground = CriticalBackground
	}

	base := NewTemplate(s.Pattern)
	box := r.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Foreground(lipgloss.Color("0"))

	return NewDispatcher(base, map[level.Level]Template{
		level.Error: base.Styled(box.
			Background(lipgloss.Color(s.ErrorBackground)).
			BorderForeground(lipgloss.Color("245"))),
		level.Critical: base.Styled(box.
			Bold(true).
			Background(lipgloss.Color(s.CriticalBackground)).
			BorderForeground(lipgloss.Color("208"))),
	})
}
