package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPattern renders e.g. "WARNING: [core.parser] could not read file".
const DefaultPattern = "{level}: [{name}] {message}"

// Template is an immutable line pattern with an optional highlight style.
// The placeholders {level}, {name} and {message} are substituted; any other
// brace text is left as written.
type Template struct {
	pattern string
	style   *lipgloss.Style
}

// NewTemplate returns a plain template. An empty pattern means DefaultPattern.
func NewTemplate(pattern string) Template {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return Template{pattern: pattern}
}

// Styled returns a copy of t that renders through s.
func (t Template) Styled(s lipgloss.Style) Template {
	t.style = &s
	return t
}

func (t Template) Pattern() string { return t.pattern }

// IsStyled reports whether the template highlights its output.
func (t Template) IsStyled() bool { return t.style != nil }

// Render substitutes the placeholders and applies the style, if any.
func (t Template) Render(levelName, name, message string) string {
	return t.render(levelName, name, message, 0)
}

func (t Template) render(levelName, name, message string, maxWidth int) string {
	line := strings.NewReplacer(
		"{level}", levelName,
		"{name}", name,
		"{message}", message,
	).Replace(t.pattern)

	if t.style == nil {
		return line
	}
	s := *t.style
	if maxWidth > 0 && lipgloss.Width(line)+s.GetHorizontalFrameSize() > maxWidth {
		if w := maxWidth - s.GetHorizontalBorderSize() - s.GetHorizontalMargins(); w > 0 {
			s = s.Width(w)
		}
	}
	return s.Render(line)
}
