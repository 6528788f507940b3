package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuadavidthomas/hostlog/internal/level"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// levelColors mirrors the severity of each level.
var levelColors = map[level.Level]string{
	level.Debug:    "6",
	level.Info:     "2",
	level.Warning:  "3",
	level.Error:    "1",
	level.Critical: "5",
}

// RenderLevel renders a level name in its severity color.
func RenderLevel(l level.Level) string {
	c, ok := levelColors[l]
	if !ok {
		return l.String()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(l.String())
}

func renderBool(v bool) string {
	if v {
		return onStyle.Render("on")
	}
	return offStyle.Render("off")
}

// RenderStatus renders the session status block shown by `hostlog status`.
func RenderStatus(s StatusJSON) string {
	rows := [][2]string{
		{"Addon", s.Addon},
		{"Store", s.Store},
	}
	if s.SessionFile != "" {
		rows = append(rows, [2]string{"Session file", s.SessionFile})
	}
	rows = append(rows,
		[2]string{"Verbose flag", renderBool(s.Flags.Verbose)},
		[2]string{"Debug flag", renderBool(s.Flags.Debug)},
		[2]string{"Forced debug", renderBool(s.ForcedDebug)},
		[2]string{"Runtime default", RenderLevel(s.RuntimeDefault)},
		[2]string{"Level", RenderLevel(s.Level)},
	)

	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Session logging"))
	b.WriteString("\n")
	for _, r := range rows {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, r[0]))
		fmt.Fprintf(&b, "  %s  %s\n", label, r[1])
	}
	return b.String()
}
