package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines the styles used for console output.
type Theme struct {
	Name   string
	Pass   lipgloss.Style
	Ignore lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style

	// Plain disables styling entirely. Text is written unchanged.
	Plain bool
}

// DefaultTheme returns the colored theme used on terminals.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Ignore: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:   lipgloss.NewStyle().Bold(true),
	}
}

// PlainTheme returns a theme that emits no escape sequences.
func PlainTheme() Theme {
	return Theme{Name: "plain", Plain: true}
}

// ThemeFor picks the theme for w: plain unless w is a terminal and color
// has not been turned off by noColor or the NO_COLOR environment variable.
func ThemeFor(w io.Writer, noColor bool) Theme {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		return PlainTheme()
	}
	return DefaultTheme()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t Theme) render(style lipgloss.Style, s string) string {
	if t.Plain {
		return s
	}
	return style.Render(s)
}
