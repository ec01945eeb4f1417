// Package styles centralizes lipgloss styling for the calculator utilities.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	// TitleStyle renders the program banner.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// MenuStyle renders menu option lines.
	MenuStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	// ResultStyle renders the final result line.
	ResultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	// ErrorStyle renders domain and input errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// BoldStyle is a plain bold style for emphasis.
	BoldStyle = lipgloss.NewStyle().Bold(true)
)

var enabled = true

// Init enables or disables styling based on the configured color mode
// ("auto", "always", "never"). NO_COLOR always wins for auto.
func Init(mode string) {
	switch mode {
	case "never":
		enabled = false
	case "always":
		enabled = true
	default:
		enabled = os.Getenv("NO_COLOR") == ""
	}
}

// Enabled reports whether styled rendering is active.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// RenderTitle renders a program banner line.
func RenderTitle(text string) string {
	return render(TitleStyle, text)
}

// RenderMenu renders a menu option line.
func RenderMenu(text string) string {
	return render(MenuStyle, text)
}

// RenderResult renders a computed result line.
func RenderResult(text string) string {
	return render(ResultStyle, text)
}

// RenderError renders an error line.
func RenderError(text string) string {
	return render(ErrorStyle, text)
}
