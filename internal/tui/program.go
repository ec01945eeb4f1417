package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the advanced calculator TUI and blocks until the user quits.
func Run(precision int) error {
	p := tea.NewProgram(NewModel(precision), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}
