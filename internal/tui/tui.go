package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunAgendaTUI starts the interactive agenda browser on date (storage
// form).
func RunAgendaTUI(date string) error {
	model := NewAgendaModel(date)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
