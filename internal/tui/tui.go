package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfigueiredo/tarefa/internal/config"
	"github.com/mfigueiredo/tarefa/internal/store"
)

// RunListTUI starts the interactive task list
func RunListTUI(st *store.Store, cfg *config.Config) error {
	model := NewListModel(st, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunAddTUI starts the interactive add task wizard
func RunAddTUI(st *store.Store, cfg *config.Config, prefilled map[string]string) error {
	model := NewAddModel(st, cfg, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	if m, ok := finalModel.(AddModel); ok {
		if m.cancelled {
			fmt.Println("❌ Task creation cancelled.")
		} else if m.completed {
			fmt.Printf("✅ New task \"%s\" added\n", m.createdText)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
