package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmcode/skillready/pkg/analyzer"
)

func Start(a *analyzer.Analyzer, delay time.Duration) error {
	program := tea.NewProgram(NewModel(a, delay), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
