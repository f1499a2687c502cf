// Package tui implements the interactive portfolio dashboard.
package tui

import (
	"context"
	"fmt"

	"github.com/joshsymonds/hoard/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx is done.
func Run(ctx context.Context, storage service.Storage) error {
	if storage == nil {
		return fmt.Errorf("storage is required")
	}

	program := tea.NewProgram(
		newModel(Config{Storage: storage}),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
