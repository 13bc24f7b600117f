package app

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/mdedit/internal/config"
	"github.com/kyaoi/mdedit/internal/ui"
)

// Run executes the Bubble Tea program for the editor.
func Run(ctx context.Context, cfg config.Config, target string) error {
	state, err := LoadInitialState(target)
	if err != nil {
		return err
	}
	return runProgram(ctx, cfg, state)
}

func runProgram(ctx context.Context, cfg config.Config, state ui.State) error {
	model := ui.NewModel(state, ui.OptionsFromConfig(cfg))
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	slog.Info("Editor started", "file", state.ActiveAbsPath)
	_, err := program.Run()
	return err
}
