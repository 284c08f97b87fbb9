package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/reports"
	"github.com/zakbeatz/studio/internal/shared"
	"github.com/zakbeatz/studio/internal/ui"
)

// TUI launches the interactive studio dashboard.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := filepath.Join(os.TempDir(), "studio-tui.log")
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(func() (ui.Data, error) {
		artists, err := r.artists.List()
		if err != nil {
			return ui.Data{}, err
		}
		sessions, err := r.sessions.List()
		if err != nil {
			return ui.Data{}, err
		}
		report, err := r.buildReport(reports.Filter{})
		if err != nil {
			return ui.Data{}, err
		}
		return ui.Data{Artists: artists, Sessions: sessions, Report: report}, nil
	})

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
