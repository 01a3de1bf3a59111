package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/prefs"
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Repo      Repository
	Prefs     prefs.Prefs
	PrefsPath string
	LogPath   string // shown by the log view
}

// Run starts the terminal UI and blocks until it exits or the context ends.
func Run(opts Options) error {
	if opts.Repo == nil {
		return fmt.Errorf("ui: repository is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.closeScreen()
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
