package app

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tuibian/internal/logging/events"
	"github.com/atomicstack/tuibian/internal/menu"
	"github.com/atomicstack/tuibian/internal/ui"
	"github.com/atomicstack/tuibian/internal/ui/command"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	Mouse        bool
	PollInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	return run(cfg, nil, nil)
}

// run lets tests supply the launcher and program options.
func run(cfg Config, runner command.Runner, opts []tea.ProgramOption) error {
	model := ui.NewModel(menu.DefaultEntries(), cfg.Width, cfg.Height, cfg.Mouse, cfg.PollInterval, runner)
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err == nil {
		if m, ok := final.(*ui.Model); ok {
			err = m.Err()
		}
	}
	events.App.Exit(err)
	return err
}
