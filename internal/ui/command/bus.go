package command

import (
	"errors"
	"fmt"
	"os/exec"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tuibian/internal/logging/events"
	"github.com/atomicstack/tuibian/internal/menu"
)

// Runner hands a prepared process to whoever owns the terminal. The default
// is tea.ExecProcess, which leaves the alternate screen, restores cooked mode
// and disables mouse reporting for the lifetime of the child, then restores
// all of it before fn is delivered.
type Runner func(c *exec.Cmd, fn tea.ExecCallback) tea.Cmd

// Request encapsulates a launch.
type Request struct {
	Label  string
	Action menu.Action
}

// FinishedMsg reports that a launched program is gone. Err is set only when
// the program could not be run at all; a non-zero exit status is reported
// through ExitCode.
type FinishedMsg struct {
	Label    string
	ExitCode int
	Err      error
}

// Bus turns committed menu actions into Bubble Tea commands.
type Bus struct {
	run Runner
}

// New initialises a command bus. A nil runner selects tea.ExecProcess.
func New(run Runner) *Bus {
	if run == nil {
		run = tea.ExecProcess
	}
	return &Bus{run: run}
}

// Execute wraps a launch action into a Bubble Tea command while emitting
// trace logs. Requests that are not launches yield nil.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.Action.Kind != menu.ActionLaunch || req.Action.Program == "" {
		return nil
	}
	events.Command.Queue(req.Label, req.Action.Program, req.Action.Args)
	c := exec.Command(req.Action.Program, req.Action.Args...)
	label := req.Label
	return b.run(c, func(err error) tea.Msg {
		return finished(label, err)
	})
}

func finished(label string, err error) FinishedMsg {
	msg := FinishedMsg{Label: label}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		msg.ExitCode = exitErr.ExitCode()
	default:
		msg.ExitCode = -1
		msg.Err = fmt.Errorf("launch %s: %w", label, err)
	}
	events.Command.Result(label, msg.ExitCode, msg.Err)
	return msg
}
