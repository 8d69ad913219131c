package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tuibian/internal/logging/events"
	"github.com/atomicstack/tuibian/internal/menu"
	"github.com/atomicstack/tuibian/internal/ui/command"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Commit key.Binding
}

// Enter and Escape both commit the entry under the cursor.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "choose"),
		),
	}
}

const (
	sourceKey   = "key"
	sourceMouse = "mouse"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if m.phase != PhaseBrowsing {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursorUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursorDown()
	case key.Matches(keyMsg, m.keys.Commit):
		return m.commit(sourceKey)
	}
	return nil
}

func (m *Model) moveCursorUp() {
	if m.menu.MoveUp() {
		events.UI.MenuCursor(m.menu.Cursor, m.menu.Current().Label)
	}
}

func (m *Model) moveCursorDown() {
	if m.menu.MoveDown() {
		events.UI.MenuCursor(m.menu.Cursor, m.menu.Current().Label)
	}
}

// commit fixes the entry under the cursor and dispatches its action.
func (m *Model) commit(source string) tea.Cmd {
	entry := m.menu.Current()
	m.committed = &entry
	m.phase = PhaseCommitted
	events.UI.Commit(m.menu.Cursor, entry.Label, entry.Action.Kind.String(), source)

	switch entry.Action.Kind {
	case menu.ActionQuit:
		events.Command.Quit(entry.Label)
		return tea.Quit
	case menu.ActionLaunch:
		cmd := m.bus.Execute(command.Request{Label: entry.Label, Action: entry.Action})
		if cmd == nil {
			m.phase = PhaseBrowsing
			return nil
		}
		m.phase = PhaseLaunching
		return cmd
	default:
		events.Command.NoOp(entry.Label, m.registry.Suggest(entry.Label))
		m.phase = PhaseBrowsing
		return nil
	}
}

func (m *Model) handleFinishedMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(command.FinishedMsg)
	if !ok {
		return nil
	}
	if m.phase != PhaseLaunching {
		return nil
	}
	if done.Err != nil {
		m.err = done.Err
		return tea.Quit
	}
	m.phase = PhaseBrowsing
	return m.pollCmd()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
