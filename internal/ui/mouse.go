package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tuibian/internal/logging/events"
)

// handleMouseClickMsg maps a left-button press onto the row under it in the
// last rendered frame and commits that row when it is selectable.
func (m *Model) handleMouseClickMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseClickMsg)
	if !ok {
		return nil
	}
	if !m.mouse || m.phase != PhaseBrowsing {
		return nil
	}
	if ev.Button != tea.MouseLeft {
		events.Mouse.Ignored(ev.X, ev.Y, events.MouseReasonButton)
		return nil
	}
	if !m.viewport.Contains(ev.X, ev.Y) {
		events.Mouse.Ignored(ev.X, ev.Y, events.MouseReasonOutside)
		return nil
	}
	row, ok := m.viewport.RowAt(ev.X, ev.Y)
	if !ok {
		events.Mouse.Ignored(ev.X, ev.Y, events.MouseReasonBorder)
		return nil
	}
	if !m.menu.SelectAt(row) {
		events.Mouse.Ignored(ev.X, ev.Y, events.MouseReasonSeparator)
		return nil
	}
	events.Mouse.Click(ev.X, ev.Y, row)
	return m.commit(sourceMouse)
}
