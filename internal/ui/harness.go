package ui

import tea "charm.land/bubbletea/v2"

// Harness drives the UI model programmatically for tests. Commands are not
// executed automatically because poll ticks re-arm themselves; use Run to
// resolve a single command.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model and renders the first
// frame so hit-testing has a viewport.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.View()
	}
	return h
}

// Send routes a message through the model, renders the resulting frame and
// returns the command Update produced.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.model.View()
	return cmd
}

// Run executes cmd once, feeds its message back through Send and returns the
// message together with the follow-up command.
func (h *Harness) Run(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	if cmd == nil {
		return nil, nil
	}
	msg := cmd()
	if msg == nil {
		return nil, nil
	}
	return msg, h.Send(msg)
}

// View returns the current frame as text.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	content, _ := h.model.render()
	return content
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
