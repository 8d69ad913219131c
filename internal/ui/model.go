package ui

import (
	"reflect"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tuibian/internal/menu"
	"github.com/atomicstack/tuibian/internal/theme"
	"github.com/atomicstack/tuibian/internal/ui/command"
	uistate "github.com/atomicstack/tuibian/internal/ui/state"
)

// Phase is the interaction state of the menu.
type Phase int

const (
	// PhaseBrowsing accepts cursor movement and commits.
	PhaseBrowsing Phase = iota
	// PhaseCommitted holds the chosen entry until its action is dispatched.
	PhaseCommitted
	// PhaseLaunching lasts while a launched program owns the terminal.
	PhaseLaunching
)

func (p Phase) String() string {
	switch p {
	case PhaseCommitted:
		return "committed"
	case PhaseLaunching:
		return "launching"
	default:
		return "browsing"
	}
}

// DefaultPollInterval bounds how long the loop waits for input before
// rendering again.
const DefaultPollInterval = 200 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the launcher menu.
type Model struct {
	menu      *uistate.Menu
	phase     Phase
	committed *menu.Entry
	viewport  uistate.Rect
	err       error

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	mouse       bool
	poll        time.Duration
	pollSeq     int

	keys     keyMap
	bus      *command.Bus
	registry *menu.Registry

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the menu over entries. width and height pin the frame size
// when positive; mouse enables click selection; a nil runner launches
// programs with tea.ExecProcess.
func NewModel(entries []menu.Entry, width, height int, mouse bool, poll time.Duration, runner command.Runner) *Model {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	m := &Model{
		menu:     uistate.NewMenu(entries),
		phase:    PhaseBrowsing,
		mouse:    mouse,
		poll:     poll,
		keys:     defaultKeyMap(),
		bus:      command.New(runner),
		registry: menu.BuildRegistry(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.pollCmd()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):     m.handleKeyMsg,
		reflect.TypeOf(tea.MouseClickMsg{}):   m.handleMouseClickMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(pollMsg{}):             m.handlePollMsg,
		reflect.TypeOf(command.FinishedMsg{}): m.handleFinishedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// pollMsg fires when a poll interval elapses. Only the most recently armed
// tick is honoured.
type pollMsg struct {
	seq int
}

func (m *Model) pollCmd() tea.Cmd {
	m.pollSeq++
	seq := m.pollSeq
	return tea.Tick(m.poll, func(time.Time) tea.Msg {
		return pollMsg{seq: seq}
	})
}

func (m *Model) handlePollMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(pollMsg)
	if !ok {
		return nil
	}
	if tick.seq != m.pollSeq || m.phase == PhaseLaunching {
		return nil
	}
	return m.pollCmd()
}

// Phase reports the current interaction phase.
func (m *Model) Phase() Phase {
	return m.phase
}

// Cursor reports the index of the highlighted entry.
func (m *Model) Cursor() int {
	return m.menu.Cursor
}

// Committed returns the last committed entry.
func (m *Model) Committed() (menu.Entry, bool) {
	if m.committed == nil {
		return menu.Entry{}, false
	}
	return *m.committed, true
}

// Viewport returns the rectangle occupied by the last rendered frame.
func (m *Model) Viewport() uistate.Rect {
	return m.viewport
}

// Err returns the fatal error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}
