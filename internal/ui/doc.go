// Package ui contains the Bubble Tea program that powers the launcher menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse clicks, poll ticks, launch results).
//   - A poll tick is re-armed every DefaultPollInterval while browsing so the
//     frame is redrawn even without input. Only the most recently armed tick
//     counts; ticks are not re-armed while a launched program runs.
//
// State ownership:
//   - The entry list and cursor live in internal/ui/state.Menu, which keeps the
//     cursor off separators.
//   - View records the rectangle of each rendered frame; mouse presses are
//     hit-tested against that rectangle only.
//
// Phases:
//
//	Browsing -> Committed -> Launching -> Browsing
//
// Committing a quit entry ends the program, committing an entry without a
// known program returns straight to Browsing, and committing a launch hands
// an *exec.Cmd to the command bus. The bus uses tea.ExecProcess so the
// terminal leaves raw mode and the alternate screen before the program runs
// and is restored once it exits.
package ui
