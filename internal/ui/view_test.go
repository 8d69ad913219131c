package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tuibian/internal/menu"
	"github.com/atomicstack/tuibian/internal/testutil"
)

func plainFrame(h *Harness) string {
	return ansi.Strip(h.View()) + "\n"
}

func TestViewGoldenInitialFrame(t *testing.T) {
	h := newTestHarness(t, &fakeLauncher{})
	testutil.AssertGolden(t, "menu_20x8.golden", plainFrame(h))
}

func TestViewGoldenCursorOnQuit(t *testing.T) {
	h := NewHarness(NewModel(menu.DefaultEntries(), 20, 10, true, 0, nil))
	h.Send(keyPress(tea.KeyUp))
	testutil.AssertGolden(t, "menu_20x10_quit.golden", plainFrame(h))
}

func TestViewRecordsViewport(t *testing.T) {
	h := newTestHarness(t, &fakeLauncher{})
	got := h.Model().Viewport()
	if got.X != 0 || got.Y != 0 || got.Width != 20 || got.Height != 8 {
		t.Fatalf("unexpected viewport %+v", got)
	}
}

func TestViewFitsContentWithoutSize(t *testing.T) {
	h := NewHarness(NewModel(menu.DefaultEntries(), 0, 0, true, 0, nil))
	lines := strings.Split(ansi.Strip(h.View()), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	want := ansi.StringWidth(menuTitle) + 2
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != want {
			t.Fatalf("line %d width %d, want %d: %q", i, w, want, line)
		}
	}
}

func TestViewTruncatesNarrowFrames(t *testing.T) {
	h := NewHarness(NewModel(menu.DefaultEntries(), 8, 8, true, 0, nil))
	lines := strings.Split(ansi.Strip(h.View()), "\n")
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 8 {
			t.Fatalf("line %d width %d, want 8: %q", i, w, line)
		}
	}
	if !strings.Contains(lines[2], "…") {
		t.Fatalf("expected truncated fmtui row, got %q", lines[2])
	}
}

func TestViewModes(t *testing.T) {
	withMouse := NewModel(menu.DefaultEntries(), 20, 8, true, 0, nil).View()
	if !withMouse.AltScreen {
		t.Fatalf("expected alternate screen")
	}
	if withMouse.MouseMode != tea.MouseModeCellMotion {
		t.Fatalf("expected cell motion mouse mode")
	}
	withoutMouse := NewModel(menu.DefaultEntries(), 20, 8, false, 0, nil).View()
	if withoutMouse.MouseMode != tea.MouseModeNone {
		t.Fatalf("expected mouse reporting off")
	}
}
