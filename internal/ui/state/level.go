package state

import (
	"fmt"

	"github.com/atomicstack/tuibian/internal/menu"
)

// Menu holds the fixed entry list and the cursor. The entry under Cursor is
// never a separator.
type Menu struct {
	Entries []menu.Entry
	Cursor  int
}

// NewMenu constructs a Menu with the cursor on the first selectable entry.
// A list without any selectable entry cannot hold a valid cursor and is a
// programming error.
func NewMenu(entries []menu.Entry) *Menu {
	if !menu.HasSelectable(entries) {
		panic(fmt.Sprintf("state: menu needs at least one selectable entry (got %d entries)", len(entries)))
	}
	m := &Menu{Entries: menu.CloneEntries(entries)}
	for i, entry := range m.Entries {
		if !entry.IsSeparator() {
			m.Cursor = i
			break
		}
	}
	return m
}

// Current returns the entry under the cursor.
func (m *Menu) Current() menu.Entry {
	return m.Entries[m.Cursor]
}

// Selectable reports whether index addresses an entry the cursor may hold.
func (m *Menu) Selectable(index int) bool {
	if index < 0 || index >= len(m.Entries) {
		return false
	}
	return !m.Entries[index].IsSeparator()
}
