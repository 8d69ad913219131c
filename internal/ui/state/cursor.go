package state

// MoveUp steps the cursor backwards, wrapping from the first entry to the
// last and skipping separators.
func (m *Menu) MoveUp() bool {
	return m.step(-1)
}

// MoveDown steps the cursor forwards, wrapping from the last entry to the
// first and skipping separators.
func (m *Menu) MoveDown() bool {
	return m.step(1)
}

// SelectAt moves the cursor to index when it addresses a selectable entry.
// It reports false and leaves the cursor alone otherwise.
func (m *Menu) SelectAt(index int) bool {
	if !m.Selectable(index) {
		return false
	}
	m.Cursor = index
	return true
}

// step terminates because NewMenu guarantees a selectable entry.
func (m *Menu) step(delta int) bool {
	n := len(m.Entries)
	old := m.Cursor
	for {
		m.Cursor = (m.Cursor + delta + n) % n
		if !m.Entries[m.Cursor].IsSeparator() {
			break
		}
	}
	return m.Cursor != old
}
