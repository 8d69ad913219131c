package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tuibian/internal/theme"
	uistate "github.com/atomicstack/tuibian/internal/ui/state"
)

const (
	menuTitle      = "──┤ Tuibian ├──"
	selectedPrefix = "> "
	itemPrefix     = "  "
)

// View implements tea.Model. Rendering records the frame rectangle so mouse
// presses are hit-tested against what the user actually sees.
func (m *Model) View() tea.View {
	content, rect := m.render()
	m.viewport = rect
	v := tea.NewView(content)
	v.AltScreen = true
	if m.mouse {
		v.MouseMode = tea.MouseModeCellMotion
	}
	return v
}

// render draws the bordered, titled list and returns the rectangle it
// occupies. The frame fills the known terminal size; before the first size
// message it shrinks to fit its content.
func (m *Model) render() (string, uistate.Rect) {
	width, height := m.frameSize()
	inner := width - 2
	border := theme.BorderGlyphs

	lines := make([]string, 0, height)
	lines = append(lines, m.topBorder(inner))
	side := renderStyled(styles.Border, border.Left)
	rightSide := renderStyled(styles.Border, border.Right)
	for row := 0; row < height-2; row++ {
		lines = append(lines, side+m.buildRow(row, inner)+rightSide)
	}
	bottom := border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight
	lines = append(lines, renderStyled(styles.Border, bottom))

	return strings.Join(lines, "\n"), uistate.Rect{X: 0, Y: 0, Width: width, Height: height}
}

func (m *Model) topBorder(inner int) string {
	border := theme.BorderGlyphs
	title := menuTitle
	if ansi.StringWidth(title) > inner {
		title = ansi.Truncate(title, inner, "")
	}
	fill := inner - ansi.StringWidth(title)
	if fill < 0 {
		fill = 0
	}
	return renderStyled(styles.Border, border.TopLeft) +
		renderStyled(styles.Title, title) +
		renderStyled(styles.Border, strings.Repeat(border.Top, fill)+border.TopRight)
}

// buildRow renders list row idx padded to width cells. Rows past the end of
// the list are blank.
func (m *Model) buildRow(idx, width int) string {
	if width <= 0 {
		return ""
	}
	text := ""
	style := styles.Item
	if idx < len(m.menu.Entries) {
		entry := m.menu.Entries[idx]
		switch {
		case entry.IsSeparator():
			style = styles.Separator
		case idx == m.menu.Cursor:
			text = selectedPrefix + entry.Label
			style = styles.SelectedItem
		default:
			text = itemPrefix + entry.Label
		}
	}
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width, "…")
	}
	pad := width - ansi.StringWidth(text)
	return renderStyled(style, text) + strings.Repeat(" ", pad)
}

// frameSize returns the frame dimensions, never smaller than a bare border.
func (m *Model) frameSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = m.contentWidth() + 2
	}
	if height <= 0 {
		height = len(m.menu.Entries) + 2
	}
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	return width, height
}

func (m *Model) contentWidth() int {
	widest := ansi.StringWidth(menuTitle)
	for _, entry := range m.menu.Entries {
		if w := ansi.StringWidth(selectedPrefix + entry.Label); w > widest {
			widest = w
		}
	}
	return widest
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
