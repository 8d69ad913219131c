package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Border       *lipgloss.Style
	Title        *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Separator    *lipgloss.Style
}

// BorderGlyphs is the rounded border drawn around the menu.
var BorderGlyphs = lipgloss.RoundedBorder()

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle(),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Separator: ptr(
		lipgloss.NewStyle(),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
