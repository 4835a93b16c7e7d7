package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the workspace
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - focused borders, selected items
	ColorMuted     = "241" // Gray - dimmed text, tray entries
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across tiles and the tray.
var Styles = struct {
	// Title bar styles
	Title        lipgloss.Style // Panel title text
	TitleFocused lipgloss.Style // Title of the focused tile
	ToggleButton lipgloss.Style // The maximize/restore glyph in the title bar

	// Tile chrome
	Box        lipgloss.Style // Tile border (rounded, muted)
	BoxFocused lipgloss.Style // Focused tile border (highlight)

	// Text styles
	Muted  lipgloss.Style // Dimmed text
	Normal lipgloss.Style // Normal text
	Hint   lipgloss.Style // Help/hint footer
	Tray   lipgloss.Style // Minimized panel tray entries
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	ToggleButton: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Tray: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
