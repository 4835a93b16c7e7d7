package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View is the content of one tile with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Resizable is implemented by views that want to know their tile's inner
// content size. The workspace calls it whenever bounds change.
type Resizable interface {
	SetSize(width, height int)
}
