package ui

import "dockpanel/internal/panel"

// Tile hosts a View and carries the display state of its panel. It is the
// panel.Surface implementation: the panel shows and hides the tile when the
// collapse-on-minimize flag is in effect.
type Tile struct {
	ID    string
	Title string
	View  View
	Panel *panel.Panel

	hidden bool
}

// Ensure Tile satisfies the visibility contract panels drive.
var _ panel.Surface = (*Tile)(nil)

// NewTile wires a tile to its panel as the panel's surface.
func NewTile(id, title string, v View, p *panel.Panel) *Tile {
	t := &Tile{ID: id, Title: title, View: v, Panel: p}
	p.SetSurface(t)
	return t
}

// SetVisible implements panel.Surface.
func (t *Tile) SetVisible(visible bool) {
	t.hidden = !visible
}

// Visible reports whether the tile should be rendered at all. A tile hidden
// by collapse-on-minimize disappears from the workspace entirely.
func (t *Tile) Visible() bool {
	return !t.hidden
}
