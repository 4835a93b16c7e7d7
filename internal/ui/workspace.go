package ui

import (
	"strings"

	"dockpanel/internal/panel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// CollapseChangedMsg is sent when the collapse-on-minimize flag changes at
// runtime (config reload).
type CollapseChangedMsg struct {
	Collapse bool
}

// ToggleCollapseMsg flips the collapse-on-minimize flag (keybind).
type ToggleCollapseMsg struct{}

// rect is a tile's placement in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Workspace is the root model. It arranges tiles side by side, renders the
// top maximized tile over the full area, keeps minimized tiles in a tray,
// and routes input to the focused tile's content view.
type Workspace struct {
	Tiles      []*Tile
	Stack      *panel.Stack
	Focus      *FocusManager
	KeyHandler *KeyHandler

	width  int
	height int
	// captured routes raw keystrokes to the focused tile's content
	// (entered with "i" on a KeyCapturer view, left with esc)
	captured bool
	// bounds of each tile's last render, by tile ID, for mouse hit-testing
	bounds map[string]rect
}

// KeyCapturer marks views that consume raw keystrokes (e.g. a shell).
// Workspace shortcuts step aside for them while capture mode is active.
type KeyCapturer interface {
	CapturesKeys() bool
}

var _ tea.Model = (*Workspace)(nil)

// NewWorkspace creates a workspace over the given tiles. Focus starts on
// the first tile.
func NewWorkspace(stack *panel.Stack, tiles []*Tile, keyHandler *KeyHandler) *Workspace {
	order := make([]string, 0, len(tiles))
	for _, t := range tiles {
		order = append(order, t.ID)
	}
	focus := &FocusManager{Order: order}
	if len(order) > 0 {
		focus.Current = order[0]
	}
	return &Workspace{
		Tiles:      tiles,
		Stack:      stack,
		Focus:      focus,
		KeyHandler: keyHandler,
		bounds:     make(map[string]rect),
	}
}

// Focused returns the tile holding focus, or nil.
func (w *Workspace) Focused() *Tile {
	return w.tileByID(w.Focus.Current)
}

func (w *Workspace) tileByID(id string) *Tile {
	for _, t := range w.Tiles {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Init implements tea.Model.
func (w *Workspace) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range w.Tiles {
		if t.View != nil {
			cmds = append(cmds, t.View.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (w *Workspace) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.resizeContent()
		return w, nil

	case CollapseChangedMsg:
		w.setCollapse(msg.Collapse)
		return w, nil

	case ToggleCollapseMsg:
		w.setCollapse(!w.Stack.CollapseOnMinimize)
		return w, nil

	case tea.MouseMsg:
		return w, w.handleMouse(msg)

	case tea.KeyMsg:
		if w.captured {
			if msg.String() == "esc" {
				w.captured = false
				return w, nil
			}
			if t := w.Focused(); t != nil && t.View != nil {
				v, cmd := t.View.Update(msg)
				t.View = v
				return w, cmd
			}
			w.captured = false
			return w, nil
		}
		if w.KeyHandler != nil {
			if consumed, cmd := w.KeyHandler.Handle(msg); consumed {
				return w, cmd
			}
		}
		switch msg.String() {
		case "tab":
			w.Focus.Next()
			return w, nil
		case "shift+tab":
			w.Focus.Prev()
			return w, nil
		case "enter":
			// Title-bar toggle on the focused panel
			if t := w.Focused(); t != nil {
				t.Panel.Toggle()
			}
			return w, nil
		case "m":
			if t := w.Focused(); t != nil {
				t.Panel.Maximize()
			}
			return w, nil
		case "n":
			if t := w.Focused(); t != nil {
				t.Panel.Minimize()
			}
			return w, nil
		case "r":
			if t := w.Focused(); t != nil {
				t.Panel.Restore()
			}
			return w, nil
		case "i":
			if t := w.Focused(); t != nil {
				if kc, ok := t.View.(KeyCapturer); ok && kc.CapturesKeys() {
					w.captured = true
				}
			}
			return w, nil
		}
		// Unconsumed keys go to the focused tile's content
		if t := w.Focused(); t != nil && t.View != nil {
			v, cmd := t.View.Update(msg)
			t.View = v
			return w, cmd
		}
		return w, nil
	}

	// Everything else (content messages, ticks) fans out to all tiles so
	// background panels keep streaming.
	var cmds []tea.Cmd
	for _, t := range w.Tiles {
		if t.View == nil {
			continue
		}
		v, cmd := t.View.Update(msg)
		t.View = v
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return w, tea.Batch(cmds...)
}

// setCollapse flips the stack flag. Turning collapse off brings hidden
// surfaces back: minimized panels fall into the tray instead.
func (w *Workspace) setCollapse(collapse bool) {
	w.Stack.CollapseOnMinimize = collapse
	if !collapse {
		for _, t := range w.Tiles {
			t.SetVisible(true)
		}
		return
	}
	for _, t := range w.Tiles {
		if t.Panel.State() == panel.Minimized {
			t.SetVisible(false)
		}
	}
}

// handleMouse focuses the clicked tile; a click on the title-bar toggle
// glyph maximizes or restores, per the panel's current state.
func (w *Workspace) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	for _, t := range w.Tiles {
		r, ok := w.bounds[t.ID]
		if !ok || !r.contains(msg.X, msg.Y) {
			continue
		}
		w.Focus.SetFocus(t.ID)
		if toggleRect(r).contains(msg.X, msg.Y) {
			t.Panel.Toggle()
		}
		return nil
	}
	return nil
}

// toggleRect is the clickable glyph region at the right end of a tile's
// title row (first row inside the border).
func toggleRect(r rect) rect {
	return rect{x: r.x + r.w - 5, y: r.y + 1, w: 4, h: 1}
}

// View implements tea.Model.
func (w *Workspace) View() string {
	if w.width == 0 || w.height == 0 {
		return "loading…"
	}
	w.bounds = make(map[string]rect)

	footer := w.footer()
	bodyHeight := w.height - lipgloss.Height(footer)

	var body string
	if top := w.topMaximized(); top != nil {
		r := rect{x: 0, y: 0, w: w.width, h: bodyHeight}
		w.bounds[top.ID] = r
		body = w.renderTile(top, r)
	} else {
		body = w.renderTiled(bodyHeight)
	}
	return body + "\n" + footer
}

// topMaximized returns the visible maximized tile with the highest z-order
// token, or nil when no panel is maximized.
func (w *Workspace) topMaximized() *Tile {
	var top *Tile
	for _, t := range w.Tiles {
		if !t.Visible() || t.Panel.State() != panel.Maximized {
			continue
		}
		if top == nil || t.Panel.Z() > top.Panel.Z() {
			top = t
		}
	}
	return top
}

// renderTiled lays restored tiles side by side and minimized ones in a
// one-line tray under them.
func (w *Workspace) renderTiled(height int) string {
	var restored, tray []*Tile
	for _, t := range w.Tiles {
		if !t.Visible() {
			continue
		}
		switch t.Panel.State() {
		case panel.Minimized:
			tray = append(tray, t)
		default:
			restored = append(restored, t)
		}
	}

	trayLine := ""
	tileHeight := height
	if len(tray) > 0 {
		entries := make([]string, 0, len(tray))
		for _, t := range tray {
			entries = append(entries, Styles.Tray.Render("▁ "+t.Title))
		}
		trayLine = strings.Join(entries, Styles.Muted.Render(" │ "))
		tileHeight = height - 1
	}

	if len(restored) == 0 {
		empty := Styles.Muted.Render("all panels minimized")
		if trayLine != "" {
			return lipgloss.Place(w.width, tileHeight, lipgloss.Center, lipgloss.Center, empty) + "\n" + trayLine
		}
		return lipgloss.Place(w.width, tileHeight, lipgloss.Center, lipgloss.Center, empty)
	}

	tileWidth := w.width / len(restored)
	cols := make([]string, 0, len(restored))
	x := 0
	for i, t := range restored {
		tw := tileWidth
		if i == len(restored)-1 {
			tw = w.width - x // last tile absorbs the remainder
		}
		r := rect{x: x, y: 0, w: tw, h: tileHeight}
		w.bounds[t.ID] = r
		cols = append(cols, w.renderTile(t, r))
		x += tw
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if trayLine == "" {
		return row
	}
	return row + "\n" + trayLine
}

// renderTile draws one tile's chrome: border, title bar with toggle glyph,
// content below.
func (w *Workspace) renderTile(t *Tile, r rect) string {
	focused := w.Focus.Current == t.ID

	box := Styles.Box
	title := Styles.Title
	if focused {
		box = Styles.BoxFocused
		title = Styles.TitleFocused
	}

	innerWidth := r.w - 2 // border
	glyph := "[□]"
	if t.Panel.IsMaximized() {
		glyph = "[❐]"
	}
	glyph = Styles.ToggleButton.Render(glyph)

	name := truncate.StringWithTail(t.Title, uint(max(innerWidth-5, 1)), "…")
	pad := innerWidth - lipgloss.Width(name) - 4
	if pad < 0 {
		pad = 0
	}
	titleBar := title.Render(name) + strings.Repeat(" ", pad) + glyph + " "

	content := ""
	if t.View != nil {
		content = t.View.View()
	}
	inner := lipgloss.NewStyle().
		Width(innerWidth).
		Height(r.h - 3). // border + title row
		MaxWidth(innerWidth).
		Render(content)

	return box.Render(titleBar + "\n" + inner)
}

// footer renders the persistent hint line plus the leader-key help box
// while the handler is waiting.
func (w *Workspace) footer() string {
	if w.captured {
		return Styles.Hint.Render("typing into panel · esc to leave")
	}
	hints := Styles.Hint.Render("tab focus · enter toggle · m maximize · n minimize · r restore · i type · SPC keys · q quit")
	if w.KeyHandler != nil && w.KeyHandler.LeaderWaiting {
		return hints + "\n" + RenderKeybindHelp(w.KeyHandler)
	}
	return hints
}

// resizeContent pushes new inner sizes into tiles whose views care.
func (w *Workspace) resizeContent() {
	visible := 0
	for _, t := range w.Tiles {
		if t.Visible() && t.Panel.State() != panel.Minimized {
			visible++
		}
	}
	if visible == 0 {
		visible = 1
	}
	tileWidth := w.width / visible
	for _, t := range w.Tiles {
		rs, ok := t.View.(Resizable)
		if !ok {
			continue
		}
		if t.Panel.IsMaximized() {
			rs.SetSize(w.width-2, w.height-5)
		} else {
			rs.SetSize(tileWidth-2, w.height-5)
		}
	}
}
