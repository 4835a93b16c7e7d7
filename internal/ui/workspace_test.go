package ui

import (
	"strings"
	"testing"

	"dockpanel/internal/panel"

	tea "github.com/charmbracelet/bubbletea"
)

// staticView is stub content for workspace tests.
type staticView struct {
	content string
	keys    []string
}

func (v *staticView) Init() tea.Cmd { return nil }
func (v *staticView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		v.keys = append(v.keys, k.String())
	}
	return v, nil
}
func (v *staticView) View() string { return v.content }

// capturerView is a staticView that wants raw keystrokes.
type capturerView struct {
	staticView
}

func (v *capturerView) CapturesKeys() bool { return true }
func (v *capturerView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		v.keys = append(v.keys, k.String())
	}
	return v, nil
}

func newTestWorkspace(n int) (*Workspace, []*Tile) {
	stack := panel.NewStack()
	tiles := make([]*Tile, 0, n)
	names := []string{"alpha", "beta", "gamma", "delta"}
	for i := 0; i < n; i++ {
		p := panel.New(stack, i)
		tiles = append(tiles, NewTile(names[i], strings.ToUpper(names[i]), &staticView{content: names[i]}, p))
	}
	w := NewWorkspace(stack, tiles, NewKeyHandler(NewKeybindRegistry()))
	w.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return w, tiles
}

func TestWorkspace_TabCyclesFocus(t *testing.T) {
	w, _ := newTestWorkspace(3)
	if w.Focus.Current != "alpha" {
		t.Fatalf("initial focus %q", w.Focus.Current)
	}
	w.Update(keyMsg("tab"))
	if w.Focus.Current != "beta" {
		t.Errorf("after tab: focus %q", w.Focus.Current)
	}
	w.Update(keyMsg("shift+tab"))
	if w.Focus.Current != "alpha" {
		t.Errorf("after shift+tab: focus %q", w.Focus.Current)
	}
}

func TestWorkspace_EnterTogglesFocusedPanel(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	w.Update(keyMsg("enter"))
	if tiles[0].Panel.State() != panel.Maximized {
		t.Fatalf("after enter: state %v", tiles[0].Panel.State())
	}
	w.Update(keyMsg("enter"))
	if tiles[0].Panel.State() != panel.Restored {
		t.Fatalf("after second enter: state %v", tiles[0].Panel.State())
	}
}

func TestWorkspace_TransitionKeys(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	w.Update(keyMsg("m"))
	if tiles[0].Panel.State() != panel.Maximized {
		t.Errorf("m: state %v", tiles[0].Panel.State())
	}
	w.Update(keyMsg("n"))
	if tiles[0].Panel.State() != panel.Minimized {
		t.Errorf("n: state %v", tiles[0].Panel.State())
	}
	w.Update(keyMsg("r"))
	if tiles[0].Panel.State() != panel.Restored {
		t.Errorf("r: state %v", tiles[0].Panel.State())
	}
}

func TestWorkspace_MaximizedTileRendersAlone(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	tiles[1].Panel.Maximize()
	out := w.View()
	if !strings.Contains(out, "beta") {
		t.Error("maximized tile content missing")
	}
	if strings.Contains(out, "alpha") {
		t.Error("restored tile should be covered by maximized one")
	}
}

func TestWorkspace_TopMaximizedFollowsZOrder(t *testing.T) {
	w, tiles := newTestWorkspace(3)
	tiles[0].Panel.Maximize()
	tiles[2].Panel.Maximize()
	if top := w.topMaximized(); top != tiles[2] {
		t.Fatalf("expected gamma on top, got %v", top.ID)
	}
	// Re-maximize raises even without a state change
	tiles[0].Panel.Maximize()
	if top := w.topMaximized(); top != tiles[0] {
		t.Fatalf("expected alpha back on top, got %v", top.ID)
	}
}

func TestWorkspace_MinimizedTileInTray(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	tiles[1].Panel.Minimize()
	out := w.View()
	if !strings.Contains(out, "▁ BETA") {
		t.Error("minimized tile missing from tray")
	}
}

func TestWorkspace_CollapseHidesMinimized(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	w.Update(CollapseChangedMsg{Collapse: true})
	tiles[1].Panel.Minimize()
	if tiles[1].Visible() {
		t.Fatal("minimized tile should be hidden with collapse on")
	}
	out := w.View()
	if strings.Contains(out, "BETA") {
		t.Error("hidden tile still rendered")
	}

	tiles[1].Panel.Restore()
	if !tiles[1].Visible() {
		t.Fatal("restored tile should be visible again")
	}
}

func TestWorkspace_CollapseOffRevealsHidden(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	w.Update(CollapseChangedMsg{Collapse: true})
	tiles[0].Panel.Minimize()
	w.Update(CollapseChangedMsg{Collapse: false})
	if !tiles[0].Visible() {
		t.Error("turning collapse off should reveal hidden tiles")
	}
	out := w.View()
	if !strings.Contains(out, "▁ ALPHA") {
		t.Error("revealed tile should sit in the tray")
	}
}

func TestWorkspace_ToggleCollapseMsg(t *testing.T) {
	w, _ := newTestWorkspace(1)
	if w.Stack.CollapseOnMinimize {
		t.Fatal("collapse should start off")
	}
	w.Update(ToggleCollapseMsg{})
	if !w.Stack.CollapseOnMinimize {
		t.Error("toggle should turn collapse on")
	}
}

func TestWorkspace_MouseToggle(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	_ = w.View() // populate bounds

	r, ok := w.bounds["beta"]
	if !ok {
		t.Fatal("no bounds recorded for beta")
	}
	click := tea.MouseMsg{
		X:      r.x + r.w - 3,
		Y:      r.y + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	w.Update(click)
	if w.Focus.Current != "beta" {
		t.Errorf("click should focus beta, got %q", w.Focus.Current)
	}
	if tiles[1].Panel.State() != panel.Maximized {
		t.Fatalf("toggle click: state %v", tiles[1].Panel.State())
	}

	// Click the toggle again on the maximized full-area tile
	_ = w.View()
	r = w.bounds["beta"]
	w.Update(tea.MouseMsg{
		X:      r.x + r.w - 3,
		Y:      r.y + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if tiles[1].Panel.State() != panel.Restored {
		t.Fatalf("second toggle click: state %v", tiles[1].Panel.State())
	}
}

func TestWorkspace_MouseClickBodyFocusesOnly(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	_ = w.View()
	r := w.bounds["beta"]
	w.Update(tea.MouseMsg{
		X:      r.x + 1,
		Y:      r.y + 3,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if w.Focus.Current != "beta" {
		t.Errorf("body click should focus beta, got %q", w.Focus.Current)
	}
	if tiles[1].Panel.State() != panel.Restored {
		t.Errorf("body click should not toggle, state %v", tiles[1].Panel.State())
	}
}

func TestWorkspace_CaptureMode(t *testing.T) {
	stack := panel.NewStack()
	cv := &capturerView{staticView{content: "shell"}}
	tile := NewTile("shell", "Shell", cv, panel.New(stack, 0))
	w := NewWorkspace(stack, []*Tile{tile}, NewKeyHandler(NewKeybindRegistry()))
	w.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	// "m" before capture drives the panel, not the view
	w.Update(keyMsg("m"))
	if tile.Panel.State() != panel.Maximized {
		t.Fatal("m should maximize before capture")
	}
	if len(cv.keys) != 0 {
		t.Fatalf("view saw keys before capture: %v", cv.keys)
	}

	w.Update(keyMsg("i"))
	w.Update(keyMsg("m"))
	w.Update(keyMsg(" "))
	if len(cv.keys) != 2 {
		t.Fatalf("captured keys: %v", cv.keys)
	}
	if tile.Panel.State() != panel.Maximized {
		t.Error("captured m must not change panel state")
	}

	w.Update(keyMsg("esc"))
	w.Update(keyMsg("r"))
	if tile.Panel.State() != panel.Restored {
		t.Error("after esc, r should restore again")
	}
}

func TestWorkspace_ContentMessagesFanOut(t *testing.T) {
	w, tiles := newTestWorkspace(2)
	tiles[1].Panel.Minimize()

	type pingMsg struct{}
	seen := 0
	count := &countingView{seen: &seen}
	tiles[0].View = count
	tiles[1].View = count
	w.Update(pingMsg{})
	if seen != 2 {
		t.Errorf("expected fan-out to all tiles, got %d", seen)
	}
}

// countingView counts non-key messages.
type countingView struct {
	seen *int
}

func (v *countingView) Init() tea.Cmd { return nil }
func (v *countingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		*v.seen++
	}
	return v, nil
}
func (v *countingView) View() string { return "" }
