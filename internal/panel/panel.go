// Package panel implements the display-state machine behind every dockable
// panel: Restored, Maximized, or Minimized, with transition listeners and a
// shared z-order counter.
//
// All state here is owned by the Bubble Tea update loop and must only be
// touched from that goroutine. No locking is done or needed.
package panel

// State is the display state of a panel.
type State int

const (
	Restored State = iota
	Maximized
	Minimized
)

func (s State) String() string {
	switch s {
	case Restored:
		return "restored"
	case Maximized:
		return "maximized"
	case Minimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// Surface is the visual representation a panel drives. The UI layer
// implements it; a nil Surface is tolerated (all calls become no-ops).
type Surface interface {
	SetVisible(visible bool)
}

// Panel tracks the display state of one dockable surface. New panels start
// Restored. State changes only through Maximize, Minimize, Restore, and
// SetState; every state is reachable from every other.
type Panel struct {
	Index int

	stack       *Stack
	state       State
	isMaximized bool
	z           int
	surface     Surface

	onMaximized []func()
	onMinimized []func()
	onRestored  []func()
}

// New creates a panel in the Restored state, sharing z-order and collapse
// behavior with every other panel on stack.
func New(stack *Stack, index int) *Panel {
	return &Panel{Index: index, stack: stack}
}

// State returns the current display state.
func (p *Panel) State() State { return p.state }

// IsMaximized reports whether the panel is maximized. It is always equal to
// State() == Maximized; it exists separately because toggle controls bind to
// a single boolean.
func (p *Panel) IsMaximized() bool { return p.isMaximized }

// Z returns the panel's z-order token. Higher tokens render on top.
func (p *Panel) Z() int { return p.z }

// SetSurface attaches the visual representation this panel shows and hides.
func (p *Panel) SetSurface(s Surface) { p.surface = s }

// OnMaximized registers fn to run after every transition into Maximized.
// Listeners run synchronously in registration order.
func (p *Panel) OnMaximized(fn func()) { p.onMaximized = append(p.onMaximized, fn) }

// OnMinimized registers fn to run after every transition into Minimized.
func (p *Panel) OnMinimized(fn func()) { p.onMinimized = append(p.onMinimized, fn) }

// OnRestored registers fn to run after every transition into Restored.
func (p *Panel) OnRestored(fn func()) { p.onRestored = append(p.onRestored, fn) }

// Maximize raises the panel to the front and, if it was not already
// maximized, moves it into the Maximized state and fires the Maximized
// listeners once. The raise happens on every call: re-maximizing an
// already-maximized panel still brings it above later-raised panels.
func (p *Panel) Maximize() {
	p.z = p.stack.raise()
	if p.state == Maximized {
		return
	}
	p.state = Maximized
	p.isMaximized = true
	notify(p.onMaximized)
}

// Minimize moves the panel into the Minimized state and fires the Minimized
// listeners once per actual transition. When the stack's collapse-on-minimize
// flag is set, the panel's surface is hidden entirely.
func (p *Panel) Minimize() {
	if p.state == Minimized {
		return
	}
	p.state = Minimized
	p.isMaximized = false
	notify(p.onMinimized)
	if p.stack.CollapseOnMinimize && p.surface != nil {
		p.surface.SetVisible(false)
	}
}

// Restore moves the panel back into the Restored state and fires the
// Restored listeners once per actual transition. When collapse-on-minimize
// is set, the surface is shown again.
func (p *Panel) Restore() {
	if p.state == Restored {
		return
	}
	p.state = Restored
	p.isMaximized = false
	notify(p.onRestored)
	if p.stack.CollapseOnMinimize && p.surface != nil {
		p.surface.SetVisible(true)
	}
}

// SetState dispatches to the transition matching s. Setting the current
// state is a no-op apart from Maximized, which still raises the panel.
func (p *Panel) SetState(s State) {
	switch s {
	case Restored:
		p.Restore()
	case Maximized:
		p.Maximize()
	case Minimized:
		p.Minimize()
	}
}

// Toggle is the title-bar button contract: Restore when maximized,
// Maximize otherwise.
func (p *Panel) Toggle() {
	if p.isMaximized {
		p.Restore()
	} else {
		p.Maximize()
	}
}

func notify(fns []func()) {
	for _, fn := range fns {
		if fn != nil {
			fn()
		}
	}
}
