// Package activity carries panel transition events to the activity panel.
package activity

import (
	"fmt"
	"time"

	"dockpanel/internal/panel"
)

// Event records one panel state transition.
type Event struct {
	Panel     int    // panel index
	Title     string // panel title, for display
	To        panel.State
	Timestamp time.Time
}

// String renders the event as one feed line.
func (e Event) String() string {
	return fmt.Sprintf("%s  %s → %s", e.Timestamp.Format("15:04:05"), e.Title, e.To)
}

// ChanEmitter emits events to a channel for the activity view to consume.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; drop to keep transitions non-blocking
	}
}

// Watch registers transition listeners on p that emit one event per actual
// transition. Listener order follows registration order, so telemetry or
// other observers registered earlier fire first.
func (e *ChanEmitter) Watch(p *panel.Panel, title string) {
	p.OnMaximized(func() {
		e.Emit(Event{Panel: p.Index, Title: title, To: panel.Maximized})
	})
	p.OnMinimized(func() {
		e.Emit(Event{Panel: p.Index, Title: title, To: panel.Minimized})
	})
	p.OnRestored(func() {
		e.Emit(Event{Panel: p.Index, Title: title, To: panel.Restored})
	})
}
