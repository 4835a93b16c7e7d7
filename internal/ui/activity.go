package ui

import (
	"strings"

	"dockpanel/internal/activity"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
)

// ActivityMsg delivers one transition event to the activity view.
type ActivityMsg struct {
	Event activity.Event
}

const activityBacklog = 200

// ActivityView is panel content showing the transition feed: every
// maximize, minimize, and restore across the workspace, newest at the
// bottom.
type ActivityView struct {
	ch       <-chan activity.Event
	lines    []string
	viewport viewport.Model
}

var _ View = (*ActivityView)(nil)
var _ Resizable = (*ActivityView)(nil)

// NewActivityView creates a feed over ch. The channel is typically fed by
// an activity.ChanEmitter watching every panel.
func NewActivityView(ch <-chan activity.Event) *ActivityView {
	return &ActivityView{
		ch:       ch,
		viewport: viewport.New(40, 10),
	}
}

// Init implements View.
func (a *ActivityView) Init() tea.Cmd {
	return a.waitForEvent()
}

func (a *ActivityView) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-a.ch
		if !ok {
			return nil
		}
		return ActivityMsg{Event: ev}
	}
}

// Update implements View.
func (a *ActivityView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ActivityMsg:
		a.lines = append(a.lines, msg.Event.String())
		if len(a.lines) > activityBacklog {
			a.lines = a.lines[len(a.lines)-activityBacklog:]
		}
		a.viewport.SetContent(strings.Join(a.lines, "\n"))
		a.viewport.GotoBottom()
		return a, a.waitForEvent()
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// SetSize implements Resizable.
func (a *ActivityView) SetSize(width, height int) {
	a.viewport.Width = width
	a.viewport.Height = height
}

// View implements View.
func (a *ActivityView) View() string {
	if len(a.lines) == 0 {
		return Styles.Muted.Render("no panel activity yet")
	}
	return a.viewport.View()
}
