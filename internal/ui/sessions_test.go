package ui

import (
	"errors"
	"strings"
	"testing"

	"dockpanel/internal/tmux"
)

// stubLister fakes the tmux server.
type stubLister struct {
	sessions []tmux.Session
	err      error
}

func (s *stubLister) ListSessions() ([]tmux.Session, error) {
	return s.sessions, s.err
}

func TestSessionsView_ListsSessions(t *testing.T) {
	v := NewSessionsView(&stubLister{sessions: []tmux.Session{{Name: "dev"}, {Name: "scratch"}}})

	msg := v.load()
	loaded, ok := msg.(SessionsLoadedMsg)
	if !ok {
		t.Fatalf("load returned %T", msg)
	}
	view, _ := v.Update(loaded)
	out := view.View()
	if !strings.Contains(out, "dev") || !strings.Contains(out, "scratch") {
		t.Errorf("sessions missing from view:\n%s", out)
	}
}

func TestSessionsView_ShowsError(t *testing.T) {
	v := NewSessionsView(&stubLister{err: errors.New("no server running")})
	msg := v.load()
	view, _ := v.Update(msg.(SessionsLoadedMsg))
	if !strings.Contains(view.View(), "no server running") {
		t.Errorf("error missing from view: %s", view.View())
	}
}

func TestSessionsView_NilListerUnavailable(t *testing.T) {
	v := NewSessionsView(nil)
	msg := v.load()
	view, _ := v.Update(msg.(SessionsLoadedMsg))
	if !strings.Contains(view.View(), "tmux unavailable") {
		t.Errorf("expected unavailable message, got %s", view.View())
	}
}

func TestSessionsView_EmptyList(t *testing.T) {
	v := NewSessionsView(&stubLister{})
	msg := v.load()
	view, _ := v.Update(msg.(SessionsLoadedMsg))
	if !strings.Contains(view.View(), "no tmux sessions") {
		t.Errorf("expected empty message, got %s", view.View())
	}
}
