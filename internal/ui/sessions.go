package ui

import (
	"time"

	"dockpanel/internal/tmux"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// SessionsLoadedMsg carries the result of a session list refresh.
type SessionsLoadedMsg struct {
	Sessions []tmux.Session
	Err      error
}

const sessionsRefreshInterval = 5 * time.Second

// sessionsTickMsg triggers a periodic refresh.
type sessionsTickMsg struct{}

// SessionsView is panel content listing tmux sessions, refreshed on an
// interval. When tmux is unavailable the error is shown in place.
type SessionsView struct {
	lister   tmux.Lister
	sessions []tmux.Session
	err      error
	width    int
	height   int
}

var _ View = (*SessionsView)(nil)
var _ Resizable = (*SessionsView)(nil)

// NewSessionsView creates a sessions view over a lister. A nil lister
// renders as unavailable.
func NewSessionsView(lister tmux.Lister) *SessionsView {
	return &SessionsView{lister: lister, width: 30, height: 10}
}

// Init implements View.
func (s *SessionsView) Init() tea.Cmd {
	return s.load
}

func (s *SessionsView) load() tea.Msg {
	if s.lister == nil {
		return SessionsLoadedMsg{Err: errTmuxUnavailable}
	}
	sessions, err := s.lister.ListSessions()
	return SessionsLoadedMsg{Sessions: sessions, Err: err}
}

// Update implements View.
func (s *SessionsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionsLoadedMsg:
		s.sessions = msg.Sessions
		s.err = msg.Err
		return s, tea.Tick(sessionsRefreshInterval, func(time.Time) tea.Msg {
			return sessionsTickMsg{}
		})
	case sessionsTickMsg:
		return s, s.load
	}
	return s, nil
}

// SetSize implements Resizable.
func (s *SessionsView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// View implements View.
func (s *SessionsView) View() string {
	if s.err != nil {
		return Styles.Muted.Render(truncate.StringWithTail(s.err.Error(), uint(max(s.width, 10)), "…"))
	}
	if len(s.sessions) == 0 {
		return Styles.Muted.Render("no tmux sessions")
	}
	lines := make([]string, 0, len(s.sessions))
	for i, sess := range s.sessions {
		if i >= s.height {
			break
		}
		name := truncate.StringWithTail(sess.Name, uint(max(s.width-2, 4)), "…")
		lines = append(lines, Styles.Normal.Render("• "+name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// errTmuxUnavailable keeps the view total when no lister was wired.
var errTmuxUnavailable = tmuxUnavailableError{}

type tmuxUnavailableError struct{}

func (tmuxUnavailableError) Error() string { return "tmux unavailable" }
