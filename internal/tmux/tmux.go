// Package tmux lists tmux sessions for the sessions panel via gotmux.
package tmux

import (
	"fmt"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// Session is the subset of tmux session state the UI shows.
type Session struct {
	Name string
}

// Lister enumerates sessions. Swapped for a stub in tests.
type Lister interface {
	ListSessions() ([]Session, error)
}

// Client implements Lister against the local tmux server.
type Client struct {
	tmux *gotmux.Tmux
}

var _ Lister = (*Client)(nil)

// NewClient connects to the default tmux socket. Returns an error when tmux
// is not installed or no server socket exists.
func NewClient() (*Client, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("connecting to tmux: %w", err)
	}
	return &Client{tmux: t}, nil
}

// ListSessions returns all sessions on the server.
func (c *Client) ListSessions() ([]Session, error) {
	sessions, err := c.tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("listing tmux sessions: %w", err)
	}
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, Session{Name: s.Name})
	}
	return out, nil
}
