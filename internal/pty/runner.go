// Package pty spawns processes on a pseudo-terminal for shell panels.
package pty

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns and controls a PTY. Implementations can be swapped
// (creack/pty in production, a mock in tests).
type Runner interface {
	Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// Local implements Runner using github.com/creack/pty.
type Local struct{}

var _ Runner = (*Local)(nil)

// Start spawns cmd in a PTY with the given size. The caller owns the
// returned ReadWriteCloser; closing it tears the session down.
func (Local) Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	return pty.StartWithSize(cmd, ws)
}

// Resize resizes the PTY. The rwc must be the *os.File returned by Start;
// other types are a no-op.
func (Local) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
