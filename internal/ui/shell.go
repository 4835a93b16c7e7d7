package ui

import (
	"bytes"
	"io"
	"os/exec"

	"dockpanel/internal/pty"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
)

// ShellOutputMsg carries bytes read from the PTY for display.
type ShellOutputMsg struct {
	Data []byte
}

// ShellView is PTY-backed panel content: it spawns a shell and passes
// keystrokes through while the panel holds focus. Output accumulates in a
// viewport that follows the bottom.
type ShellView struct {
	ptyRunner pty.Runner
	ptmx      io.ReadWriteCloser
	shell     string
	content   *bytes.Buffer
	viewport  viewport.Model
	width     int
	height    int
	outputCh  chan []byte
}

var _ View = (*ShellView)(nil)
var _ Resizable = (*ShellView)(nil)
var _ KeyCapturer = (*ShellView)(nil)

const defaultShellWidth = 60
const defaultShellHeight = 16

// NewShellView creates a shell view that will spawn shell (falling back to
// sh when empty or not found) on first Init. The runner is injected so
// tests can swap the PTY implementation.
func NewShellView(ptyRunner pty.Runner, shell string) *ShellView {
	return &ShellView{
		ptyRunner: ptyRunner,
		shell:     shell,
		content:   &bytes.Buffer{},
		viewport:  viewport.New(defaultShellWidth, defaultShellHeight),
		width:     defaultShellWidth,
		height:    defaultShellHeight,
		outputCh:  make(chan []byte, 64),
	}
}

// Init implements View. Spawns the shell and starts the PTY read loop.
func (s *ShellView) Init() tea.Cmd {
	shell := "sh"
	if s.shell != "" {
		if path, err := exec.LookPath(s.shell); err == nil {
			shell = path
		}
	}
	cmd := exec.Command(shell)

	sz := pty.Size{Rows: uint16(s.height), Cols: uint16(s.width)}
	ptmx, err := s.ptyRunner.Start(cmd, sz)
	if err != nil {
		s.content.WriteString("failed to spawn shell: " + err.Error() + "\r\n")
		s.refreshViewport()
		return nil
	}
	s.ptmx = ptmx

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				select {
				case s.outputCh <- cp:
				default:
					// Channel full, drop rather than block the reader
				}
			}
			if err != nil {
				close(s.outputCh)
				return
			}
		}
	}()

	return s.waitForOutput()
}

func (s *ShellView) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-s.outputCh
		if !ok {
			return nil
		}
		return ShellOutputMsg{Data: data}
	}
}

// Update implements View.
func (s *ShellView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ShellOutputMsg:
		if s.ptmx != nil {
			s.content.Write(msg.Data)
			s.refreshViewport()
			s.viewport.GotoBottom()
		}
		return s, s.waitForOutput()
	case tea.KeyMsg:
		if s.ptmx != nil {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				s.ptmx.Write(b)
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// SetSize implements Resizable. Resizes both the viewport and the PTY.
func (s *ShellView) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 4 {
		height = 4
	}
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = height
	if s.ptmx != nil && s.ptyRunner != nil {
		s.ptyRunner.Resize(s.ptmx, pty.Size{Rows: uint16(height), Cols: uint16(width)})
	}
	s.refreshViewport()
}

// View implements View.
func (s *ShellView) View() string {
	return s.viewport.View()
}

func (s *ShellView) refreshViewport() {
	s.viewport.SetContent(s.content.String())
}

// CapturesKeys implements KeyCapturer: shells want raw keystrokes.
func (s *ShellView) CapturesKeys() bool { return true }

// Close releases PTY resources.
func (s *ShellView) Close() error {
	if s.ptmx != nil {
		return s.ptmx.Close()
	}
	return nil
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
