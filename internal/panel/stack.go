package panel

// Stack is the shared state for all panels of one window: the monotonically
// increasing z-order counter and the collapse-on-minimize flag. One Stack is
// created per window and handed to every panel in it, so multi-window use
// never shares a counter by accident.
//
// Access contract: UI goroutine only, same as Panel.
type Stack struct {
	// CollapseOnMinimize hides a panel's surface entirely on Minimize
	// instead of leaving its title bar in the tray.
	CollapseOnMinimize bool

	counter int
}

// NewStack creates an empty stack. The zero value is also usable.
func NewStack() *Stack {
	return &Stack{}
}

// raise increments the counter and returns the new front-most token.
func (s *Stack) raise() int {
	s.counter++
	return s.counter
}

// Front returns the highest token handed out so far. Zero means no panel
// has ever been raised.
func (s *Stack) Front() int {
	return s.counter
}
