package nav

// Stack is the back-navigation history. The top is the current screen.
type Stack struct {
	items []Route
}

// Push makes r the current screen.
func (s *Stack) Push(r Route) {
	s.items = append(s.items, r)
}

// Pop removes the current screen. It reports false on an empty stack.
func (s *Stack) Pop() (Route, bool) {
	if len(s.items) == 0 {
		return Route{}, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Top is the current screen.
func (s Stack) Top() (Route, bool) {
	if len(s.items) == 0 {
		return Route{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len is the history depth.
func (s Stack) Len() int {
	return len(s.items)
}

// Routes returns the history bottom first.
func (s Stack) Routes() []Route {
	return append([]Route(nil), s.items...)
}

// Replace swaps the top entry, or pushes when the stack is empty.
func (s *Stack) Replace(r Route) {
	if len(s.items) == 0 {
		s.items = append(s.items, r)
		return
	}
	s.items[len(s.items)-1] = r
}

// PopUpTo pops entries above the topmost route of the given kind, and that
// route too when inclusive. It reports whether such a route was found; the
// stack is untouched otherwise.
func (s *Stack) PopUpTo(kind Kind, inclusive bool) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Kind != kind {
			continue
		}
		if inclusive {
			s.items = s.items[:i]
		} else {
			s.items = s.items[:i+1]
		}
		return true
	}
	return false
}
