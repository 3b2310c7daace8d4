// Package stack tracks the set of service names currently being resolved
// within a single top-level container call. It exists to turn would-be
// infinite recursion into a CycleError carrying the full resolution path.
package stack

// Stack is an ordered set of canonical service names. It is frame-local:
// one Stack per top-level Get/Build call, never shared across goroutines,
// so it needs no locking.
type Stack struct {
	names []string
	index map[string]int
}

// New returns an empty resolution stack.
func New() *Stack {
	return &Stack{
		index: make(map[string]int),
	}
}

// Push adds name to the stack. If name is already present, the stack is left
// unchanged and a CycleError describing the cycle is returned.
func (s *Stack) Push(name string) error {
	if at, ok := s.index[name]; ok {
		return CycleError{
			Name: name,
			Path: append(append([]string(nil), s.names[at:]...), name),
		}
	}

	s.index[name] = len(s.names)
	s.names = append(s.names, name)
	return nil
}

// Pop removes the most recently pushed name. Pushes and pops must pair up;
// popping an empty stack is a programming error and panics.
func (s *Stack) Pop() {
	if len(s.names) == 0 {
		panic("stack: pop on empty resolution stack")
	}

	last := s.names[len(s.names)-1]
	s.names = s.names[:len(s.names)-1]
	delete(s.index, last)
}

// Contains reports whether name is currently being resolved.
func (s *Stack) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Depth returns the number of in-flight resolutions.
func (s *Stack) Depth() int {
	return len(s.names)
}

// Path returns a copy of the in-flight names, outermost first.
func (s *Stack) Path() []string {
	return append([]string(nil), s.names...)
}
