package rpn

// stack is a LIFO with a maximum depth. Pushing past the maximum is a
// *LimitError rather than growth without bound.
type stack[T any] struct {
	s    []T
	max  int
	what string
}

func newStack[T any](what string, max, hint int) stack[T] {
	if hint > max {
		hint = max
	}
	return stack[T]{s: make([]T, 0, hint), max: max, what: what}
}

// push adds v to the top of the stack.
func (s *stack[T]) push(v T) error {
	if len(s.s) >= s.max {
		return &LimitError{What: s.what, Max: s.max}
	}
	s.s = append(s.s, v)
	return nil
}

// pop removes the top from the stack and returns it. Panics if the stack is
// empty.
func (s *stack[T]) pop() T {
	r := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (s *stack[T]) top() T {
	return s.s[len(s.s)-1]
}

func (s *stack[T]) len() int {
	return len(s.s)
}
