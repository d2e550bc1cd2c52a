package cpu

// Stack is a last-in first-out stack.
type Stack[T any] struct {
	Data []T
}

func (s *Stack[T]) Push(value T) {
	s.Data = append(s.Data, value)
}

func (s *Stack[T]) Pop() (value T, ok bool) {
	value, ok = s.Peek()
	if ok {
		var zero T
		s.Data[len(s.Data)-1] = zero
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack[T]) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.Data)
}

func (s *Stack[T]) Peek() (value T, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Top returns a pointer to the top element, or nil if the stack is empty.
// The pointer is invalidated by the next Push.
func (s *Stack[T]) Top() *T {
	if s.Empty() {
		return nil
	}

	return &s.Data[len(s.Data)-1]
}

func (s *Stack[T]) Reset() {
	if len(s.Data) > 0 {
		clear(s.Data)
		s.Data = s.Data[:0]
	}
}
