package seg

// Stack is a LIFO stack over a SegmentedArray, so pushes never relocate
// previously pushed elements.
type Stack[T any] struct {
	a *SegmentedArray[T]
}

// NewStack creates a stack with the given units-per-segment (values below 1
// select the default).
func NewStack[T any](unitsPerSegment int) *Stack[T] {
	return &Stack[T]{a: NewSegmentedArray[T](unitsPerSegment)}
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.a.Count() }

// Push adds v to the top and returns a pointer to its slot.
func (s *Stack[T]) Push(v T) *T {
	return s.a.Append(v)
}

// Top returns a pointer to the top element, or nil when empty.
func (s *Stack[T]) Top() *T {
	return s.a.GetAt(s.a.Count() - 1)
}

// Pop removes and returns the top element. The second result is false when
// the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	top := s.Top()
	if top == nil {
		return zero, false
	}
	v := *top
	s.a.Delete(s.a.Count()-1, 1)
	return v, true
}

// RemoveAll releases all storage. Idempotent.
func (s *Stack[T]) RemoveAll() {
	s.a.RemoveAll()
}
