package seg

// defaultUnitsPerSegment is used when no segment size is given.
const defaultUnitsPerSegment = 64

// SegmentedArray is a growable array whose storage is a series of
// fixed-capacity segments. Segments, once allocated, never move; only the
// index slice above them grows. The zero Count array holds no segments.
type SegmentedArray[T any] struct {
	segSize int
	segs    [][]T
	count   int
}

// NewSegmentedArray creates an array with the given units-per-segment
// (values below 1 select the default of 64).
func NewSegmentedArray[T any](unitsPerSegment int) *SegmentedArray[T] {
	if unitsPerSegment < 1 {
		unitsPerSegment = defaultUnitsPerSegment
	}
	return &SegmentedArray[T]{segSize: unitsPerSegment}
}

// Count returns the number of elements.
func (a *SegmentedArray[T]) Count() int { return a.count }

// Segments returns the number of allocated segments. Intended for tests and
// instrumentation.
func (a *SegmentedArray[T]) Segments() int { return len(a.segs) }

// Add grows the array by one element and returns a pointer to the new slot.
// The pointer stays valid until a Delete compacts elements across segments.
func (a *SegmentedArray[T]) Add() *T {
	if a.count == len(a.segs)*a.segSize {
		a.segs = append(a.segs, make([]T, a.segSize))
	}
	p := &a.segs[a.count/a.segSize][a.count%a.segSize]
	a.count++
	return p
}

// Append adds v and returns a pointer to its slot.
func (a *SegmentedArray[T]) Append(v T) *T {
	p := a.Add()
	*p = v
	return p
}

// GetAt returns a pointer to element i, or nil when i is out of range.
// O(1): segment index plus offset, no scanning.
func (a *SegmentedArray[T]) GetAt(i int) *T {
	if i < 0 || i >= a.count {
		return nil
	}
	return &a.segs[i/a.segSize][i%a.segSize]
}

// SetAt stores v at index i, reporting whether i was in range.
func (a *SegmentedArray[T]) SetAt(i int, v T) bool {
	p := a.GetAt(i)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Delete removes count elements starting at index, compacting subsequent
// elements leftward. This is the one operation without O(1) cost: data may
// move between segments. An oversized count is clamped.
func (a *SegmentedArray[T]) Delete(index, count int) bool {
	if index < 0 || index >= a.count || count < 0 {
		return false
	}
	if count > a.count-index {
		count = a.count - index
	}
	if count == 0 {
		return true
	}
	for i := index; i < a.count-count; i++ {
		*a.GetAt(i) = *a.GetAt(i + count)
	}
	// Zero vacated tail slots so element references are dropped.
	var zero T
	for i := a.count - count; i < a.count; i++ {
		*a.GetAt(i) = zero
	}
	a.count -= count
	// Release now-empty tail segments back to the allocator.
	needed := (a.count + a.segSize - 1) / a.segSize
	for i := needed; i < len(a.segs); i++ {
		a.segs[i] = nil
	}
	a.segs = a.segs[:needed]
	return true
}

// RemoveAll releases every segment; the count returns to zero. Idempotent.
func (a *SegmentedArray[T]) RemoveAll() {
	a.segs = nil
	a.count = 0
}

// Iterate calls fn for each element in index order until fn returns false.
func (a *SegmentedArray[T]) Iterate(fn func(i int, p *T) bool) {
	for i := 0; i < a.count; i++ {
		if !fn(i, a.GetAt(i)) {
			return
		}
	}
}
