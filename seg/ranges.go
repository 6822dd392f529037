package seg

import "sort"

// span is one registered [start, start+count) range with its own block.
type span[T any] struct {
	start int
	count int
	items []T
}

func (s *span[T]) contains(index int) bool {
	return index >= s.start && index < s.start+s.count
}

// SortedRanges is a sparse index-to-value store. Each registered range owns
// an independently allocated block sized only for that range; indices in the
// gaps cost no memory. Ranges are non-overlapping and kept in ascending
// start order.
type SortedRanges[T any] struct {
	spans  []*span[T]
	cached *span[T] // last range hit, for sequential access patterns
}

// NewSortedRanges creates an empty store.
func NewSortedRanges[T any]() *SortedRanges[T] {
	return &SortedRanges[T]{}
}

// Append registers the range [start, start+count). A range overlapping an
// already-registered one is a caller error and is silently ignored, leaving
// existing ranges intact. Non-positive counts are ignored too.
func (r *SortedRanges[T]) Append(start, count int) {
	if count <= 0 {
		return
	}
	idx := sort.Search(len(r.spans), func(i int) bool {
		return r.spans[i].start > start
	})
	if idx > 0 {
		prev := r.spans[idx-1]
		if prev.start+prev.count > start {
			return
		}
	}
	if idx < len(r.spans) {
		next := r.spans[idx]
		if start+count > next.start {
			return
		}
	}
	s := &span[T]{start: start, count: count, items: make([]T, count)}
	r.spans = append(r.spans, nil)
	copy(r.spans[idx+1:], r.spans[idx:])
	r.spans[idx] = s
}

// GetAt returns a pointer into the owning range's block, or nil when index
// falls in a gap. The last range hit is cached, so sequential lookups skip
// the binary search.
func (r *SortedRanges[T]) GetAt(index int) *T {
	if r.cached != nil && r.cached.contains(index) {
		return &r.cached.items[index-r.cached.start]
	}
	idx := sort.Search(len(r.spans), func(i int) bool {
		return r.spans[i].start > index
	})
	if idx == 0 {
		return nil
	}
	s := r.spans[idx-1]
	if !s.contains(index) {
		return nil
	}
	r.cached = s
	return &s.items[index-s.start]
}

// Ranges returns the number of registered ranges.
func (r *SortedRanges[T]) Ranges() int { return len(r.spans) }

// RemoveAll releases every range block. Idempotent.
func (r *SortedRanges[T]) RemoveAll() {
	r.spans = nil
	r.cached = nil
}
