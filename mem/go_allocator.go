package mem

import "sync/atomic"

// Stats holds allocator counters. All fields are maintained with atomic
// operations so a shared allocator can be inspected concurrently.
type Stats struct {
	AllocCalls   atomic.Int64 // Total Allocate() calls
	ReallocCalls atomic.Int64 // Total Reallocate() calls
	FreeCalls    atomic.Int64 // Total Free() calls
	BytesAlloc   atomic.Int64 // Total bytes handed out
}

// Snapshot returns a plain-value copy of the counters.
func (s *Stats) Snapshot() (allocs, reallocs, frees, bytes int64) {
	return s.AllocCalls.Load(), s.ReallocCalls.Load(), s.FreeCalls.Load(), s.BytesAlloc.Load()
}

// GoAllocator serves blocks from the Go heap. Free is a no-op: the garbage
// collector reclaims blocks once unreferenced. Safe for concurrent use.
type GoAllocator struct {
	stats Stats
}

// NewGoAllocator returns an allocator backed by the Go heap.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Allocate returns a zeroed block of size bytes, or nil when size is
// negative. The block is capacity-clamped so appends cannot bleed into
// neighboring allocations.
func (a *GoAllocator) Allocate(size int) []byte {
	if size < 0 {
		return nil
	}
	a.stats.AllocCalls.Add(1)
	a.stats.BytesAlloc.Add(int64(size))
	return make([]byte, size, size)
}

// Reallocate returns a block of the new size carrying the min(old, new)
// prefix of b. The same-size case returns b unchanged.
func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size < 0 {
		return nil
	}
	if size == len(b) {
		return b
	}
	a.stats.ReallocCalls.Add(1)
	a.stats.BytesAlloc.Add(int64(size))
	nb := make([]byte, size, size)
	copy(nb, b)
	return nb
}

// Free is a no-op for heap blocks.
func (a *GoAllocator) Free(b []byte) {
	a.stats.FreeCalls.Add(1)
}

// Stats exposes the allocator counters.
func (a *GoAllocator) Stats() *Stats { return &a.stats }

var _ Allocator = (*GoAllocator)(nil)
