package mem

import "sync"

// Allocator is a pluggable source and sink of raw byte blocks.
//
// Allocate returns a block of exactly size bytes, or nil when the request
// cannot be satisfied. Reallocate returns a block of the new size whose
// prefix holds min(len(b), size) bytes of b; on success b must not be used
// again, on failure b stays valid and nil is returned. Free releases a block
// previously returned by the same allocator; Free(nil) is a no-op.
//
// Implementations are not required to be safe for concurrent use unless
// they document it. The process default allocator is.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// Allocate requests size bytes from a, or from the process default when a is
// nil. Returns nil on failure.
func Allocate(a Allocator, size int) []byte {
	if a == nil {
		a = Default()
	}
	return a.Allocate(size)
}

// Reallocate resizes b through a, or through the process default when a is
// nil. Returns nil on failure, leaving b valid.
func Reallocate(a Allocator, size int, b []byte) []byte {
	if a == nil {
		a = Default()
	}
	return a.Reallocate(size, b)
}

// Free releases b through a, or through the process default when a is nil.
func Free(a Allocator, b []byte) {
	if a == nil {
		a = Default()
	}
	a.Free(b)
}

var (
	defaultMu    sync.Mutex
	defaultAlloc Allocator
)

// Default returns the process-wide default allocator, lazily constructing a
// GoAllocator on first use.
func Default() Allocator {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultAlloc == nil {
		defaultAlloc = NewGoAllocator()
	}
	return defaultAlloc
}

// SetDefault installs a as the process-wide default allocator. Blocks already
// handed out by the previous default must still be freed through it; swapping
// the default mid-flight is the caller's lifecycle decision.
func SetDefault(a Allocator) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultAlloc = a
}

// ResetDefault restores the built-in Go-heap allocator as the process
// default.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultAlloc = nil
}
