package mem

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"
)

// Runtime trace flag for allocation logging - controlled by MEMKIT_LOG_ALLOC.
var logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// CheckedAllocator wraps another allocator and records the call site of every
// outstanding allocation. It is a test/diagnostic aid: leak reports point at
// the allocating line, and allocation semantics are completely unchanged.
//
// Safe for concurrent use when the wrapped allocator is.
type CheckedAllocator struct {
	mem Allocator

	mu   sync.Mutex
	live map[unsafe.Pointer]allocSite
	size int
}

type allocSite struct {
	size int
	file string
	line int
}

// Leak describes one outstanding allocation.
type Leak struct {
	Size int
	File string
	Line int
}

// NewCheckedAllocator wraps a (nil selects the process default).
func NewCheckedAllocator(a Allocator) *CheckedAllocator {
	if a == nil {
		a = Default()
	}
	return &CheckedAllocator{
		mem:  a,
		live: make(map[unsafe.Pointer]allocSite),
	}
}

// Allocate forwards to the wrapped allocator and records the caller.
func (c *CheckedAllocator) Allocate(size int) []byte {
	b := c.mem.Allocate(size)
	if len(b) == 0 {
		return b
	}
	_, file, line, _ := runtime.Caller(1)
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[MEM] alloc %d bytes at %s:%d\n", size, file, line)
	}
	c.mu.Lock()
	c.live[unsafe.Pointer(&b[0])] = allocSite{size: size, file: file, line: line}
	c.size += size
	c.mu.Unlock()
	return b
}

// Reallocate forwards to the wrapped allocator, retiring the old block's
// record and registering the new one.
func (c *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	nb := c.mem.Reallocate(size, b)
	if nb == nil {
		return nil
	}
	_, file, line, _ := runtime.Caller(1)
	c.mu.Lock()
	if len(b) > 0 {
		if site, ok := c.live[unsafe.Pointer(&b[0])]; ok {
			c.size -= site.size
			delete(c.live, unsafe.Pointer(&b[0]))
		}
	}
	if len(nb) > 0 {
		c.live[unsafe.Pointer(&nb[0])] = allocSite{size: size, file: file, line: line}
		c.size += size
	}
	c.mu.Unlock()
	return nb
}

// Free retires the block's record and forwards to the wrapped allocator.
func (c *CheckedAllocator) Free(b []byte) {
	if len(b) > 0 {
		c.mu.Lock()
		if site, ok := c.live[unsafe.Pointer(&b[0])]; ok {
			c.size -= site.size
			delete(c.live, unsafe.Pointer(&b[0]))
		}
		c.mu.Unlock()
	}
	c.mem.Free(b)
}

// AllocatedBytes reports the total size of outstanding allocations.
func (c *CheckedAllocator) AllocatedBytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Leaks returns one entry per outstanding allocation.
func (c *CheckedAllocator) Leaks() []Leak {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Leak, 0, len(c.live))
	for _, site := range c.live {
		out = append(out, Leak{Size: site.size, File: site.file, Line: site.line})
	}
	return out
}

// TestingT is the subset of *testing.T used by AssertEmpty.
type TestingT interface {
	Errorf(format string, args ...any)
	Helper()
}

// AssertEmpty fails t with one message per leaked allocation.
func (c *CheckedAllocator) AssertEmpty(t TestingT) {
	t.Helper()
	for _, l := range c.Leaks() {
		t.Errorf("mem: leaked %d bytes allocated at %s:%d", l.Size, l.File, l.Line)
	}
}

var _ Allocator = (*CheckedAllocator)(nil)
