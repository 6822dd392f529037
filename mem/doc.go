// Package mem provides the pluggable memory-allocator abstraction underlying
// every container in this module.
//
// # Overview
//
// An Allocator is a source and sink of raw byte blocks, decoupled from the
// Go heap. Containers (buffers, strings, segmented arrays) take an Allocator
// at construction; passing nil selects the process-wide default. The package
// helpers Allocate, Reallocate, and Free encode the nil-means-default rule so
// callers never have to spell it out.
//
// # Failure Model
//
// Allocation failure is reported by a nil return, never by a panic. The
// default Go-heap allocator only fails for negative sizes, but arena-style
// allocators (see the arena subpackage) fail when their backing block is
// exhausted, and callers are expected to check.
//
// Reallocate preserves the min(old, new) prefix of the block. On failure the
// original block remains valid and nil is returned. Free(nil) is a no-op.
// Every block must be released through the allocator that produced it;
// pairing a block with a foreign allocator is a caller error with undefined
// results.
//
// # Process Default
//
// Default() lazily constructs a GoAllocator behind a mutex; SetDefault swaps
// in external memory policy and ResetDefault restores the built-in one. The
// default allocator is safe for concurrent use. Custom allocators carry no
// such guarantee unless they document it.
//
// # Diagnostics
//
// CheckedAllocator wraps any allocator and records the call site of every
// outstanding allocation for leak reports in tests. Set MEMKIT_LOG_ALLOC=1
// to trace allocations on stderr. Diagnostics never change allocation
// semantics.
package mem
