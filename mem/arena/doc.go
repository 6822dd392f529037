// Package arena provides allocators that carve blocks out of pre-reserved
// memory regions instead of the general heap.
//
// # Implementations
//
// Fixed: one block reserved up front
//
//   - Allocate bumps within the block; exhaustion returns nil
//   - Free on individual blocks is a no-op
//   - Release() returns the whole region at once
//
// Extensible: Fixed plus an extension callback
//
//   - When the current block is exhausted, the callback supplies a new one
//   - A nil callback result propagates as allocation failure
//
// GrowPool: grow-only pool for build-then-discard lifetimes
//
//   - Allocate bumps within chained blocks sized by Config.BlockSize
//   - Free is always a no-op; ReleaseAll() drops every block at once
//
// # Block Storage
//
// On linux, freebsd, and darwin, blocks come from anonymous mmap so a big
// arena never pressures the Go heap and Release returns pages to the kernel
// immediately. Elsewhere blocks come from the Go heap and Release just drops
// the reference.
//
// # Alignment and Safety
//
// Every returned block is 8-byte aligned within the region. None of the
// arena types are safe for concurrent use; callers serialize access or give
// each goroutine its own arena.
package arena
