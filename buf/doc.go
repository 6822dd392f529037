// Package buf implements a growable binary buffer with allocator-backed
// storage and amortized-growth append.
//
// # Overview
//
// Buffer owns one block obtained from its allocator (nil selects the process
// default from the mem package). Appends grow capacity by
// max(needed, growth step), with a minimum step that bounds reallocation
// frequency under single-byte appends.
//
// # Failure Model
//
// Every mutator returns an error; on failure the buffer is left exactly as
// it was. Allocation failures surface as wrapped mem.ErrNoSpace, bad
// positions as ErrRange. InsertBlock with a position past the current size
// fails rather than clamping; Delete clamps an oversized count to the
// available tail.
//
// # Ownership Transfer
//
// AttachData adopts an externally allocated block without copying,
// DetachBuffer hands the internal block to the caller and leaves the buffer
// empty, and TakeOver moves another buffer's storage wholesale. All three
// are true ownership transfers, never copies.
//
// # Thread Safety
//
// Buffer instances are not thread-safe. Callers must serialize access.
package buf
