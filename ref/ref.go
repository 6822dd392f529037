// Package ref provides a generic reference-counted value wrapper with
// copy-on-write semantics, the sharing pattern the string types use,
// generalized to arbitrary value types.
//
// # Contract
//
// A Counted wrapper either references a heap-allocated payload with an
// embedded refcount, or is null. Share() hands out another wrapper
// referencing the same payload (refcount + 1). GetModify() is the central
// invariant: with a unique payload it returns it directly; with a shared one
// it clones privately first, so other holders never observe the mutation.
//
// Refcounts are atomic, so Share and Release may cross goroutines; payload
// content access still requires external serialization.
package ref

import "sync/atomic"

// counted is a payload with its embedded refcount. refs >= 1 while any
// wrapper references it.
type counted[T any] struct {
	refs atomic.Int32
	val  T
}

// Counted is a wrapper over a shared, ref-counted payload of type T. The
// zero value is null. Wrappers must be copied with Share, not plain
// assignment, whenever a new logical owner is intended.
type Counted[T any] struct {
	obj   *counted[T]
	clone func(T) T
}

// NewCounted creates a null wrapper. clone is used by GetModify to deep-copy
// a shared payload; nil selects plain value assignment, which is sufficient
// for payloads without reference-typed fields.
func NewCounted[T any](clone func(T) T) Counted[T] {
	return Counted[T]{clone: clone}
}

// IsNull reports whether the wrapper references no payload.
func (c *Counted[T]) IsNull() bool { return c.obj == nil }

// New detaches from any current payload (freeing it at refcount zero) and
// allocates a fresh zero-valued payload with refcount 1, returning a mutable
// pointer to it.
func (c *Counted[T]) New() *T {
	c.SetNull()
	c.obj = &counted[T]{}
	c.obj.refs.Store(1)
	return &c.obj.val
}

// Set detaches from any current payload and installs v as a fresh payload
// with refcount 1.
func (c *Counted[T]) Set(v T) {
	p := c.New()
	*p = v
}

// Share returns another wrapper referencing the same payload (refcount + 1).
// Sharing a null wrapper yields a null wrapper.
func (c *Counted[T]) Share() Counted[T] {
	if c.obj != nil {
		c.obj.refs.Add(1)
	}
	return Counted[T]{obj: c.obj, clone: c.clone}
}

// Get returns a read-only pointer to the payload, or nil when null. Callers
// must not mutate through it; use GetModify.
func (c *Counted[T]) Get() *T {
	if c.obj == nil {
		return nil
	}
	return &c.obj.val
}

// Refs reports the payload refcount (0 when null). Intended for tests.
func (c *Counted[T]) Refs() int {
	if c.obj == nil {
		return 0
	}
	return int(c.obj.refs.Load())
}

// GetModify returns a mutable pointer to a payload this wrapper holds
// uniquely. A shared payload is cloned into a fresh refcount-1 instance
// first (copy-on-write); a null wrapper gets a fresh zero payload.
func (c *Counted[T]) GetModify() *T {
	if c.obj == nil {
		return c.New()
	}
	if c.obj.refs.Load() == 1 {
		return &c.obj.val
	}
	v := c.obj.val
	if c.clone != nil {
		v = c.clone(v)
	}
	c.obj.refs.Add(-1)
	c.obj = &counted[T]{val: v}
	c.obj.refs.Store(1)
	return &c.obj.val
}

// SetNull detaches from the payload, freeing it when the refcount reaches
// zero. Safe on a null wrapper.
func (c *Counted[T]) SetNull() {
	if c.obj == nil {
		return
	}
	c.obj.refs.Add(-1)
	c.obj = nil
}
