package str

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/memkit/internal/bound"
)

// ByteView is a non-owning pointer+length view of byte content. Views never
// allocate and are valid only as long as the referenced memory is.
type ByteView []byte

// Len returns the view length in bytes.
func (v ByteView) Len() int { return len(v) }

// IsEmpty reports whether the view has no content.
func (v ByteView) IsEmpty() bool { return len(v) == 0 }

// At returns the byte at index i, panicking on out-of-range access.
func (v ByteView) At(i int) byte {
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("str: view index %d out of range [0,%d)", i, len(v)))
	}
	return v[i]
}

// Mid returns a sub-view of count bytes starting at start, clamped to the
// available content. The sub-view aliases the same memory.
func (v ByteView) Mid(start, count int) ByteView {
	if start < 0 {
		start = 0
	}
	if count > len(v)-start {
		count = len(v) - start
	}
	sub, ok := bound.Slice(v, start, count)
	if !ok || len(sub) == 0 {
		return nil
	}
	return ByteView(sub)
}

// Find returns the index of the first occurrence of sub, or -1.
func (v ByteView) Find(sub []byte) int { return bytes.Index(v, sub) }

// Equal reports bytewise equality with early exit on length mismatch.
func (v ByteView) Equal(other ByteView) bool {
	if len(v) != len(other) {
		return false
	}
	return bytes.Equal(v, other)
}

// String copies the view contents into a Go string.
func (v ByteView) String() string { return string(v) }

// WideView is a non-owning view of wide (rune) content with the same
// lifetime contract as ByteView.
type WideView []rune

// Len returns the view length in wide units.
func (v WideView) Len() int { return len(v) }

// IsEmpty reports whether the view has no content.
func (v WideView) IsEmpty() bool { return len(v) == 0 }

// At returns the rune at index i, panicking on out-of-range access.
func (v WideView) At(i int) rune {
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("str: view index %d out of range [0,%d)", i, len(v)))
	}
	return v[i]
}

// Equal reports unitwise equality with early exit on length mismatch.
func (v WideView) Equal(other WideView) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// String copies the view contents into a Go string.
func (v WideView) String() string { return string(v) }
