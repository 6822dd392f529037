package str

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/joshuapare/memkit/mem"
)

var (
	// ErrRange indicates a position or count outside the string's bounds.
	ErrRange = errors.New("str: position out of range")

	// ErrNoSpace indicates that backing storage could not be allocated.
	ErrNoSpace = errors.New("str: allocation failed")
)

// byteStorage is the shared backing block of one or more ByteStrings.
// refs >= 1 for any live storage.
type byteStorage struct {
	refs  atomic.Int32
	alloc mem.Allocator
	block []byte // allocated block
	n     int    // occupied length, n <= len(block)
}

func newByteStorage(a mem.Allocator, capacity int) *byteStorage {
	block := mem.Allocate(a, capacity)
	if block == nil && capacity > 0 {
		return nil
	}
	s := &byteStorage{alloc: a, block: block}
	s.refs.Store(1)
	return s
}

func (s *byteStorage) bytes() []byte { return s.block[:s.n] }

func (s *byteStorage) release() {
	if s.refs.Add(-1) == 0 {
		mem.Free(s.alloc, s.block)
		s.block = nil
	}
}

// ByteString is a ref-counted copy-on-write byte string. The zero value is
// the canonical empty string and holds no storage.
type ByteString struct {
	d *byteStorage
}

// NewByteString copies p into fresh storage drawn from the process default
// allocator. An empty p yields the canonical empty string.
func NewByteString(p []byte) ByteString {
	return NewByteStringAlloc(nil, p)
}

// NewByteStringAlloc copies p into fresh storage drawn from a (nil selects
// the process default).
func NewByteStringAlloc(a mem.Allocator, p []byte) ByteString {
	if len(p) == 0 {
		return ByteString{}
	}
	d := newByteStorage(a, len(p))
	if d == nil {
		return ByteString{}
	}
	copy(d.block, p)
	d.n = len(p)
	return ByteString{d: d}
}

// ByteStringOf copies s into fresh storage.
func ByteStringOf(s string) ByteString {
	if len(s) == 0 {
		return ByteString{}
	}
	d := newByteStorage(nil, len(s))
	if d == nil {
		return ByteString{}
	}
	copy(d.block, s)
	d.n = len(s)
	return ByteString{d: d}
}

// Concat copies a followed by b into storage sized to the combined length.
func Concat(a, b ByteString) ByteString {
	total := a.Len() + b.Len()
	if total == 0 {
		return ByteString{}
	}
	d := newByteStorage(nil, total)
	if d == nil {
		return ByteString{}
	}
	n := copy(d.block, a.View())
	copy(d.block[n:], b.View())
	d.n = total
	return ByteString{d: d}
}

// Clone returns a new logical owner of the same storage (refcount + 1).
// No content is copied; a later mutation of either owner triggers
// copy-before-write.
func (s ByteString) Clone() ByteString {
	if s.d != nil {
		s.d.refs.Add(1)
	}
	return ByteString{d: s.d}
}

// Release drops this owner's reference, freeing the storage when the count
// reaches zero. The string becomes empty. Safe on the zero value.
func (s *ByteString) Release() {
	if s.d != nil {
		s.d.release()
		s.d = nil
	}
}

// Refs reports the storage refcount (0 for the empty string). Intended for
// tests and diagnostics.
func (s ByteString) Refs() int {
	if s.d == nil {
		return 0
	}
	return int(s.d.refs.Load())
}

// Len returns the length in bytes.
func (s ByteString) Len() int {
	if s.d == nil {
		return 0
	}
	return s.d.n
}

// IsEmpty reports whether the string has no content.
func (s ByteString) IsEmpty() bool { return s.Len() == 0 }

// At returns the byte at index i. Out-of-range access panics with a clear
// diagnostic; bad indices are contract violations, not recoverable failures.
func (s ByteString) At(i int) byte {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("str: byte index %d out of range [0,%d)", i, s.Len()))
	}
	return s.d.block[i]
}

// View returns the contents as a non-owning view. The view is invalidated
// by any mutation of this string that reallocates its storage.
func (s ByteString) View() ByteView {
	if s.d == nil {
		return nil
	}
	return ByteView(s.d.bytes())
}

// String copies the contents into a Go string.
func (s ByteString) String() string {
	if s.d == nil {
		return ""
	}
	return string(s.d.bytes())
}

// Compare is a bytewise three-way comparison.
func (s ByteString) Compare(other ByteString) int {
	return bytes.Compare(s.View(), other.View())
}

// Equal reports bytewise equality, early-exiting on length mismatch.
func (s ByteString) Equal(other ByteString) bool {
	if s.Len() != other.Len() {
		return false
	}
	return bytes.Equal(s.View(), other.View())
}

// EqualString reports bytewise equality against a Go string.
func (s ByteString) EqualString(t string) bool {
	if s.Len() != len(t) {
		return false
	}
	return string(s.View()) == t
}

// EqualNoCase reports equality under ASCII case folding.
func (s ByteString) EqualNoCase(other ByteString) bool {
	a, b := s.View(), other.View()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}
	return true
}

// Find returns the index of the first occurrence of sub at or after start,
// or -1. Operates on raw bytes, no encoding awareness.
func (s ByteString) Find(sub []byte, start int) int {
	v := s.View()
	if start < 0 || start > len(v) {
		return -1
	}
	i := bytes.Index(v[start:], sub)
	if i < 0 {
		return -1
	}
	return start + i
}

// FindByte returns the index of the first occurrence of ch at or after
// start, or -1.
func (s ByteString) FindByte(ch byte, start int) int {
	v := s.View()
	if start < 0 || start > len(v) {
		return -1
	}
	i := bytes.IndexByte(v[start:], ch)
	if i < 0 {
		return -1
	}
	return start + i
}

// ReverseFind returns the index of the last occurrence of ch, or -1.
func (s ByteString) ReverseFind(ch byte) int {
	return bytes.LastIndexByte(s.View(), ch)
}

// Mid copies count bytes starting at start into a new string. Out-of-range
// requests are clamped to the available content.
func (s ByteString) Mid(start, count int) ByteString {
	v := s.View()
	if start < 0 {
		start = 0
	}
	if start >= len(v) || count <= 0 {
		return ByteString{}
	}
	if count > len(v)-start {
		count = len(v) - start
	}
	return NewByteStringAlloc(s.allocator(), v[start:start+count])
}

// Left copies the first count bytes.
func (s ByteString) Left(count int) ByteString { return s.Mid(0, count) }

// Right copies the last count bytes.
func (s ByteString) Right(count int) ByteString {
	if count > s.Len() {
		count = s.Len()
	}
	return s.Mid(s.Len()-count, count)
}

func (s ByteString) allocator() mem.Allocator {
	if s.d == nil {
		return nil
	}
	return s.d.alloc
}

// mutable ensures private storage with capacity at least capHint, preserving
// the occupied contents. This is the copy-before-write step: shared storage
// is cloned, unique storage is grown in place only when needed.
func (s *ByteString) mutable(capHint int) error {
	if s.d == nil {
		if capHint == 0 {
			capHint = 1
		}
		d := newByteStorage(nil, capHint)
		if d == nil {
			return ErrNoSpace
		}
		s.d = d
		return nil
	}
	if capHint < s.d.n {
		capHint = s.d.n
	}
	if s.d.refs.Load() > 1 {
		d := newByteStorage(s.d.alloc, capHint)
		if d == nil {
			return ErrNoSpace
		}
		d.n = copy(d.block, s.d.bytes())
		s.d.release()
		s.d = d
		return nil
	}
	if capHint > len(s.d.block) {
		nb := mem.Reallocate(s.d.alloc, capHint, s.d.block)
		if nb == nil {
			return ErrNoSpace
		}
		s.d.block = nb
	}
	return nil
}

// SetAt replaces the byte at index i.
func (s *ByteString) SetAt(i int, ch byte) error {
	if i < 0 || i >= s.Len() {
		return ErrRange
	}
	if err := s.mutable(0); err != nil {
		return err
	}
	s.d.block[i] = ch
	return nil
}

// Insert inserts ch at index i, shifting the remainder right. i may equal
// Len() to append.
func (s *ByteString) Insert(i int, ch byte) error {
	n := s.Len()
	if i < 0 || i > n {
		return ErrRange
	}
	if err := s.mutable(n + 1); err != nil {
		return err
	}
	copy(s.d.block[i+1:n+1], s.d.block[i:n])
	s.d.block[i] = ch
	s.d.n = n + 1
	return nil
}

// Delete removes count bytes starting at i, clamping an oversized count to
// the available tail.
func (s *ByteString) Delete(i, count int) error {
	n := s.Len()
	if i < 0 || i >= n || count < 0 {
		return ErrRange
	}
	if count > n-i {
		count = n - i
	}
	if count == 0 {
		return nil
	}
	if err := s.mutable(0); err != nil {
		return err
	}
	copy(s.d.block[i:], s.d.block[i+count:n])
	s.d.n = n - count
	return nil
}

// Append appends p to the string.
func (s *ByteString) Append(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n := s.Len()
	if err := s.mutable(n + len(p)); err != nil {
		return err
	}
	copy(s.d.block[n:], p)
	s.d.n = n + len(p)
	return nil
}

// AppendString appends t to the string.
func (s *ByteString) AppendString(t string) error {
	if len(t) == 0 {
		return nil
	}
	n := s.Len()
	if err := s.mutable(n + len(t)); err != nil {
		return err
	}
	copy(s.d.block[n:], t)
	s.d.n = n + len(t)
	return nil
}

// Remove deletes every occurrence of ch, returning how many were removed.
// On allocation failure the string is left unchanged.
func (s *ByteString) Remove(ch byte) (int, error) {
	if s.FindByte(ch, 0) < 0 {
		return 0, nil
	}
	if err := s.mutable(0); err != nil {
		return 0, err
	}
	b := s.d.bytes()
	out := 0
	for _, c := range b {
		if c != ch {
			b[out] = c
			out++
		}
	}
	removed := len(b) - out
	s.d.n = out
	return removed, nil
}

// Replace substitutes every occurrence of old with new, returning the
// replacement count. An empty old matches nothing. The replacement storage is
// committed only once it exists, so on allocation failure the string is left
// unchanged.
func (s *ByteString) Replace(old, new []byte) (int, error) {
	if len(old) == 0 {
		return 0, nil
	}
	count := bytes.Count(s.View(), old)
	if count == 0 {
		return 0, nil
	}
	repl := bytes.ReplaceAll(s.View(), old, new)
	next := NewByteStringAlloc(s.allocator(), repl)
	if next.d == nil && len(repl) > 0 {
		return 0, ErrNoSpace
	}
	s.Release()
	*s = next
	return count, nil
}

// MakeUpper uppercases ASCII letters in place.
func (s *ByteString) MakeUpper() error {
	if s.IsEmpty() {
		return nil
	}
	if err := s.mutable(0); err != nil {
		return err
	}
	b := s.d.bytes()
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return nil
}

// MakeLower lowercases ASCII letters in place.
func (s *ByteString) MakeLower() error {
	if s.IsEmpty() {
		return nil
	}
	if err := s.mutable(0); err != nil {
		return err
	}
	b := s.d.bytes()
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return nil
}

// defaultTrimSet is the whitespace trimmed when no target set is given.
var defaultTrimSet = []byte(" \t\r\n")

// TrimLeft removes leading bytes found in targets (nil selects whitespace).
func (s *ByteString) TrimLeft(targets []byte) error {
	if targets == nil {
		targets = defaultTrimSet
	}
	v := s.View()
	i := 0
	for i < len(v) && bytes.IndexByte(targets, v[i]) >= 0 {
		i++
	}
	if i == 0 {
		return nil
	}
	return s.Delete(0, i)
}

// TrimRight removes trailing bytes found in targets (nil selects
// whitespace).
func (s *ByteString) TrimRight(targets []byte) error {
	if targets == nil {
		targets = defaultTrimSet
	}
	v := s.View()
	n := len(v)
	for n > 0 && bytes.IndexByte(targets, v[n-1]) >= 0 {
		n--
	}
	if n == len(v) {
		return nil
	}
	if err := s.mutable(0); err != nil {
		return err
	}
	s.d.n = n
	return nil
}

// Buffer makes the storage unique with capacity at least n and returns the
// raw block sized for n bytes. Between Buffer and ReleaseBuffer the string's
// length metadata is invalid; this is an explicit unsafe window for callers
// that fill storage directly.
func (s *ByteString) Buffer(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrRange
	}
	if err := s.mutable(n); err != nil {
		return nil, err
	}
	return s.d.block[:n], nil
}

// ReleaseBuffer re-establishes the length invariant after a Buffer call.
// actual is clamped to the allocated capacity.
func (s *ByteString) ReleaseBuffer(actual int) {
	if s.d == nil {
		return
	}
	if actual < 0 {
		actual = 0
	}
	if actual > len(s.d.block) {
		actual = len(s.d.block)
	}
	s.d.n = actual
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
