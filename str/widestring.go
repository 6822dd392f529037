package str

import (
	"fmt"
	"sync/atomic"
	"unicode"
)

// wideStorage is the shared backing block of one or more WideStrings. Wide
// content lives in Go-native rune slices; the byte-oriented allocator
// abstraction applies to byte strings and buffers only.
type wideStorage struct {
	refs  atomic.Int32
	block []rune
	n     int // occupied length, n <= len(block)
}

func newWideStorage(capacity int) *wideStorage {
	s := &wideStorage{block: make([]rune, capacity)}
	s.refs.Store(1)
	return s
}

func (s *wideStorage) runes() []rune { return s.block[:s.n] }

// WideString is a ref-counted copy-on-write string of wide units (runes).
// The zero value is the canonical empty string and holds no storage. The
// sharing, mutation, and refcount contract is identical to ByteString.
type WideString struct {
	d *wideStorage
}

// NewWideString copies p into fresh storage.
func NewWideString(p []rune) WideString {
	if len(p) == 0 {
		return WideString{}
	}
	d := newWideStorage(len(p))
	copy(d.block, p)
	d.n = len(p)
	return WideString{d: d}
}

// WideStringOf decodes the UTF-8 string s into wide units.
func WideStringOf(s string) WideString {
	if len(s) == 0 {
		return WideString{}
	}
	return NewWideString([]rune(s))
}

// ConcatWide copies a followed by b into storage sized to the combined
// length.
func ConcatWide(a, b WideString) WideString {
	total := a.Len() + b.Len()
	if total == 0 {
		return WideString{}
	}
	d := newWideStorage(total)
	n := copy(d.block, a.View())
	copy(d.block[n:], b.View())
	d.n = total
	return WideString{d: d}
}

// Clone returns a new logical owner of the same storage (refcount + 1).
func (s WideString) Clone() WideString {
	if s.d != nil {
		s.d.refs.Add(1)
	}
	return WideString{d: s.d}
}

// Release drops this owner's reference; storage is dropped at zero.
func (s *WideString) Release() {
	if s.d != nil {
		if s.d.refs.Add(-1) == 0 {
			s.d.block = nil
		}
		s.d = nil
	}
}

// Refs reports the storage refcount (0 for the empty string).
func (s WideString) Refs() int {
	if s.d == nil {
		return 0
	}
	return int(s.d.refs.Load())
}

// Len returns the length in wide units.
func (s WideString) Len() int {
	if s.d == nil {
		return 0
	}
	return s.d.n
}

// IsEmpty reports whether the string has no content.
func (s WideString) IsEmpty() bool { return s.Len() == 0 }

// At returns the rune at index i, panicking on out-of-range access.
func (s WideString) At(i int) rune {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("str: wide index %d out of range [0,%d)", i, s.Len()))
	}
	return s.d.block[i]
}

// View returns the contents as a non-owning view with the usual lifetime
// hazard.
func (s WideString) View() WideView {
	if s.d == nil {
		return nil
	}
	return WideView(s.d.runes())
}

// String encodes the contents to UTF-8.
func (s WideString) String() string {
	if s.d == nil {
		return ""
	}
	return string(s.d.runes())
}

// Compare is a unitwise three-way comparison.
func (s WideString) Compare(other WideString) int {
	a, b := s.View(), other.View()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports unitwise equality, early-exiting on length mismatch.
func (s WideString) Equal(other WideString) bool {
	return s.View().Equal(other.View())
}

// EqualNoCase reports equality under simple Unicode case folding.
func (s WideString) EqualNoCase(other WideString) bool {
	a, b := s.View(), other.View()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}

// Find returns the index of the first occurrence of sub at or after start,
// or -1. Operates on raw wide units.
func (s WideString) Find(sub []rune, start int) int {
	v := s.View()
	if start < 0 || start > len(v) {
		return -1
	}
	if len(sub) == 0 {
		return start
	}
	for i := start; i+len(sub) <= len(v); i++ {
		if v[i] == sub[0] && WideView(v[i:i+len(sub)]).Equal(WideView(sub)) {
			return i
		}
	}
	return -1
}

// FindRune returns the index of the first occurrence of r at or after
// start, or -1.
func (s WideString) FindRune(r rune, start int) int {
	v := s.View()
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v); i++ {
		if v[i] == r {
			return i
		}
	}
	return -1
}

// ReverseFind returns the index of the last occurrence of r, or -1.
func (s WideString) ReverseFind(r rune) int {
	v := s.View()
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] == r {
			return i
		}
	}
	return -1
}

// Mid copies count units starting at start into a new string, clamped to
// the available content.
func (s WideString) Mid(start, count int) WideString {
	v := s.View()
	if start < 0 {
		start = 0
	}
	if start >= len(v) || count <= 0 {
		return WideString{}
	}
	if count > len(v)-start {
		count = len(v) - start
	}
	return NewWideString(v[start : start+count])
}

// Left copies the first count units.
func (s WideString) Left(count int) WideString { return s.Mid(0, count) }

// Right copies the last count units.
func (s WideString) Right(count int) WideString {
	if count > s.Len() {
		count = s.Len()
	}
	return s.Mid(s.Len()-count, count)
}

// mutable ensures private storage with capacity at least capHint, cloning
// shared storage (copy-before-write).
func (s *WideString) mutable(capHint int) {
	if s.d == nil {
		if capHint == 0 {
			capHint = 1
		}
		s.d = newWideStorage(capHint)
		return
	}
	if capHint < s.d.n {
		capHint = s.d.n
	}
	if s.d.refs.Load() > 1 {
		d := newWideStorage(capHint)
		d.n = copy(d.block, s.d.runes())
		s.Release()
		s.d = d
		return
	}
	if capHint > len(s.d.block) {
		nb := make([]rune, capHint)
		copy(nb, s.d.runes())
		s.d.block = nb
	}
}

// SetAt replaces the rune at index i.
func (s *WideString) SetAt(i int, r rune) error {
	if i < 0 || i >= s.Len() {
		return ErrRange
	}
	s.mutable(0)
	s.d.block[i] = r
	return nil
}

// Insert inserts r at index i, shifting the remainder right.
func (s *WideString) Insert(i int, r rune) error {
	n := s.Len()
	if i < 0 || i > n {
		return ErrRange
	}
	s.mutable(n + 1)
	copy(s.d.block[i+1:n+1], s.d.block[i:n])
	s.d.block[i] = r
	s.d.n = n + 1
	return nil
}

// Delete removes count units starting at i, clamping an oversized count.
func (s *WideString) Delete(i, count int) error {
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
	s.mutable(0)
	copy(s.d.block[i:], s.d.block[i+count:n])
	s.d.n = n - count
	return nil
}

// Append appends p to the string.
func (s *WideString) Append(p []rune) {
	if len(p) == 0 {
		return
	}
	n := s.Len()
	s.mutable(n + len(p))
	copy(s.d.block[n:], p)
	s.d.n = n + len(p)
}

// AppendRune appends a single rune.
func (s *WideString) AppendRune(r rune) {
	n := s.Len()
	s.mutable(n + 1)
	s.d.block[n] = r
	s.d.n = n + 1
}

// Remove deletes every occurrence of r, returning how many were removed.
func (s *WideString) Remove(r rune) int {
	if s.FindRune(r, 0) < 0 {
		return 0
	}
	s.mutable(0)
	b := s.d.runes()
	out := 0
	for _, c := range b {
		if c != r {
			b[out] = c
			out++
		}
	}
	removed := len(b) - out
	s.d.n = out
	return removed
}

// Replace substitutes every occurrence of old with new, returning the
// replacement count.
func (s *WideString) Replace(old, new []rune) int {
	if len(old) == 0 {
		return 0
	}
	count := 0
	var result []rune
	v := s.View()
	i := 0
	for i < len(v) {
		if j := s.Find(old, i); j >= 0 {
			result = append(result, v[i:j]...)
			result = append(result, new...)
			i = j + len(old)
			count++
			continue
		}
		result = append(result, v[i:]...)
		break
	}
	if count == 0 {
		return 0
	}
	next := NewWideString(result)
	s.Release()
	*s = next
	return count
}

// MakeUpper uppercases the content in place.
func (s *WideString) MakeUpper() {
	if s.IsEmpty() {
		return
	}
	s.mutable(0)
	b := s.d.runes()
	for i, r := range b {
		b[i] = unicode.ToUpper(r)
	}
}

// MakeLower lowercases the content in place.
func (s *WideString) MakeLower() {
	if s.IsEmpty() {
		return
	}
	s.mutable(0)
	b := s.d.runes()
	for i, r := range b {
		b[i] = unicode.ToLower(r)
	}
}

var defaultWideTrimSet = []rune(" \t\r\n")

// TrimLeft removes leading runes found in targets (nil selects whitespace).
func (s *WideString) TrimLeft(targets []rune) {
	if targets == nil {
		targets = defaultWideTrimSet
	}
	v := s.View()
	i := 0
	for i < len(v) && runeIn(targets, v[i]) {
		i++
	}
	if i > 0 {
		_ = s.Delete(0, i)
	}
}

// TrimRight removes trailing runes found in targets (nil selects
// whitespace).
func (s *WideString) TrimRight(targets []rune) {
	if targets == nil {
		targets = defaultWideTrimSet
	}
	v := s.View()
	n := len(v)
	for n > 0 && runeIn(targets, v[n-1]) {
		n--
	}
	if n == len(v) {
		return
	}
	s.mutable(0)
	s.d.n = n
}

// Buffer makes the storage unique with capacity at least n and returns the
// raw block; length metadata is invalid until ReleaseBuffer.
func (s *WideString) Buffer(n int) ([]rune, error) {
	if n < 0 {
		return nil, ErrRange
	}
	s.mutable(n)
	return s.d.block[:n], nil
}

// ReleaseBuffer re-establishes the length invariant after a Buffer call.
func (s *WideString) ReleaseBuffer(actual int) {
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

func runeIn(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
