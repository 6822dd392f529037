package buf

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/joshuapare/memkit/internal/bound"
	"github.com/joshuapare/memkit/mem"
)

var (
	// ErrRange indicates a position or count outside the buffer's bounds.
	ErrRange = errors.New("buf: position out of range")
)

// minStep bounds reallocation frequency: even single-byte appends grow
// capacity by at least this much.
const minStep = 100

// Buffer is a growable binary buffer. The zero value is empty and uses the
// process default allocator on first growth.
type Buffer struct {
	alloc mem.Allocator
	data  []byte // backing block; len(data) is the capacity
	size  int    // occupied bytes, size <= len(data)
	step  int    // growth-step hint, 0 means minStep
}

// New returns an empty buffer drawing storage from a (nil selects the
// process default).
func New(a mem.Allocator) *Buffer {
	return &Buffer{alloc: a}
}

// Size returns the occupied length in bytes.
func (b *Buffer) Size() int { return b.size }

// Capacity returns the allocated length in bytes.
func (b *Buffer) Capacity() int { return len(b.data) }

// Bytes returns the occupied contents as a view into the backing block.
// The view is invalidated by any mutation that grows the buffer.
func (b *Buffer) Bytes() []byte { return b.data[:b.size] }

// String returns the occupied contents as a string copy.
func (b *Buffer) String() string { return string(b.data[:b.size]) }

// Clear resets the occupied length to zero, keeping capacity.
func (b *Buffer) Clear() { b.size = 0 }

// EstimateSize ensures capacity is at least size. A nonzero step is
// remembered as the growth-step hint for future appends. On failure the
// buffer is unchanged.
func (b *Buffer) EstimateSize(size, step int) error {
	if size < 0 {
		return ErrRange
	}
	if step > 0 {
		b.step = step
	}
	if size <= len(b.data) {
		return nil
	}
	nb := mem.Reallocate(b.alloc, size, b.data)
	if nb == nil {
		return fmt.Errorf("buf: estimate %d: %w", size, mem.ErrNoSpace)
	}
	b.data = nb
	return nil
}

// ensure grows capacity so that extra more bytes fit after size.
func (b *Buffer) ensure(extra int) error {
	required, ok := bound.Add(b.size, extra)
	if !ok {
		return ErrRange
	}
	if required <= len(b.data) {
		return nil
	}
	step := b.step
	if step < minStep {
		step = minStep
	}
	grow := extra
	if grow < step {
		grow = step
	}
	newCap, ok := bound.Add(b.size, grow)
	if !ok {
		newCap = required
	}
	nb := mem.Reallocate(b.alloc, newCap, b.data)
	if nb == nil {
		return fmt.Errorf("buf: grow to %d: %w", newCap, mem.ErrNoSpace)
	}
	b.data = nb
	return nil
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(v byte) error {
	if err := b.ensure(1); err != nil {
		return err
	}
	b.data[b.size] = v
	b.size++
	return nil
}

// AppendBlock copies p to the end of the buffer.
func (b *Buffer) AppendBlock(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := b.ensure(len(p)); err != nil {
		return err
	}
	copy(b.data[b.size:], p)
	b.size += len(p)
	return nil
}

// AppendString copies s to the end of the buffer.
func (b *Buffer) AppendString(s string) error {
	if len(s) == 0 {
		return nil
	}
	if err := b.ensure(len(s)); err != nil {
		return err
	}
	copy(b.data[b.size:], s)
	b.size += len(s)
	return nil
}

// AppendFill appends count copies of v as a single fill, not a loop of
// single-byte appends.
func (b *Buffer) AppendFill(v byte, count int) error {
	if count < 0 {
		return ErrRange
	}
	if count == 0 {
		return nil
	}
	if err := b.ensure(count); err != nil {
		return err
	}
	region := b.data[b.size : b.size+count]
	for i := range region {
		region[i] = v
	}
	b.size += count
	return nil
}

// AppendInt appends the decimal representation of i.
func (b *Buffer) AppendInt(i int64) error {
	var scratch [20]byte
	return b.AppendBlock(strconv.AppendInt(scratch[:0], i, 10))
}

// AppendRune appends the UTF-8 encoding of r.
func (b *Buffer) AppendRune(r rune) error {
	var scratch [utf8.UTFMax]byte
	return b.AppendBlock(utf8.AppendRune(scratch[:0], r))
}

// InsertBlock shifts bytes at and after pos rightward by len(p) and writes p
// at pos. A pos outside [0, Size()] fails with ErrRange; it is not clamped.
func (b *Buffer) InsertBlock(pos int, p []byte) error {
	if !bound.Has(b.data[:b.size], pos, 0) {
		return ErrRange
	}
	if len(p) == 0 {
		return nil
	}
	if err := b.ensure(len(p)); err != nil {
		return err
	}
	copy(b.data[pos+len(p):b.size+len(p)], b.data[pos:b.size])
	copy(b.data[pos:], p)
	b.size += len(p)
	return nil
}

// Delete removes count bytes starting at start, shifting the remainder left.
// An oversized count is clamped to the available tail; a start outside
// [0, Size()) fails with ErrRange.
func (b *Buffer) Delete(start, count int) error {
	if start < 0 || start >= b.size || count < 0 {
		return ErrRange
	}
	if count > b.size-start {
		count = b.size - start
	}
	copy(b.data[start:], b.data[start+count:b.size])
	b.size -= count
	return nil
}

// AttachData adopts p as the buffer's storage without copying. Any previous
// storage is freed. The caller must not use p afterwards, and p must be
// compatible with the buffer's allocator (it will eventually be freed
// through it).
func (b *Buffer) AttachData(p []byte) {
	if b.data != nil {
		mem.Free(b.alloc, b.data)
	}
	b.data = p
	b.size = len(p)
}

// DetachBuffer hands the occupied contents to the caller and leaves the
// buffer empty. The caller owns the returned block.
func (b *Buffer) DetachBuffer() []byte {
	out := b.data
	if out != nil {
		out = out[:b.size]
	}
	b.data = nil
	b.size = 0
	return out
}

// TakeOver adopts other's storage; other becomes empty. This is a true
// ownership transfer, not a copy.
func (b *Buffer) TakeOver(other *Buffer) {
	if other == b {
		return
	}
	if b.data != nil {
		mem.Free(b.alloc, b.data)
	}
	b.alloc = other.alloc
	b.data = other.data
	b.size = other.size
	b.step = other.step
	other.data = nil
	other.size = 0
}

// Release frees the backing block and empties the buffer.
func (b *Buffer) Release() {
	if b.data != nil {
		mem.Free(b.alloc, b.data)
	}
	b.data = nil
	b.size = 0
}
