package arena

import (
	"github.com/joshuapare/memkit/internal/bound"
	"github.com/joshuapare/memkit/mem"
)

// Config controls pooled block sizing.
type Config struct {
	// BlockSize is the size of each chained block in a GrowPool and the
	// default extension request for an Extensible arena.
	BlockSize int
}

// DefaultConfig is used when no config is supplied.
var DefaultConfig = Config{
	BlockSize: 64 << 10,
}

// Fixed serves allocations from a single pre-reserved block. When the block
// is exhausted, Allocate returns nil — there is no silent fallback to the
// heap. Free on individual allocations is a no-op; Release returns the whole
// region at once.
type Fixed struct {
	block   []byte
	off     int
	release func()
	stats   mem.Stats
}

// NewFixed reserves a block of capacity bytes.
func NewFixed(capacity int) *Fixed {
	if capacity < 0 {
		capacity = 0
	}
	b, rel := mapBlock(capacity)
	return &Fixed{block: b, release: rel}
}

// Allocate bumps within the block. Exhaustion (or a negative size) returns
// nil.
func (f *Fixed) Allocate(size int) []byte {
	if size < 0 || f.block == nil {
		return nil
	}
	off := bound.Align8(f.off)
	end, ok := bound.Add(off, size)
	if !ok || end > len(f.block) {
		return nil
	}
	f.off = end
	f.stats.AllocCalls.Add(1)
	f.stats.BytesAlloc.Add(int64(size))
	return f.block[off:end:end]
}

// Reallocate allocates a fresh block within the arena and copies the prefix.
// The old space is abandoned until Release. Returns nil (old block stays
// valid) when the arena cannot fit the new size.
func (f *Fixed) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	nb := f.Allocate(size)
	if nb == nil {
		return nil
	}
	f.stats.ReallocCalls.Add(1)
	copy(nb, b)
	return nb
}

// Free is a no-op: fixed arenas only release everything at once.
func (f *Fixed) Free(b []byte) {
	f.stats.FreeCalls.Add(1)
}

// Remaining reports how many bytes are still available (before alignment).
func (f *Fixed) Remaining() int {
	if f.block == nil {
		return 0
	}
	return len(f.block) - bound.Align8(f.off)
}

// Release unmaps the backing region. The arena and every block it handed out
// become invalid. Safe to call more than once.
func (f *Fixed) Release() {
	if f.block == nil {
		return
	}
	f.release()
	f.block = nil
	f.off = 0
}

// Stats exposes the arena counters.
func (f *Fixed) Stats() *mem.Stats { return &f.stats }

// Extender supplies a new block of at least atLeast bytes to an Extensible
// arena, or nil to refuse.
type Extender func(atLeast int) []byte

// Extensible serves allocations from a chain of blocks. When the current
// block is exhausted it asks the extension callback for a new one; a nil
// callback result propagates as allocation failure.
type Extensible struct {
	cur     []byte
	off     int
	extend  Extender
	release func() // unmaps the initial reserved block, nil when none
	stats   mem.Stats
}

// NewExtensible creates an arena with an initial block of capacity bytes
// (0 for none) and the given extension callback.
func NewExtensible(capacity int, extend Extender) *Extensible {
	e := &Extensible{extend: extend}
	if capacity > 0 {
		e.cur, e.release = mapBlock(capacity)
	}
	return e
}

// Allocate bumps within the current block, extending when exhausted.
func (e *Extensible) Allocate(size int) []byte {
	if size < 0 {
		return nil
	}
	off := bound.Align8(e.off)
	end, ok := bound.Add(off, size)
	if !ok || end > len(e.cur) {
		if e.extend == nil {
			return nil
		}
		want := size
		if want < DefaultConfig.BlockSize {
			want = DefaultConfig.BlockSize
		}
		nb := e.extend(want)
		if nb == nil || len(nb) < size {
			return nil
		}
		// Remainder of the old block is abandoned.
		e.cur = nb
		off = 0
		end = size
	}
	e.off = end
	e.stats.AllocCalls.Add(1)
	e.stats.BytesAlloc.Add(int64(size))
	return e.cur[off:end:end]
}

// Reallocate allocates fresh space and copies the prefix.
func (e *Extensible) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	nb := e.Allocate(size)
	if nb == nil {
		return nil
	}
	e.stats.ReallocCalls.Add(1)
	copy(nb, b)
	return nb
}

// Free is a no-op.
func (e *Extensible) Free(b []byte) {
	e.stats.FreeCalls.Add(1)
}

// Release unmaps the initial reserved block and invalidates the arena; every
// block it handed out becomes invalid too. Blocks supplied by the extension
// callback stay owned by their supplier. Safe to call more than once.
func (e *Extensible) Release() {
	if e.release != nil {
		e.release()
		e.release = nil
	}
	e.cur = nil
	e.off = 0
	e.extend = nil
}

// Stats exposes the arena counters.
func (e *Extensible) Stats() *mem.Stats { return &e.stats }

// GrowPool is a grow-only pool: allocations bump within chained blocks and
// individual Free calls are no-ops. The only way to reclaim memory is
// ReleaseAll, which drops every block at once. Appropriate for
// build-then-discard lifetimes.
type GrowPool struct {
	cfg      Config
	blocks   [][]byte
	releases []func()
	off      int // offset within the last block
	stats    mem.Stats
}

// NewGrowPool creates a pool. A nil config selects DefaultConfig.
func NewGrowPool(cfg *Config) *GrowPool {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	c := *cfg
	if c.BlockSize <= 0 {
		c.BlockSize = DefaultConfig.BlockSize
	}
	return &GrowPool{cfg: c}
}

// Allocate bumps within the last block, chaining a new block when needed.
// Oversized requests get a dedicated block.
func (p *GrowPool) Allocate(size int) []byte {
	if size < 0 {
		return nil
	}
	if n := len(p.blocks); n > 0 {
		off := bound.Align8(p.off)
		if end, ok := bound.Add(off, size); ok && end <= len(p.blocks[n-1]) {
			p.off = end
			p.stats.AllocCalls.Add(1)
			p.stats.BytesAlloc.Add(int64(size))
			return p.blocks[n-1][off:end:end]
		}
	}
	blockSize := p.cfg.BlockSize
	if size > blockSize {
		blockSize = bound.Align8(size)
	}
	b, rel := mapBlock(blockSize)
	p.blocks = append(p.blocks, b)
	p.releases = append(p.releases, rel)
	p.off = size
	p.stats.AllocCalls.Add(1)
	p.stats.BytesAlloc.Add(int64(size))
	return b[0:size:size]
}

// Reallocate allocates fresh space and copies the prefix. The old space is
// not reclaimed until ReleaseAll.
func (p *GrowPool) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	nb := p.Allocate(size)
	if nb == nil {
		return nil
	}
	p.stats.ReallocCalls.Add(1)
	copy(nb, b)
	return nb
}

// Free is a no-op: grow-only pools never free individual allocations.
func (p *GrowPool) Free(b []byte) {
	p.stats.FreeCalls.Add(1)
}

// ReleaseAll drops every block at once. The pool is reusable afterwards.
// Safe to call more than once.
func (p *GrowPool) ReleaseAll() {
	for _, rel := range p.releases {
		rel()
	}
	p.blocks = nil
	p.releases = nil
	p.off = 0
}

// Stats exposes the pool counters.
func (p *GrowPool) Stats() *mem.Stats { return &p.stats }

var (
	_ mem.Allocator = (*Fixed)(nil)
	_ mem.Allocator = (*Extensible)(nil)
	_ mem.Allocator = (*GrowPool)(nil)
)
