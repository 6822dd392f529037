package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_ExhaustionFailsNotFallsBack(t *testing.T) {
	// 1 MB arena: allocate until exhaustion, then the next allocation must
	// return nil rather than silently falling back to the heap.
	f := NewFixed(1 << 20)
	defer f.Release()

	total := 0
	for {
		b := f.Allocate(4096)
		if b == nil {
			break
		}
		total += 4096
	}
	assert.Equal(t, 1<<20, total, "a 1 MB arena holds exactly 256 aligned 4 KB blocks")
	assert.Nil(t, f.Allocate(1), "exhausted arena must fail even tiny requests")
	assert.Zero(t, f.Remaining())
}

func TestFixed_Alignment(t *testing.T) {
	f := NewFixed(1 << 10)
	defer f.Release()

	require.NotNil(t, f.Allocate(3))
	assert.Equal(t, (1<<10)-8, f.Remaining(), "3-byte block consumes one aligned 8-byte slot")

	require.NotNil(t, f.Allocate(3))
	assert.Equal(t, (1<<10)-16, f.Remaining(), "second block starts at the next 8-byte boundary")
}

func TestFixed_ReallocateCopies(t *testing.T) {
	f := NewFixed(1 << 10)
	defer f.Release()

	b := f.Allocate(8)
	require.NotNil(t, b)
	copy(b, "12345678")

	nb := f.Reallocate(16, b)
	require.NotNil(t, nb)
	require.Len(t, nb, 16)
	assert.Equal(t, "12345678", string(nb[:8]))

	// Failure leaves the original valid.
	assert.Nil(t, f.Reallocate(1<<20, nb))
	assert.Equal(t, "12345678", string(nb[:8]))
}

func TestFixed_ReleaseIdempotent(t *testing.T) {
	f := NewFixed(4096)
	require.NotNil(t, f.Allocate(16))
	f.Release()
	f.Release()
	assert.Nil(t, f.Allocate(16), "released arena refuses allocations")
}

func TestExtensible_UsesCallbackOnExhaustion(t *testing.T) {
	calls := 0
	e := NewExtensible(64, func(atLeast int) []byte {
		calls++
		return make([]byte, atLeast)
	})

	require.NotNil(t, e.Allocate(64))
	assert.Zero(t, calls, "initial block should satisfy the first request")

	require.NotNil(t, e.Allocate(64))
	assert.Equal(t, 1, calls, "second request must extend")
}

func TestExtensible_NilCallbackResultFails(t *testing.T) {
	e := NewExtensible(32, func(atLeast int) []byte { return nil })
	require.NotNil(t, e.Allocate(32))
	assert.Nil(t, e.Allocate(32), "refused extension propagates as failure")

	fixed := NewExtensible(16, nil)
	require.NotNil(t, fixed.Allocate(16))
	assert.Nil(t, fixed.Allocate(1), "no callback behaves like a fixed arena")
}

func TestExtensible_ReleaseIdempotent(t *testing.T) {
	e := NewExtensible(64, func(atLeast int) []byte { return make([]byte, atLeast) })
	require.NotNil(t, e.Allocate(16))
	e.Release()
	e.Release()
	assert.Nil(t, e.Allocate(16), "released arena refuses allocations")
	assert.Nil(t, e.Allocate(1<<16), "released arena must not call extend either")
}

func TestGrowPool_ChainsBlocks(t *testing.T) {
	p := NewGrowPool(&Config{BlockSize: 256})
	defer p.ReleaseAll()

	var blocks [][]byte
	for i := 0; i < 8; i++ {
		b := p.Allocate(100)
		require.NotNil(t, b)
		require.Len(t, b, 100)
		blocks = append(blocks, b)
	}

	// Earlier allocations stay intact across chaining.
	copy(blocks[0], "marker")
	require.NotNil(t, p.Allocate(1000), "oversized request gets a dedicated block")
	assert.Equal(t, "marker", string(blocks[0][:6]))
}

func TestGrowPool_ReleaseAllReusable(t *testing.T) {
	p := NewGrowPool(nil)
	require.NotNil(t, p.Allocate(128))
	p.ReleaseAll()
	p.ReleaseAll()
	require.NotNil(t, p.Allocate(128), "pool is reusable after ReleaseAll")
}
