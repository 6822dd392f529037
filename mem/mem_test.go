package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAllocator_Allocate(t *testing.T) {
	a := NewGoAllocator()

	b := a.Allocate(64)
	require.NotNil(t, b)
	require.Len(t, b, 64)
	assert.Equal(t, 64, cap(b), "block should be capacity-clamped")

	for _, v := range b {
		assert.Zero(t, v, "block should be zeroed")
	}

	assert.Nil(t, a.Allocate(-1), "negative size must fail, not panic")
}

func TestGoAllocator_ReallocatePreservesPrefix(t *testing.T) {
	a := NewGoAllocator()

	b := a.Allocate(8)
	copy(b, "abcdefgh")

	grown := a.Reallocate(16, b)
	require.Len(t, grown, 16)
	assert.Equal(t, "abcdefgh", string(grown[:8]), "prefix must survive growth")

	shrunk := a.Reallocate(4, grown)
	require.Len(t, shrunk, 4)
	assert.Equal(t, "abcd", string(shrunk), "prefix must survive shrink")

	same := a.Reallocate(4, shrunk)
	assert.Equal(t, &shrunk[0], &same[0], "same-size realloc returns the block unchanged")
}

func TestGoAllocator_FreeNilNoop(t *testing.T) {
	a := NewGoAllocator()
	assert.NotPanics(t, func() { a.Free(nil) })
}

func TestDefault_LazyAndSwap(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	d := Default()
	require.NotNil(t, d)
	assert.Same(t, d, Default(), "default is constructed once")

	custom := NewGoAllocator()
	SetDefault(custom)
	assert.Same(t, Allocator(custom), Default())

	ResetDefault()
	assert.NotSame(t, Allocator(custom), Default())
}

func TestPackageHelpers_NilMeansDefault(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	b := Allocate(nil, 10)
	require.Len(t, b, 10)

	b = Reallocate(nil, 20, b)
	require.Len(t, b, 20)

	assert.NotPanics(t, func() { Free(nil, b) })
}

func TestCheckedAllocator_TracksLeaks(t *testing.T) {
	c := NewCheckedAllocator(NewGoAllocator())

	b1 := c.Allocate(128)
	require.NotNil(t, b1)
	b2 := c.Allocate(64)
	require.NotNil(t, b2)
	assert.Equal(t, 192, c.AllocatedBytes())

	c.Free(b1)
	assert.Equal(t, 64, c.AllocatedBytes())

	leaks := c.Leaks()
	require.Len(t, leaks, 1)
	assert.Equal(t, 64, leaks[0].Size)
	assert.Contains(t, leaks[0].File, "mem_test.go", "leak should point at the allocating line")

	c.Free(b2)
	assert.Zero(t, c.AllocatedBytes())
	c.AssertEmpty(t)
}

func TestCheckedAllocator_ReallocateRetiresOldBlock(t *testing.T) {
	c := NewCheckedAllocator(nil)

	b := c.Allocate(32)
	nb := c.Reallocate(48, b)
	require.Len(t, nb, 48)
	assert.Equal(t, 48, c.AllocatedBytes(), "old record retired, new one registered")

	c.Free(nb)
	c.AssertEmpty(t)
}
