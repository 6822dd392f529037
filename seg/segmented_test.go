package seg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentedArray_AddAndGetAt(t *testing.T) {
	a := NewSegmentedArray[int](4)

	for i := 0; i < 10; i++ {
		*a.Add() = i * 100
	}

	require.Equal(t, 10, a.Count())
	assert.Equal(t, 3, a.Segments(), "10 elements at 4 per segment need 4+4+2")

	p := a.GetAt(7)
	require.NotNil(t, p)
	assert.Equal(t, 700, *p, "random access hits the 8th element directly")

	assert.Nil(t, a.GetAt(10))
	assert.Nil(t, a.GetAt(-1))
}

func TestSegmentedArray_PointersStableAcrossGrowth(t *testing.T) {
	a := NewSegmentedArray[int](4)
	first := a.Append(1)

	// Growth allocates new segments; existing ones never move.
	for i := 0; i < 100; i++ {
		a.Append(i)
	}
	assert.Equal(t, 1, *first, "pointer into first segment survives growth")
	assert.Same(t, first, a.GetAt(0))
}

func TestSegmentedArray_Delete(t *testing.T) {
	a := NewSegmentedArray[int](4)
	for i := 0; i < 10; i++ {
		a.Append(i)
	}

	require.True(t, a.Delete(2, 3)) // drop 2,3,4
	assert.Equal(t, 7, a.Count())
	want := []int{0, 1, 5, 6, 7, 8, 9}
	for i, w := range want {
		assert.Equal(t, w, *a.GetAt(i), "index %d after delete", i)
	}
	assert.Equal(t, 2, a.Segments(), "empty tail segments are released")

	require.True(t, a.Delete(5, 100), "oversized count clamps to the tail")
	assert.Equal(t, 5, a.Count())
	assert.False(t, a.Delete(5, 1), "start past the end is rejected")
}

func TestSegmentedArray_RemoveAllIdempotent(t *testing.T) {
	a := NewSegmentedArray[string](4)
	a.Append("x")
	a.Append("y")

	a.RemoveAll()
	assert.Zero(t, a.Count())
	assert.Zero(t, a.Segments())

	a.RemoveAll()
	assert.Zero(t, a.Count(), "second RemoveAll is safe and still zero")

	a.Append("fresh")
	assert.Equal(t, 1, a.Count(), "array usable after RemoveAll")
}

func TestSegmentedArray_SetAtAndIterate(t *testing.T) {
	a := NewSegmentedArray[int](0) // default segment size
	for j := 0; j < 5; j++ {
		a.Add()
	}
	require.True(t, a.SetAt(3, 42))
	assert.False(t, a.SetAt(5, 1))

	sum := 0
	a.Iterate(func(i int, p *int) bool {
		sum += *p
		return true
	})
	assert.Equal(t, 42, sum)

	visited := 0
	a.Iterate(func(i int, p *int) bool {
		visited++
		return i < 1
	})
	assert.Equal(t, 2, visited, "iteration stops when fn returns false")
}
