package bound

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_Overflow(t *testing.T) {
	_, ok := Add(math.MaxInt, 1)
	assert.False(t, ok, "MaxInt+1 should overflow")

	v, ok := Add(math.MaxInt-1, 1)
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, v)

	_, ok = Add(math.MinInt, -1)
	assert.False(t, ok, "MinInt-1 should overflow")
}

func TestMul_Overflow(t *testing.T) {
	v, ok := Mul(0, math.MaxInt)
	assert.True(t, ok)
	assert.Zero(t, v)

	_, ok = Mul(math.MaxInt/2, 3)
	assert.False(t, ok, "should overflow")

	v, ok = Mul(1024, 1024)
	assert.True(t, ok)
	assert.Equal(t, 1<<20, v)
}

func TestSlice_Bounds(t *testing.T) {
	b := make([]byte, 16)

	s, ok := Slice(b, 4, 8)
	assert.True(t, ok)
	assert.Len(t, s, 8)

	_, ok = Slice(b, 12, 8)
	assert.False(t, ok, "12+8 exceeds len 16")

	_, ok = Slice(b, -1, 4)
	assert.False(t, ok, "negative offset")

	_, ok = Slice(b, 8, math.MaxInt)
	assert.False(t, ok, "overflowing length")

	assert.True(t, Has(b, 0, 16))
	assert.False(t, Has(b, 0, 17))
}

func TestAlign8(t *testing.T) {
	cases := map[int]int{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 63: 64}
	for in, want := range cases {
		assert.Equal(t, want, Align8(in), "Align8(%d)", in)
	}
}
