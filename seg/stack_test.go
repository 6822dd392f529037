package seg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPopOrder(t *testing.T) {
	s := NewStack[int](4)

	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	require.Equal(t, 10, s.Len())

	for i := 9; i >= 0; i-- {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := s.Pop()
	assert.False(t, ok, "pop on empty stack reports failure")
}

func TestStack_Top(t *testing.T) {
	s := NewStack[string](0)
	assert.Nil(t, s.Top())

	s.Push("a")
	s.Push("b")
	require.NotNil(t, s.Top())
	assert.Equal(t, "b", *s.Top())

	*s.Top() = "B"
	v, _ := s.Pop()
	assert.Equal(t, "B", v, "Top exposes a writable slot")
}

func TestStack_RemoveAll(t *testing.T) {
	s := NewStack[int](4)
	s.Push(1)
	s.RemoveAll()
	s.RemoveAll()
	assert.Zero(t, s.Len())
	s.Push(2)
	assert.Equal(t, 1, s.Len())
}
