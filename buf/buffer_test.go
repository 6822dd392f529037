package buf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem"
	"github.com/joshuapare/memkit/mem/arena"
)

func TestBuffer_AppendHello(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendBlock([]byte("hello")))

	assert.Equal(t, 5, b.Size())
	assert.Equal(t, "hello", b.String())
}

func TestBuffer_InsertMiddle(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendString("abcd"))

	require.NoError(t, b.InsertBlock(2, []byte("XY")))
	assert.Equal(t, "abXYcd", b.String())
}

func TestBuffer_InsertPastEndFails(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendString("abcd"))

	err := b.InsertBlock(5, []byte("XY"))
	require.ErrorIs(t, err, ErrRange, "insert past the end fails, it does not clamp")
	assert.Equal(t, "abcd", b.String(), "buffer unchanged after failed insert")

	require.ErrorIs(t, b.InsertBlock(-1, []byte("X")), ErrRange)
	require.NoError(t, b.InsertBlock(4, []byte("!")), "pos == Size() appends")
	assert.Equal(t, "abcd!", b.String())
}

func TestBuffer_DeleteClampsCount(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendString("abcdef"))

	require.NoError(t, b.Delete(4, 100), "oversized count is clamped to the tail")
	assert.Equal(t, "abcd", b.String())

	require.ErrorIs(t, b.Delete(4, 1), ErrRange, "start at Size() is out of range")
	require.NoError(t, b.Delete(1, 2))
	assert.Equal(t, "ad", b.String())
}

func TestBuffer_AppendFill(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendFill('x', 1000))
	assert.Equal(t, 1000, b.Size())
	for _, v := range b.Bytes() {
		if v != 'x' {
			t.Fatalf("fill wrote wrong byte %q", v)
		}
	}
	require.NoError(t, b.AppendFill('y', 0))
	assert.Equal(t, 1000, b.Size())
}

func TestBuffer_MinimumGrowthStep(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendByte('a'))
	assert.GreaterOrEqual(t, b.Capacity(), 100,
		"single-byte append grows by at least the minimum step")
}

func TestBuffer_EstimateSizeRemembersStep(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.EstimateSize(1024, 512))
	assert.GreaterOrEqual(t, b.Capacity(), 1024)
	assert.Zero(t, b.Size(), "estimate reserves capacity without content")

	require.NoError(t, b.AppendFill('z', 1025))
	require.NoError(t, b.AppendByte('z'))
	assert.GreaterOrEqual(t, b.Capacity(), 1025+512,
		"growth uses the remembered step hint")
}

func TestBuffer_DetachAttachRoundTrip(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendString("roundtrip"))

	data := b.DetachBuffer()
	assert.Zero(t, b.Size(), "buffer empty after detach")
	assert.Equal(t, "roundtrip", string(data))

	b2 := New(nil)
	b2.AttachData(data)
	assert.Equal(t, "roundtrip", b2.String(), "attach reproduces the content exactly")
}

func TestBuffer_TakeOver(t *testing.T) {
	src := New(nil)
	require.NoError(t, src.AppendString("payload"))
	srcData := &src.Bytes()[0]

	dst := New(nil)
	require.NoError(t, dst.AppendString("old"))
	dst.TakeOver(src)

	assert.Equal(t, "payload", dst.String())
	assert.Zero(t, src.Size(), "source empty after move")
	assert.Same(t, srcData, &dst.Bytes()[0], "ownership transfer, not a copy")

	dst.TakeOver(dst) // self move is a no-op
	assert.Equal(t, "payload", dst.String())
}

func TestBuffer_AppendIntAndRune(t *testing.T) {
	b := New(nil)
	require.NoError(t, b.AppendInt(-1234))
	require.NoError(t, b.AppendRune('é'))
	assert.Equal(t, "-1234é", b.String())
}

func TestBuffer_ArenaExhaustionLeavesBufferValid(t *testing.T) {
	f := arena.NewFixed(256)
	defer f.Release()

	b := New(f)
	require.NoError(t, b.EstimateSize(64, 64))
	require.NoError(t, b.AppendFill('a', 64))

	err := b.AppendFill('b', 4096)
	require.ErrorIs(t, err, mem.ErrNoSpace)
	assert.Equal(t, 64, b.Size(), "failed growth leaves prior content intact")
	assert.Equal(t, byte('a'), b.Bytes()[63])
}

// TestBuffer_DifferentialOracle replays a random operation sequence against
// a plain slice model and asserts identical content at every step.
func TestBuffer_DifferentialOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New(nil)
	var model []byte

	for step := 0; step < 2000; step++ {
		switch rng.Intn(4) {
		case 0: // append block
			n := rng.Intn(16)
			block := make([]byte, n)
			rng.Read(block)
			require.NoError(t, b.AppendBlock(block))
			model = append(model, block...)
		case 1: // insert block
			if len(model) == 0 {
				continue
			}
			pos := rng.Intn(len(model) + 1)
			block := make([]byte, rng.Intn(8))
			rng.Read(block)
			require.NoError(t, b.InsertBlock(pos, block))
			model = append(model[:pos], append(append([]byte{}, block...), model[pos:]...)...)
		case 2: // delete
			if len(model) == 0 {
				continue
			}
			start := rng.Intn(len(model))
			count := rng.Intn(8)
			require.NoError(t, b.Delete(start, count))
			end := start + count
			if end > len(model) {
				end = len(model)
			}
			model = append(model[:start], model[end:]...)
		case 3: // append fill
			n := rng.Intn(8)
			require.NoError(t, b.AppendFill(byte(step), n))
			for i := 0; i < n; i++ {
				model = append(model, byte(step))
			}
		}
		require.Equal(t, string(model), b.String(), "divergence at step %d", step)
	}
}
