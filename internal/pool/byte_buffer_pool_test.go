package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	got := bb.Bytes()

	assert.Equal(t, []byte("hello"), got)
	// Should return the same underlying slice
	assert.True(t, &bb.B[0] == &got[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_String(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)
	bb.MustWrite([]byte("0100011"))

	s := bb.String()
	assert.Equal(t, "0100011", s)

	// The string must be detached from the buffer.
	bb.Reset()
	bb.MustWrite([]byte("xxxxxxx"))
	assert.Equal(t, "0100011", s)
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(TextBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_LenCap(t *testing.T) {
	bb := NewByteBuffer(64)

	assert.Equal(t, 0, bb.Len(), "empty buffer should have zero length")
	assert.Equal(t, 64, bb.Cap())

	bb.MustWrite([]byte("test"))
	assert.Equal(t, 4, bb.Len(), "buffer length should match data")
}

func TestByteBuffer_MustWriteByte(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.MustWriteByte('0')
	bb.MustWriteByte('1')
	bb.MustWriteByte('1')

	assert.Equal(t, []byte("011"), bb.B)
}

func TestByteBuffer_MustWriteString(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.MustWriteString("0100")
	bb.MustWriteString("001")

	assert.Equal(t, "0100001", string(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("grows when capacity insufficient", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite(bytes.Repeat([]byte{'1'}, 16))

		bb.Grow(32)

		assert.GreaterOrEqual(t, cap(bb.B)-len(bb.B), 32)
		assert.Equal(t, bytes.Repeat([]byte{'1'}, 16), bb.B, "Grow should preserve contents")
	})

	t.Run("no-op when capacity sufficient", func(t *testing.T) {
		bb := NewByteBuffer(64)
		before := cap(bb.B)

		bb.Grow(8)

		assert.Equal(t, before, cap(bb.B))
	})
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, []byte("hello world"), bb.B)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("001011"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
	assert.Equal(t, "001011", out.String())
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("scratch"))
	p.Put(bb)

	reused := p.Get()
	require.NotNil(t, reused)
	assert.Equal(t, 0, reused.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(32, 128)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	bb.Grow(1024) // exceeds the 64-byte threshold
	p.Put(bb)

	next := p.Get()
	assert.LessOrEqual(t, next.Cap(), 1024, "oversized buffer should not be retained")
	assert.Equal(t, 0, next.Len())
}

func TestDefaultPools(t *testing.T) {
	t.Run("bitstream pool", func(t *testing.T) {
		bb := GetBitstreamBuffer()
		require.NotNil(t, bb)
		assert.Equal(t, 0, bb.Len())
		bb.MustWriteString("0110100001")
		PutBitstreamBuffer(bb)
	})

	t.Run("text pool", func(t *testing.T) {
		bb := GetTextBuffer()
		require.NotNil(t, bb)
		assert.Equal(t, 0, bb.Len())
		bb.MustWriteByte('k')
		PutTextBuffer(bb)
	})
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				bb := p.Get()
				bb.MustWriteString("010101")
				p.Put(bb)
			}
		}()
	}
	wg.Wait()
}
