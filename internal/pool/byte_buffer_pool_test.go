package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 256
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(WordBufferDefaultSize)
	bb.MustWrite([]byte("0x"))

	bytes := bb.Bytes()

	assert.Equal(t, []byte("0x"), bytes)
	assert.True(t, &bb.B[0] == &bytes[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(WordBufferDefaultSize)
	bb.MustWrite(make([]byte, 64))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(WordBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Equal(t, []byte("hello world"), bb.Bytes())
	assert.Equal(t, 11, bb.Len())
}

// =============================================================================
// Grow Tests
// =============================================================================

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(WordBufferDefaultSize)
		originalCap := bb.Cap()

		bb.Grow(100)
		bb.Grow(0)

		assert.Equal(t, originalCap, bb.Cap(), "should not reallocate when capacity is sufficient")
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(WordBufferDefaultSize)
		bb.MustWrite(make([]byte, WordBufferDefaultSize))

		bb.Grow(1)

		assert.GreaterOrEqual(t, bb.Cap(), 2*WordBufferDefaultSize)
		assert.Equal(t, WordBufferDefaultSize, bb.Len(), "length should not change")
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		bb := NewByteBuffer(WordBufferDefaultSize)
		largeSize := 4*WordBufferDefaultSize + 1024
		bb.B = make([]byte, largeSize)

		bb.Grow(64)

		assert.GreaterOrEqual(t, bb.Cap(), largeSize+largeSize/4)
	})

	t.Run("request larger than default growth", func(t *testing.T) {
		bb := NewByteBuffer(WordBufferDefaultSize)
		bb.MustWrite(make([]byte, WordBufferDefaultSize))

		hugeSize := WordBufferDefaultSize * 10
		bb.Grow(hugeSize)

		assert.GreaterOrEqual(t, bb.Cap(), WordBufferDefaultSize+hugeSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(32)
		data := []byte("data that must survive reallocation")
		bb.MustWrite(data)

		bb.Grow(WordBufferDefaultSize * 2)

		assert.Equal(t, data, bb.Bytes())
	})
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetWordBuffer(t *testing.T) {
	bb := GetWordBuffer()
	defer PutWordBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, bb.Cap(), WordBufferDefaultSize)
}

func TestPutWordBuffer_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutWordBuffer(nil)
	})
}

func TestPool_ResetsClearsData(t *testing.T) {
	bb := GetWordBuffer()
	bb.MustWrite([]byte("claim data"))

	PutWordBuffer(bb)
	assert.Equal(t, 0, bb.Len(), "PutWordBuffer should reset the buffer")

	bb2 := GetWordBuffer()
	assert.Equal(t, 0, bb2.Len(), "buffer should be empty after retrieval from pool")
	PutWordBuffer(bb2)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetWordBuffer()
				bb.MustWrite([]byte("word"))
				assert.Equal(t, 4, bb.Len())
				PutWordBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	t.Run("discards oversized buffers", func(t *testing.T) {
		pool := NewByteBufferPool(1024, 4096)

		bb := pool.Get()
		bb.Grow(10000)
		assert.Greater(t, bb.Cap(), 4096)

		pool.Put(bb)

		bb2 := pool.Get()
		assert.LessOrEqual(t, bb2.Cap(), 4096, "should not reuse buffer larger than threshold")
	})

	t.Run("zero threshold keeps everything", func(t *testing.T) {
		pool := NewByteBufferPool(1024, 0)

		bb := pool.Get()
		bb.Grow(1024 * 1024)
		pool.Put(bb)

		assert.NotNil(t, pool.Get())
	})
}
