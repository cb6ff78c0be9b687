// Package pool provides pooled buffers for the sample codec.
package pool

import "sync"

const (
	// TokenBufferDefaultSize fits the raw payload of a full sample (100 points, 2 columns).
	TokenBufferDefaultSize = 2 * 1024
	// TokenBufferMaxThreshold is the largest buffer kept in the pool.
	TokenBufferMaxThreshold = 64 * 1024
)

// ByteBuffer wraps a byte slice that encoders append to in place.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// ByteBufferPool is a sync.Pool of ByteBuffers that drops buffers grown
// beyond maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start with defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var tokenDefaultPool = NewByteBufferPool(TokenBufferDefaultSize, TokenBufferMaxThreshold)

// GetTokenBuffer retrieves a ByteBuffer from the default token pool.
func GetTokenBuffer() *ByteBuffer {
	return tokenDefaultPool.Get()
}

// PutTokenBuffer returns a ByteBuffer to the default token pool.
func PutTokenBuffer(bb *ByteBuffer) {
	tokenDefaultPool.Put(bb)
}
