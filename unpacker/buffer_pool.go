package unpacker

import (
	"sync"
)

const copyBufferSize = 256 * 1024

// BufferPool manages reusable copy buffers to reduce GC pressure
type BufferPool struct {
	pool sync.Pool
	size int
}

func newBufferPool(size int) *BufferPool {
	bp := &BufferPool{size: size}
	bp.pool.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return bp
}

// Get retrieves a buffer of the pool size
func (bp *BufferPool) Get() []byte {
	return *(bp.pool.Get().(*[]byte))
}

// Put returns a buffer to the pool; foreign sizes are dropped
func (bp *BufferPool) Put(buf []byte) {
	if cap(buf) != bp.size {
		return
	}
	buf = buf[:bp.size]
	bp.pool.Put(&buf)
}

var globalBufferPool = newBufferPool(copyBufferSize)
