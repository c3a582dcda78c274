// File: core/memory/pool.go
// Author: theMoor9
// License: Apache-2.0
//
// FIFO buffer pool backing the PoolBased strategy.

package memory

import (
	"github.com/eapache/queue"

	"github.com/theMoor9/SolidArx-Framework/internal/pagealloc"
)

// bufferPool is an ordered FIFO collection of pre-allocated buffers. A nil
// *bufferPool means "absent": pool-based managers always carry a non-nil
// pool, even when it holds no buffers.
type bufferPool struct {
	q *queue.Queue
}

// newBufferPool eagerly fills the pool with poolSize/bufferSize
// fixed-length zeroed buffers. The division remainder of the byte budget
// is discarded; a budget below one buffer yields a present-but-empty pool.
func newBufferPool(bufferSize, poolSize int) *bufferPool {
	p := &bufferPool{q: queue.New()}
	for i := 0; i < poolSize/bufferSize; i++ {
		p.q.Add(pagealloc.Alloc(bufferSize))
	}
	return p
}

// popFront removes and returns the oldest buffer. ok is false when the
// pool holds no buffers.
func (p *bufferPool) popFront() (buf []byte, ok bool) {
	if p.q.Length() == 0 {
		return nil, false
	}
	return p.q.Remove().([]byte), true
}

// pushBack appends a returned buffer. The length is deliberately not
// checked: deallocation dispatches on the manager's default strategy, so a
// buffer produced under a per-call override may enter the pool with a
// foreign length.
func (p *bufferPool) pushBack(buf []byte) {
	p.q.Add(buf)
}

func (p *bufferPool) len() int {
	return p.q.Length()
}
