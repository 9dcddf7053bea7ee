package memory

import (
	"github.com/huynhanx03/go-vector/pkg/memory/internal/calibrated"
)

// Pooled recycles buffers through power-of-two size buckets. A freed buffer
// is handed out again to the next request that rounds to the same bucket.
// Pooled is safe for concurrent use, so one instance may back many vectors.
type Pooled[T any] struct {
	layout Layout
	pool   *calibrated.Pool[T]
}

// NewPooled creates a pooled allocator. Buffers of pointer-bearing element
// types are cleared on return so the pool does not keep their referents alive.
func NewPooled[T any]() *Pooled[T] {
	l := LayoutOf[T]()
	return &Pooled[T]{
		layout: l,
		pool:   calibrated.New[T](!l.PointerFree),
	}
}

// Allocate returns a slice of length n backed by a bucket of at least n slots.
func (p *Pooled[T]) Allocate(n int) ([]T, error) {
	if err := checkCount(n, p.layout); err != nil {
		return nil, err
	}
	return p.pool.Get(n), nil
}

// Free returns buf's bucket to the pool.
func (p *Pooled[T]) Free(buf []T) {
	p.pool.Put(buf)
}

// PoolStats reports how a Pooled allocator has been used.
type PoolStats = calibrated.Stats

// Stats returns per-bucket return counts and the calibrated sizes.
func (p *Pooled[T]) Stats() PoolStats {
	return p.pool.Stats()
}
