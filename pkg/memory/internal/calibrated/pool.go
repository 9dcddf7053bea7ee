// Package calibrated implements a pool of element slices kept in power-of-two
// capacity buckets. It counts which buckets are returned most and, once
// enough returns have been seen, stops retaining buckets above the 95th
// percentile.
package calibrated

import (
	"math/bits"
	"slices"
	"sync"
	"sync/atomic"
)

const (
	MinBitSize = 3  // 8 elements
	Steps      = 24 // 8 to 64Mi elements

	MinSize = 1 << MinBitSize
	MaxSize = 1 << (MinBitSize + Steps - 1)

	CalibrateThreshold = 42000
	Percentile95       = 0.95
)

// Pool recycles []E buffers. Every pooled buffer has a capacity that is
// exactly one of the bucket sizes.
type Pool[E any] struct {
	returns     [Steps]atomic.Uint64
	calibrating atomic.Bool
	defaultSize atomic.Uint64
	maxSize     atomic.Uint64
	buckets     [Steps]sync.Pool
	clearOnPut  bool
}

// Stats is a snapshot of a pool's bookkeeping.
type Stats struct {
	// Returns counts Put calls per bucket since the last calibration.
	Returns [Steps]uint64
	// DefaultSize is the most returned bucket size, 0 before calibration.
	DefaultSize uint64
	// MaxSize is the largest retained bucket size, 0 before calibration.
	MaxSize uint64
}

// New creates a pool. With clearOnPut set, returned buffers are zeroed
// over their full capacity before being retained.
func New[E any](clearOnPut bool) *Pool[E] {
	p := &Pool[E]{clearOnPut: clearOnPut}
	for i := range p.buckets {
		size := BucketSize(i)
		p.buckets[i].New = func() any {
			return make([]E, size)
		}
	}
	return p
}

// Get returns a buffer of length n whose capacity is the smallest bucket
// holding n. Requests beyond the largest bucket get an exact, unpooled
// allocation. n <= 0 yields nil.
func (p *Pool[E]) Get(n int) []E {
	if n <= 0 {
		return nil
	}
	idx := BucketIndex(n)
	if idx >= Steps {
		return make([]E, n)
	}
	return p.buckets[idx].Get().([]E)[:n]
}

// Put hands buf back. Buffers whose capacity is not a bucket size, or is
// above the calibrated limit, are left to the garbage collector.
func (p *Pool[E]) Put(buf []E) {
	size := cap(buf)
	if size == 0 {
		return
	}
	idx := BucketIndex(size)
	if idx >= Steps || BucketSize(idx) != size {
		return
	}

	if p.returns[idx].Add(1) > CalibrateThreshold {
		p.calibrate()
	}
	if limit := p.maxSize.Load(); limit > 0 && uint64(size) > limit {
		return
	}

	buf = buf[:size]
	if p.clearOnPut {
		clear(buf)
	}
	p.buckets[idx].Put(buf)
}

// Stats returns the current bookkeeping.
func (p *Pool[E]) Stats() Stats {
	s := Stats{
		DefaultSize: p.defaultSize.Load(),
		MaxSize:     p.maxSize.Load(),
	}
	for i := range p.returns {
		s.Returns[i] = p.returns[i].Load()
	}
	return s
}

// calibrate resets the return counters and derives the default size (the
// most returned bucket) and the retention limit (the largest bucket among
// those that together cover 95% of returns, most returned first).
func (p *Pool[E]) calibrate() {
	if !p.calibrating.CompareAndSwap(false, true) {
		return
	}
	defer p.calibrating.Store(false)

	type usage struct {
		returns uint64
		size    uint64
	}
	seen := make([]usage, Steps)
	var total uint64
	for i := range p.returns {
		n := p.returns[i].Swap(0)
		seen[i] = usage{returns: n, size: uint64(BucketSize(i))}
		total += n
	}
	slices.SortStableFunc(seen, func(a, b usage) int {
		switch {
		case a.returns > b.returns:
			return -1
		case a.returns < b.returns:
			return 1
		}
		return 0
	})

	defaultSize := seen[0].size
	limit := defaultSize
	threshold := uint64(float64(total) * Percentile95)
	var covered uint64
	for _, u := range seen {
		if covered > threshold {
			break
		}
		covered += u.returns
		limit = max(limit, u.size)
	}

	p.defaultSize.Store(defaultSize)
	p.maxSize.Store(limit)
}

// BucketIndex returns the index of the smallest bucket holding n elements.
// It returns Steps or more when n exceeds MaxSize.
func BucketIndex(n int) int {
	if n <= MinSize {
		return 0
	}
	return bits.Len(uint(n-1) >> MinBitSize)
}

// BucketSize returns the capacity of bucket i, or 0 when i is out of range.
func BucketSize(i int) int {
	if i < 0 || i >= Steps {
		return 0
	}
	return MinSize << i
}
