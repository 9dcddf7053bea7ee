package vector

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-vector/pkg/utils"
)

// Reserve ensures Cap() >= n. When the buffer has to grow, the new capacity
// is the larger of n and twice the current capacity (5 for an empty vector),
// clamped to the max capacity, and the live elements are copied over in bulk.
func (v *Vector[T]) Reserve(n int) error {
	if len(v.buf) >= n {
		return nil
	}
	target, err := v.growth(n)
	if err != nil {
		return err
	}
	return v.reallocate(target, v.length, 0)
}

// growth returns the capacity to allocate when n slots are needed.
func (v *Vector[T]) growth(n int) (int, error) {
	return nextCapacity(len(v.buf), n, v.maxCap)
}

// nextCapacity applies the growth policy: the larger of n and twice cur
// (initialCapacity when cur is 0), clamped to maxCap when it is positive.
func nextCapacity(cur, n, maxCap int) (int, error) {
	target := initialCapacity
	if cur > 0 {
		target = math.MaxInt
		if cur <= math.MaxInt/growthFactor {
			target = cur * growthFactor
		}
	}
	target = utils.Max(target, n)

	if maxCap > 0 {
		if n > maxCap {
			return 0, errors.Wrapf(ErrCapacityExceeded, "need %d slots (limit: %d)", n, maxCap)
		}
		target = utils.Min(target, maxCap)
	}
	return target, nil
}

// reserveGap opens n free slots at index at, moving [at, Len()) to
// [at+n, Len()+n). Length is not changed; the caller fills the gap.
func (v *Vector[T]) reserveGap(at, n int) error {
	if n > math.MaxInt-v.length {
		return errors.Wrapf(ErrOutOfMemory, "insert %d elements into %d", n, v.length)
	}
	if v.length+n <= len(v.buf) {
		v.move(v.buf[at+n:v.length+n], v.buf[at:v.length])
		return nil
	}
	target, err := v.growth(v.length + n)
	if err != nil {
		return err
	}
	return v.reallocate(target, at, n)
}

// reallocate replaces the buffer with one of target slots. The prefix
// [0, at) keeps its place and the suffix [at, Len()) lands gap slots later.
func (v *Vector[T]) reallocate(target, at, gap int) error {
	nbuf, err := v.allocator().Allocate(target)
	if err != nil {
		v.logger().Warn("vector allocation failed",
			zap.Int("request", target),
			zap.Int("cap", len(v.buf)),
			zap.Error(err),
		)
		return errors.Wrapf(err, "grow vector to %d slots", target)
	}

	old := v.buf
	if old != nil {
		v.move(nbuf[:at], old[:at])
		v.move(nbuf[at+gap:v.length+gap], old[at:v.length])
		v.allocator().Free(old)
	}
	v.buf = nbuf
	v.stats.Reallocations++

	if ce := v.logger().Check(zap.DebugLevel, "vector reallocated"); ce != nil {
		ce.Write(
			zap.Int("from", len(old)),
			zap.Int("to", target),
			zap.Int("len", v.length),
			zap.Int("gap", gap),
		)
	}
	return nil
}
