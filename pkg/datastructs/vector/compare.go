package vector

import (
	"bytes"
	"cmp"

	"github.com/cespare/xxhash/v2"

	"github.com/huynhanx03/go-vector/pkg/utils"
)

// Equal reports whether a and b have the same length and identical live
// bytes. The comparison is on memory, not on T's notion of equality: NaNs
// with the same payload are equal, +0 and -0 differ, and for types holding
// pointers (strings, slices, interfaces) it compares identity rather than
// pointed-to contents. Use EqualValues or EqualFunc for element semantics.
func Equal[T any](a, b *Vector[T]) bool {
	if a.length != b.length {
		return false
	}
	return a.length == 0 || bytes.Equal(utils.SliceToBytes(a.Slice()), utils.SliceToBytes(b.Slice()))
}

// EqualValues reports whether a and b hold equal elements in the same order,
// using ==.
func EqualValues[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b hold elements that are pairwise equal
// under eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a orders before b: elements are compared pairwise
// with < over the shorter length, and a shorter prefix orders first.
// Less is element-wise and so may disagree with the bitwise Equal.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessFunc is Less with a caller-supplied ordering.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	n := utils.Min(a.length, b.length)
	for i := 0; i < n; i++ {
		if less(a.buf[i], b.buf[i]) {
			return true
		}
		if less(b.buf[i], a.buf[i]) {
			return false
		}
	}
	return a.length < b.length
}

// Compare returns -1, 0 or +1 comparing a and b lexicographically with
// cmp.Compare, shorter prefix first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := utils.Min(a.length, b.length)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.length, b.length)
}

// Hash returns the xxhash of the live bytes. Vectors that are Equal have
// the same hash.
func (v *Vector[T]) Hash() uint64 {
	return xxhash.Sum64(utils.SliceToBytes(v.Slice()))
}
