// Package vector implements Vector, a growable array that owns a single
// contiguous buffer and moves elements in bulk.
//
// Growth, insertion shifts, erase compaction, Clone and Assign relocate whole
// ranges at once. For pointer-free element types the ranges are moved as raw
// bytes; for types that hold pointers the same moves go through typed copies
// and abandoned slots are zeroed so their referents can be collected.
//
// A Vector is NOT thread-safe. Slices and pointers obtained from Slice, Ref
// or All are invalidated by any call that may reallocate (Reserve, PushBack,
// Insert, InsertN, InsertSlice, Assign, UnmarshalBinary) and by Release.
package vector

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-vector/pkg/memory"
	"github.com/huynhanx03/go-vector/pkg/utils"
)

var nopLogger = zap.NewNop()

// Vector is a growable sequence of T. The zero value is an empty vector
// backed by the heap allocator and holds no memory until first growth.
type Vector[T any] struct {
	buf    []T // len(buf) is the capacity
	length int
	alloc  memory.Allocator[T]
	maxCap int
	log    *zap.Logger
	layout memory.Layout
	probed bool
	stats  Stats
}

// Stats counts the relocation work a vector has done.
type Stats struct {
	// Reallocations is the number of times the buffer was replaced.
	Reallocations int
	// Relocated is the number of elements transferred by bulk moves: growth,
	// insertion shifts, erase compaction and copies.
	Relocated int
}

// New creates an empty vector with zero capacity.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFill creates a vector holding n copies of value.
func NewFill[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if _, err := v.InsertN(0, n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFrom creates a vector holding a copy of src.
func NewFrom[T any](src []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if _, err := v.InsertSlice(0, src); err != nil {
		return nil, err
	}
	return v, nil
}

// Clone returns an independent copy of v sharing its options. The copy's
// buffer is sized by the growth policy for v.Len() elements.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{
		alloc:  v.alloc,
		maxCap: v.maxCap,
		log:    v.log,
		layout: v.layout,
		probed: v.probed,
	}
	if err := c.Reserve(v.length); err != nil {
		return nil, err
	}
	c.move(c.buf[:v.length], v.buf[:v.length])
	c.length = v.length
	return c, nil
}

// Assign replaces the contents of v with a copy of src. The existing buffer
// is reused when it is large enough. Assigning a vector to itself is a no-op.
// On error v is left empty.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}

	old := v.length
	v.length = 0
	if err := v.Reserve(src.length); err != nil {
		v.vacate(v.buf[:old])
		return err
	}
	v.move(v.buf[:src.length], src.buf[:src.length])
	v.length = src.length
	if old > v.length {
		v.vacate(v.buf[v.length:old])
	}
	return nil
}

// Release returns the buffer to the allocator and resets v to an empty
// vector with zero capacity. v may be reused afterwards.
func (v *Vector[T]) Release() {
	if v.buf != nil {
		v.allocator().Free(v.buf)
	}
	v.buf = nil
	v.length = 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// IsEmpty reports whether v has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// Clear drops all elements and keeps the buffer.
func (v *Vector[T]) Clear() {
	v.vacate(v.buf[:v.length])
	v.length = 0
}

// Stats returns the relocation counters.
func (v *Vector[T]) Stats() Stats {
	return v.stats
}

// At returns the element at i. It panics if i is outside [0, Len()).
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.buf[i]
}

// Set replaces the element at i. It panics if i is outside [0, Len()).
func (v *Vector[T]) Set(i int, value T) {
	v.checkIndex(i)
	v.buf[i] = value
}

// Ref returns a pointer to the element at i. It panics if i is outside
// [0, Len()). The pointer is invalidated by reallocation.
func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex(i)
	return &v.buf[i]
}

// Front returns the first element. It panics if v is empty.
func (v *Vector[T]) Front() T {
	return v.At(0)
}

// Back returns the last element. It panics if v is empty.
func (v *Vector[T]) Back() T {
	return v.At(v.length - 1)
}

// Slice returns the live elements as a slice aliasing the buffer. Its
// capacity is clipped so appending to it never writes into spare slots.
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.length:v.length]
}

// All returns an iterator over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// PushBack appends value at the end.
func (v *Vector[T]) PushBack(value T) error {
	if err := v.Reserve(v.length + 1); err != nil {
		return err
	}
	v.buf[v.length] = value
	v.length++
	return nil
}

// PopBack removes the last element. It panics if v is empty.
// For pointer-free types the vacated slot keeps its bytes.
func (v *Vector[T]) PopBack() {
	if v.length == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.length--
	v.vacate(v.buf[v.length : v.length+1])
}

// Insert places value at pos, shifting later elements right, and returns pos.
// pos may equal Len().
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if err := v.checkPos(pos); err != nil {
		return pos, err
	}
	if err := v.reserveGap(pos, 1); err != nil {
		return pos, err
	}
	v.buf[pos] = value
	v.length++
	return pos, nil
}

// InsertN places n copies of value at pos and returns pos.
// n <= 0 is a no-op.
func (v *Vector[T]) InsertN(pos, n int, value T) (int, error) {
	if err := v.checkPos(pos); err != nil {
		return pos, err
	}
	if n <= 0 {
		return pos, nil
	}
	if err := v.reserveGap(pos, n); err != nil {
		return pos, err
	}
	gap := v.buf[pos : pos+n]
	for i := range gap {
		gap[i] = value
	}
	v.length += n
	return pos, nil
}

// InsertSlice copies values into v at pos and returns pos. values may alias
// v's own elements.
func (v *Vector[T]) InsertSlice(pos int, values []T) (int, error) {
	if err := v.checkPos(pos); err != nil {
		return pos, err
	}
	n := len(values)
	if n == 0 {
		return pos, nil
	}
	if overlaps(values, v.buf) {
		// The gap shift or the reallocation would clobber the source.
		values = append([]T(nil), values...)
	}
	if err := v.reserveGap(pos, n); err != nil {
		return pos, err
	}
	v.move(v.buf[pos:pos+n], values)
	v.length += n
	return pos, nil
}

// EraseRange removes the elements in [first, last), preserving the order of
// the rest. Capacity is unchanged.
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || first > last || last > v.length {
		return outOfRange("erase range [%d, %d) of %d elements", first, last, v.length)
	}
	if first == last {
		return nil
	}
	v.move(v.buf[first:], v.buf[last:v.length])
	old := v.length
	v.length -= last - first
	v.vacate(v.buf[v.length:old])
	return nil
}

// Erase removes the element at pos. pos == Len() is a no-op.
func (v *Vector[T]) Erase(pos int) error {
	if pos == v.length {
		return nil
	}
	return v.EraseRange(pos, pos+1)
}

// Swap exchanges the contents of v and other, including the allocator that
// owns each buffer. Options such as the logger and max capacity stay put.
func (v *Vector[T]) Swap(other *Vector[T]) {
	utils.Swap(&v.buf, &other.buf)
	utils.Swap(&v.length, &other.length)
	utils.Swap(&v.alloc, &other.alloc)
}

// Index returns the index of the first element equal to value, or v.Len()
// if there is none.
func Index[T comparable](v *Vector[T], value T) int {
	return utils.Find(v.buf, 0, v.length, value)
}

// Contains reports whether value is present in v.
func Contains[T comparable](v *Vector[T], value T) bool {
	return Index(v, value) != v.length
}

func (v *Vector[T]) checkIndex(i int) {
	if uint(i) >= uint(v.length) {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.length))
	}
}

func (v *Vector[T]) checkPos(pos int) error {
	if pos < 0 || pos > v.length {
		return outOfRange("position %d of %d elements", pos, v.length)
	}
	return nil
}

func (v *Vector[T]) allocator() memory.Allocator[T] {
	if v.alloc == nil {
		v.alloc = memory.Heap[T]{}
	}
	return v.alloc
}

func (v *Vector[T]) logger() *zap.Logger {
	if v.log == nil {
		return nopLogger
	}
	return v.log
}
