// Package memory provides the storage backends a vector allocates its
// element buffers from, and the layout probe that decides whether those
// buffers may be relocated as raw bytes.
package memory

// Allocator hands out element buffers. Allocate returns a slice whose length
// is exactly n; the contents are unspecified. Free takes back a slice that
// Allocate returned, with its length and capacity untouched, and may panic
// when handed anything else. The caller must not use a buffer after freeing
// it.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Free(buf []T)
}

// Heap allocates from the Go heap. Free is a no-op; the garbage collector
// reclaims released buffers.
type Heap[T any] struct{}

// Allocate returns a zeroed slice of n elements.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if err := checkCount(n, LayoutOf[T]()); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Free implements Allocator.
func (Heap[T]) Free([]T) {}
