//go:build !linux

package memory

// Mmap is only available on linux.
type Mmap[T any] struct{}

// NewMmap always fails with ErrUnsupported off linux.
func NewMmap[T any]() (*Mmap[T], error) {
	return nil, ErrUnsupported
}

// Allocate implements Allocator.
func (m *Mmap[T]) Allocate(int) ([]T, error) {
	return nil, ErrUnsupported
}

// Free implements Allocator.
func (m *Mmap[T]) Free([]T) {}
