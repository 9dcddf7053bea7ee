package vector

import (
	"slices"
	"testing"

	"github.com/huynhanx03/go-vector/pkg/memory"
)

func mustFrom[T any](t testing.TB, src []T, opts ...Option[T]) *Vector[T] {
	t.Helper()
	v, err := NewFrom(src, opts...)
	if err != nil {
		t.Fatalf("NewFrom(%v) error: %v", src, err)
	}
	return v
}

func contents[T any](v *Vector[T]) []T {
	return append([]T{}, v.Slice()...)
}

func assertContents[T comparable](t testing.TB, v *Vector[T], want []T) {
	t.Helper()
	if got := contents(v); !slices.Equal(got, want) {
		t.Fatalf("contents = %v, want %v", got, want)
	}
	if v.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", v.Len(), len(want))
	}
}

func assertPanics(t testing.TB, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// failingAllocator refuses every request.
type failingAllocator[T any] struct{}

func (failingAllocator[T]) Allocate(int) ([]T, error) { return nil, memory.ErrOutOfMemory }
func (failingAllocator[T]) Free([]T)                  {}

// countingAllocator wraps the heap allocator and records traffic.
type countingAllocator[T any] struct {
	allocs int
	frees  int
	sizes  []int
}

func (c *countingAllocator[T]) Allocate(n int) ([]T, error) {
	c.allocs++
	c.sizes = append(c.sizes, n)
	return memory.Heap[T]{}.Allocate(n)
}

func (c *countingAllocator[T]) Free([]T) {
	c.frees++
}
