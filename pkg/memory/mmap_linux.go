//go:build linux

package memory

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/huynhanx03/go-vector/pkg/utils"
)

// Mmap backs each buffer with its own anonymous private mapping, outside the
// Go heap. Only pointer-free element types are accepted since the garbage
// collector does not scan mapped memory. Buffers must be released with Free.
type Mmap[T any] struct {
	layout   Layout
	pageSize uintptr
}

// NewMmap creates an mmap allocator for T.
func NewMmap[T any]() (*Mmap[T], error) {
	l := LayoutOf[T]()
	if !l.PointerFree {
		return nil, errors.Wrapf(ErrPointerElements, "mmap allocator for %s", reflect.TypeFor[T]())
	}
	ps := unix.Getpagesize()
	if !utils.IsPowerOfTwo(ps) {
		return nil, errors.Errorf("memory: unexpected page size %d", ps)
	}
	return &Mmap[T]{layout: l, pageSize: uintptr(ps)}, nil
}

// Allocate maps a fresh zero-filled region for n elements.
func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if err := checkCount(n, m.layout); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if m.layout.Size == 0 {
		return make([]T, n), nil
	}

	length := m.mappedLen(n)
	data, err := unix.Mmap(-1, 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) {
			return nil, errors.Wrapf(ErrOutOfMemory, "mmap %d bytes", length)
		}
		return nil, errors.Wrapf(err, "mmap %d bytes", length)
	}
	return utils.BytesToSlice[T](data)[:n:n], nil
}

// Free unmaps the region behind buf. buf must be the slice Allocate
// returned; a resliced buffer that no longer starts on the mapping panics.
func (m *Mmap[T]) Free(buf []T) {
	if cap(buf) == 0 || m.layout.Size == 0 {
		return
	}
	length := m.mappedLen(cap(buf))
	region := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), length)
	if err := unix.Munmap(region); err != nil {
		panic(fmt.Sprintf("memory: munmap of %d bytes at %p: %v", length, unsafe.SliceData(buf), err))
	}
}

// mappedLen rounds the byte size of n elements up to whole pages.
func (m *Mmap[T]) mappedLen(n int) uintptr {
	size := uintptr(n) * m.layout.Size
	return (size + m.pageSize - 1) &^ (m.pageSize - 1)
}
