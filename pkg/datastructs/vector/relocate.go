package vector

import (
	"unsafe"

	"github.com/huynhanx03/go-vector/pkg/memory"
	"github.com/huynhanx03/go-vector/pkg/utils"
)

// lay returns the element layout, probing it on first use.
func (v *Vector[T]) lay() memory.Layout {
	if !v.probed {
		v.layout = memory.LayoutOf[T]()
		v.probed = true
	}
	return v.layout
}

// move copies src into dst as one bulk transfer; the ranges may overlap.
// Pointer-free elements go through raw byte views, everything else through a
// typed copy so the garbage collector sees the pointer writes.
func (v *Vector[T]) move(dst, src []T) {
	if len(src) == 0 {
		return
	}
	if v.lay().PointerFree {
		copy(utils.SliceToBytes(dst), utils.SliceToBytes(src))
	} else {
		copy(dst, src)
	}
	v.stats.Relocated += len(src)
}

// vacate abandons slots that no longer hold live elements. Pointer-free slots
// keep their bytes; others are zeroed so their referents can be collected.
func (v *Vector[T]) vacate(s []T) {
	if len(s) == 0 || v.lay().PointerFree {
		return
	}
	clear(s)
}

// overlaps reports whether a and the full capacity of b share memory.
func overlaps[T any](a, b []T) bool {
	var zero T
	size := unsafe.Sizeof(zero)
	if len(a) == 0 || cap(b) == 0 || size == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	aEnd := aStart + uintptr(len(a))*size
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	bEnd := bStart + uintptr(cap(b))*size
	return aStart < bEnd && bStart < aEnd
}
