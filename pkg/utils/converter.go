package utils

import (
	"unsafe"
)

// SliceToBytes reinterprets the elements of s as raw bytes without copying.
// The result aliases s and is only meaningful while s's backing array is live.
// Zero-sized element types and empty slices yield nil.
func SliceToBytes[T any](s []T) []byte {
	var zero T
	size := unsafe.Sizeof(zero)
	if len(s) == 0 || size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), uintptr(len(s))*size)
}

// BytesToSlice reinterprets b as a slice of T without copying.
// It is the caller's responsibility to ensure proper alignment, and that T
// holds no pointers when b is not Go heap memory. Trailing bytes that do not
// fill a whole element are ignored.
func BytesToSlice[T any](b []byte) []T {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 || uintptr(len(b)) < size {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), uintptr(len(b))/size)
}
