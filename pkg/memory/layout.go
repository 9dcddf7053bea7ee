package memory

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// maxAllocBytes bounds a single allocation: 1<<48 on 64-bit, 1<<31 on 32-bit.
const maxAllocBytes = uintptr(1) << (31 + 17*(^uintptr(0)>>63))

// Layout describes how values of an element type sit in memory.
type Layout struct {
	// Size is the element size in bytes.
	Size uintptr
	// PointerFree reports whether the type holds no pointers, which makes it
	// trivially relocatable: a raw byte copy is a valid move and nothing has
	// to be released when a slot is abandoned.
	PointerFree bool
}

var layouts sync.Map // reflect.Type -> Layout

// LayoutOf returns the Layout of T. Results are cached per type.
func LayoutOf[T any]() Layout {
	t := reflect.TypeFor[T]()
	if l, ok := layouts.Load(t); ok {
		return l.(Layout)
	}
	l := Layout{Size: t.Size(), PointerFree: !hasPointers(t)}
	layouts.Store(t, l)
	return l
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, String, Slice, Map, Chan, Func, Interface, UnsafePointer.
		return true
	}
}

// checkCount validates that n elements of the given layout fit in one allocation.
func checkCount(n int, l Layout) error {
	if n < 0 {
		return errors.Wrapf(ErrOutOfMemory, "negative element count %d", n)
	}
	if l.Size > 0 && uintptr(n) > maxAllocBytes/l.Size {
		return errors.Wrapf(ErrOutOfMemory, "%d elements of %d bytes", n, l.Size)
	}
	return nil
}
