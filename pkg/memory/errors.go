package memory

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfMemory is returned when a request cannot be satisfied, either
	// because its byte size overflows the address space or because the
	// backing allocator refused it.
	ErrOutOfMemory = errors.New("memory: out of memory")

	// ErrPointerElements is returned by byte-level facilities that require
	// element types the garbage collector never needs to scan.
	ErrPointerElements = errors.New("memory: element type contains pointers")

	// ErrUnsupported is returned by allocators unavailable on this platform.
	ErrUnsupported = errors.New("memory: allocator not supported on this platform")
)
