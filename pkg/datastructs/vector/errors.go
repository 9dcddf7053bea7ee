package vector

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-vector/pkg/memory"
)

var (
	// ErrOutOfMemory is returned when storage for a request cannot be obtained.
	ErrOutOfMemory = memory.ErrOutOfMemory

	// ErrCapacityExceeded is returned when a request needs more slots than the
	// limit set with WithMaxCapacity.
	ErrCapacityExceeded = errors.New("vector: max capacity exceeded")

	// ErrOutOfRange is returned for positions or ranges outside the vector.
	ErrOutOfRange = errors.New("vector: position out of range")

	// ErrCorrupt is returned by UnmarshalBinary for malformed input.
	ErrCorrupt = errors.New("vector: malformed binary encoding")
)

func outOfRange(format string, args ...any) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}
