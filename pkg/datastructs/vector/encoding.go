package vector

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-vector/pkg/memory"
	"github.com/huynhanx03/go-vector/pkg/utils"
)

// AppendBinary appends the binary form of v to b: a header with the element
// count and element size, then the raw live bytes in native byte order.
// Only pointer-free element types can be encoded.
func (v *Vector[T]) AppendBinary(b []byte) ([]byte, error) {
	l := v.lay()
	if !l.PointerFree {
		return b, errors.Wrap(memory.ErrPointerElements, "vector: encode")
	}
	b = binary.BigEndian.AppendUint64(b, uint64(v.length))
	b = binary.BigEndian.AppendUint64(b, uint64(l.Size))
	return append(b, utils.SliceToBytes(v.Slice())...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *Vector[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, headerSize+v.length*int(v.lay().Size)))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// contents of v, reusing the buffer when it is large enough.
func (v *Vector[T]) UnmarshalBinary(data []byte) error {
	l := v.lay()
	if !l.PointerFree {
		return errors.Wrap(memory.ErrPointerElements, "vector: decode")
	}
	if len(data) < headerSize {
		return errors.Wrapf(ErrCorrupt, "header needs %d bytes, got %d", headerSize, len(data))
	}

	count := binary.BigEndian.Uint64(data)
	size := binary.BigEndian.Uint64(data[8:])
	payload := data[headerSize:]
	if size != uint64(l.Size) {
		return errors.Wrapf(ErrCorrupt, "element size %d, want %d", size, l.Size)
	}
	if count > math.MaxInt || (size > 0 && count != uint64(len(payload))/size) || uint64(len(payload)) != count*size {
		return errors.Wrapf(ErrCorrupt, "%d elements of %d bytes in %d byte payload", count, size, len(payload))
	}

	n := int(count)
	v.length = 0
	if err := v.Reserve(n); err != nil {
		return err
	}
	copy(utils.SliceToBytes(v.buf[:n]), payload)
	v.length = n
	return nil
}
