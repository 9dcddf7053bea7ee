//go:build linux

package vector

import (
	"errors"
	"testing"

	"github.com/huynhanx03/go-vector/pkg/memory"
	"github.com/huynhanx03/go-vector/pkg/settings"
)

func TestMmapVector(t *testing.T) {
	v, err := NewFromSettings[uint64](settings.Vector{Allocator: settings.AllocatorMmap, InitialCapacity: 4}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer v.Release()

	for i := uint64(0); i < 1000; i++ {
		if err := v.PushBack(i * i); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := v.InsertN(500, 3, 7); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 1003 || v.At(500) != 7 || v.At(503) != 500*500 || v.Back() != 999*999 {
		t.Errorf("unexpected contents: len %d, [500]=%d, [503]=%d", v.Len(), v.At(500), v.At(503))
	}

	data, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	h := New[uint64]()
	if err := h.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if !Equal(v, h) {
		t.Error("heap copy of an mmap vector should be Equal")
	}
}

func TestMmapVector_PointerElements(t *testing.T) {
	_, err := NewFromSettings[*int](settings.Vector{Allocator: settings.AllocatorMmap}, nil)
	if !errors.Is(err, memory.ErrPointerElements) {
		t.Errorf("error = %v, want ErrPointerElements", err)
	}
}
