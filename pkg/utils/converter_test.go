package utils

import (
	"encoding/binary"
	"testing"
)

// =============================================================================
// Functions: SliceToBytes() / BytesToSlice()
// =============================================================================

func TestSliceToBytes(t *testing.T) {
	s := []uint32{1, 2}
	b := SliceToBytes(s)
	if len(b) != 8 {
		t.Fatalf("len = %d, want 8", len(b))
	}
	if binary.NativeEndian.Uint32(b[4:]) != 2 {
		t.Error("second element not visible through the byte view")
	}

	b[0] = 0xFF
	b[1], b[2], b[3] = 0, 0, 0
	if s[0] != 0xFF {
		t.Error("byte view should alias the slice")
	}
}

func TestSliceToBytes_Empty(t *testing.T) {
	if SliceToBytes([]int(nil)) != nil {
		t.Error("nil slice should give nil bytes")
	}
	if SliceToBytes(make([]struct{}, 3)) != nil {
		t.Error("zero-sized elements should give nil bytes")
	}
}

func TestBytesToSlice(t *testing.T) {
	b := make([]byte, 18)
	binary.NativeEndian.PutUint64(b[8:], 42)

	s := BytesToSlice[uint64](b)
	if len(s) != 2 {
		t.Fatalf("len = %d, want 2 (trailing bytes ignored)", len(s))
	}
	if s[1] != 42 {
		t.Errorf("s[1] = %d, want 42", s[1])
	}
	if BytesToSlice[uint64](b[:7]) != nil {
		t.Error("short input should give nil")
	}
}
