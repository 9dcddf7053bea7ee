package memory

import (
	"errors"
	"testing"
	"unsafe"
)

type point struct {
	X, Y int32
}

type named struct {
	ID   int
	Name string
}

// =============================================================================
// Function: LayoutOf()
// =============================================================================

func TestLayoutOf_PointerFree(t *testing.T) {
	tests := []struct {
		name string
		got  Layout
		want Layout
	}{
		{"int", LayoutOf[int](), Layout{Size: unsafe.Sizeof(int(0)), PointerFree: true}},
		{"float64", LayoutOf[float64](), Layout{Size: 8, PointerFree: true}},
		{"struct_of_scalars", LayoutOf[point](), Layout{Size: 8, PointerFree: true}},
		{"array_of_scalars", LayoutOf[[4]uint16](), Layout{Size: 8, PointerFree: true}},
		{"empty_struct", LayoutOf[struct{}](), Layout{Size: 0, PointerFree: true}},
		{"zero_length_pointer_array", LayoutOf[[0]*int](), Layout{Size: 0, PointerFree: true}},
		{"string", LayoutOf[string](), Layout{Size: unsafe.Sizeof(""), PointerFree: false}},
		{"pointer", LayoutOf[*int](), Layout{Size: unsafe.Sizeof(uintptr(0)), PointerFree: false}},
		{"struct_with_string", LayoutOf[named](), Layout{Size: unsafe.Sizeof(named{}), PointerFree: false}},
		{"interface", LayoutOf[any](), Layout{Size: unsafe.Sizeof(any(nil)), PointerFree: false}},
		{"slice", LayoutOf[[]byte](), Layout{Size: unsafe.Sizeof([]byte(nil)), PointerFree: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("LayoutOf = %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestLayoutOf_Cached(t *testing.T) {
	first := LayoutOf[point]()
	second := LayoutOf[point]()
	if first != second {
		t.Errorf("cached layout %+v differs from %+v", second, first)
	}
}

// =============================================================================
// Function: checkCount()
// =============================================================================

func TestCheckCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		layout  Layout
		wantErr bool
	}{
		{"zero", 0, Layout{Size: 8}, false},
		{"small", 10, Layout{Size: 8}, false},
		{"negative", -1, Layout{Size: 8}, true},
		{"overflow", int(maxAllocBytes/8) + 1, Layout{Size: 8}, true},
		{"zero_size_any_count", int(^uint(0) >> 1), Layout{Size: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCount(tt.n, tt.layout)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkCount error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutOfMemory) {
				t.Errorf("error %v is not ErrOutOfMemory", err)
			}
		})
	}
}
