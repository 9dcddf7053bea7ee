package vector

import (
	"testing"

	"github.com/huynhanx03/go-vector/pkg/memory"
)

// =============================================================================
// Vectors backed by non-heap allocators
// =============================================================================

func TestPooledVector(t *testing.T) {
	pool := memory.NewPooled[int]()
	v := New(WithAllocator[int](pool))
	for i := 0; i < 20; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}
	if v.Cap() != 20 {
		t.Errorf("Cap = %d, want 20", v.Cap())
	}
	if err := v.EraseRange(0, 10); err != nil {
		t.Fatal(err)
	}
	assertContents(t, v, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19})

	// Buckets of 8 (cap 5) and 16 (cap 10) were returned while growing.
	stats := pool.Stats()
	if stats.Returns[0] != 1 || stats.Returns[1] != 1 {
		t.Errorf("returns = %v, want one each in buckets 0 and 1", stats.Returns[:3])
	}

	v.Release()
	if pool.Stats().Returns[2] != 1 {
		t.Error("Release should return the buffer to its bucket")
	}
}

func TestPooledVector_SharedAcrossVectors(t *testing.T) {
	pool := memory.NewPooled[string]()
	a := New(WithAllocator[string](pool))
	for _, s := range []string{"a", "b", "c"} {
		if err := a.PushBack(s); err != nil {
			t.Fatal(err)
		}
	}
	a.Release()

	b := New(WithAllocator[string](pool))
	if err := b.PushBack("x"); err != nil {
		t.Fatal(err)
	}
	// A recycled bucket must not leak the previous owner's strings.
	for _, s := range b.buf[1:] {
		if s != "" {
			t.Fatalf("spare slot holds %q", s)
		}
	}
}
