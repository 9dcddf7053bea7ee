package vector

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-vector/pkg/memory"
	"github.com/huynhanx03/go-vector/pkg/settings"
)

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator element buffers come from.
// The default is memory.Heap.
func WithAllocator[T any](a memory.Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = a
	}
}

// WithMaxCapacity sets the hard limit for buffer growth. Zero or negative
// means unlimited.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(v *Vector[T]) {
		v.maxCap = max(n, 0)
	}
}

// WithLogger sets the logger that receives reallocation events at debug
// level and allocation failures at warn level.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(v *Vector[T]) {
		v.log = l
	}
}

// OptionsFromSettings validates cfg and translates it into options.
// log may be nil.
func OptionsFromSettings[T any](cfg settings.Vector, log *zap.Logger) ([]Option[T], error) {
	if err := settings.Validate(cfg); err != nil {
		return nil, err
	}

	opts := []Option[T]{WithMaxCapacity[T](cfg.MaxCapacity)}
	switch cfg.Allocator {
	case settings.AllocatorPool:
		opts = append(opts, WithAllocator[T](memory.NewPooled[T]()))
	case settings.AllocatorMmap:
		m, err := memory.NewMmap[T]()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAllocator[T](m))
	default:
		opts = append(opts, WithAllocator[T](memory.Heap[T]{}))
	}
	if log != nil {
		opts = append(opts, WithLogger[T](log))
	}
	return opts, nil
}

// NewFromSettings builds a vector configured by cfg and reserves its
// initial capacity.
func NewFromSettings[T any](cfg settings.Vector, log *zap.Logger) (*Vector[T], error) {
	opts, err := OptionsFromSettings[T](cfg, log)
	if err != nil {
		return nil, err
	}
	v := New(opts...)
	if err := v.Reserve(cfg.InitialCapacity); err != nil {
		return nil, err
	}
	return v, nil
}
