package tensor

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/graphengine/tensorcore/internal/parallel"
)

// Tensor binds a fixed shape to a shared Storage.
//
// The shape never changes after construction; only the elements do. Several
// tensors may reference the same storage, and writes through any of them are
// visible through all.
//
// Example:
//
//	t, _ := tensor.New[float32](Shape{3, 4})
//	alias, _ := tensor.FromStorage(t.Storage(), Shape{4, 3})
//	t.MustView(2).Set(1, 0, 1)
//	_ = alias.Data()[1] // 1
type Tensor[T Element] struct {
	rank     int
	extents  Shape
	storage  *Storage[T]
	released atomic.Bool
}

// New allocates a tensor with a fresh, exclusively held storage of
// shape.NumElements() elements. An empty shape yields a one-element scalar.
func New[T Element](shape Shape, opts ...StorageOption[T]) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	storage, err := NewStorage[T](shape.NumElements(), opts...)
	if err != nil {
		return nil, err
	}

	return &Tensor[T]{
		rank:    len(shape),
		extents: shape.Clone(),
		storage: storage,
	}, nil
}

// FromStorage binds a tensor to an existing storage without copying and marks
// the storage shared. The shape must not need more elements than the storage holds.
func FromStorage[T Element](storage *Storage[T], shape Shape) (*Tensor[T], error) {
	if storage == nil {
		return nil, fmt.Errorf("%w: nil storage", ErrReleased)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); n > storage.Size() {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, storage has %d",
			ErrCapacityMismatch, shape, n, storage.Size())
	}
	if !storage.tryRetain() {
		return nil, ErrReleased
	}
	storage.markShared()

	return &Tensor[T]{
		rank:    len(shape),
		extents: shape.Clone(),
		storage: storage,
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Element](data []T, shape Shape, opts ...StorageOption[T]) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrCapacityMismatch, shape, shape.NumElements(), len(data))
	}

	t, err := New[T](shape, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := t.CopyFrom(data); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}

// CopyFrom copies src into the start of the buffer and returns the number of
// elements copied. Large copies are split into disjoint chunks copied concurrently.
func (t *Tensor[T]) CopyFrom(src []T) (int, error) {
	dst := t.Data()
	n := min(len(dst), len(src))
	err := parallel.ForRange(context.Background(), n, func(_ context.Context, r parallel.Range) error {
		copy(dst[r.Start:r.End], src[r.Start:r.End])
		return nil
	}, parallel.DefaultConfig())
	return n, err
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return t.rank
}

// Extents returns a copy of the per-dimension sizes.
func (t *Tensor[T]) Extents() Shape {
	return t.extents.Clone()
}

// NumElements returns the product of the extents.
func (t *Tensor[T]) NumElements() int {
	return t.extents.NumElements()
}

// DType returns the runtime element type.
func (t *Tensor[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the storage buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify every tensor
// sharing the storage.
func (t *Tensor[T]) Data() []T {
	return t.storage.Data()
}

// Storage returns the bound storage. Pass it to FromStorage to alias it.
func (t *Tensor[T]) Storage() *Storage[T] {
	return t.storage
}

// IsShared reports whether the bound storage has been aliased.
func (t *Tensor[T]) IsShared() bool {
	return t.storage.IsShared()
}

// Share returns another tensor with the same shape over the same storage.
func (t *Tensor[T]) Share() (*Tensor[T], error) {
	return FromStorage(t.storage, t.extents)
}

// Reshape returns a tensor with a different shape over the same storage.
func (t *Tensor[T]) Reshape(shape Shape) (*Tensor[T], error) {
	return FromStorage(t.storage, shape)
}

// Release drops this tensor's reference on its storage. Calling it more than
// once has no further effect.
func (t *Tensor[T]) Release() {
	if t.released.CompareAndSwap(false, true) {
		t.storage.Release()
	}
}

// Released reports whether this tensor has been released, or its storage freed.
func (t *Tensor[T]) Released() bool {
	return t.released.Load() || t.storage.Released()
}

// View returns a rank-dimensional view over the tensor's buffer.
// rank must equal t.Rank(). The default layout is row-major with the Direct accessor.
func (t *Tensor[T]) View(rank int, opts ...ViewOption) (*View[T], error) {
	if rank != t.rank {
		return nil, fmt.Errorf("%w: view rank %d, tensor rank %d", ErrRankMismatch, rank, t.rank)
	}
	if t.Released() {
		return nil, ErrReleased
	}

	cfg := viewConfig{layout: RowMajor(), accessor: Direct}
	for _, opt := range opts {
		opt(&cfg)
	}

	strides, err := cfg.layout.Strides(t.extents)
	if err != nil {
		return nil, err
	}
	data := t.storage.Data()
	span, err := RequiredSpan(t.extents, strides)
	if err != nil {
		return nil, err
	}
	if span > len(data) {
		return nil, fmt.Errorf("%w: %s layout over %v spans %d elements, buffer has %d",
			ErrCapacityMismatch, cfg.layout, t.extents, span, len(data))
	}

	return &View[T]{
		data:     data,
		extents:  t.extents,
		strides:  strides,
		layout:   cfg.layout,
		accessor: cfg.accessor,
	}, nil
}

// MustView is like View but panics on error.
func (t *Tensor[T]) MustView(rank int, opts ...ViewOption) *View[T] {
	v, err := t.View(rank, opts...)
	if err != nil {
		panic(err)
	}
	return v
}
