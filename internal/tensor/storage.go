package tensor

import (
	"fmt"
	"sync/atomic"
)

// Storage is a fixed-size contiguous buffer of elements shared between tensors.
//
// The reference count tracks ownership only. Element reads and writes are not
// synchronized; callers that write from several goroutines must partition the
// buffer or lock around it.
type Storage[T Element] struct {
	data     []T
	size     int
	shared   atomic.Bool
	refCount atomic.Int32
	alloc    Allocator[T]
}

// StorageOption configures NewStorage.
type StorageOption[T Element] func(*storageConfig[T])

type storageConfig[T Element] struct {
	alloc Allocator[T]
}

// WithAllocator selects the allocation strategy for a storage.
func WithAllocator[T Element](a Allocator[T]) StorageOption[T] {
	return func(c *storageConfig[T]) {
		c.alloc = a
	}
}

// NewStorage allocates a storage of size zero-valued elements with refCount = 1.
// A size of 0 is legal and yields an empty, non-nil buffer.
func NewStorage[T Element](size int, opts ...StorageOption[T]) (*Storage[T], error) {
	cfg := storageConfig[T]{alloc: HeapAllocator[T]{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	data, err := cfg.alloc.Allocate(size)
	if err != nil {
		return nil, fmt.Errorf("allocate storage of %d %s elements: %w", size, DataTypeOf[T](), err)
	}
	if len(data) != size {
		cfg.alloc.Free(data)
		return nil, fmt.Errorf("%w: allocator returned %d elements, want %d", ErrResourceExhausted, len(data), size)
	}
	if data == nil {
		data = []T{}
	}

	s := &Storage[T]{
		data:  data,
		size:  size,
		alloc: cfg.alloc,
	}
	s.refCount.Store(1)
	return s, nil
}

// NewStorageFrom adopts buf as the storage buffer without copying.
// The caller keeps ownership of buf; releasing the storage never frees it.
func NewStorageFrom[T Element](buf []T) *Storage[T] {
	if buf == nil {
		buf = []T{}
	}
	s := &Storage[T]{
		data:  buf,
		size:  len(buf),
		alloc: HeapAllocator[T]{},
	}
	s.refCount.Store(1)
	return s
}

// Data returns the buffer. Writes are visible to every tensor sharing the storage.
// After the final Release it returns an empty slice. Data must not race with
// the final Release; hold a reference while using the buffer.
//
// WARNING: Direct access to underlying memory. Use with caution.
func (s *Storage[T]) Data() []T {
	return s.data
}

// Size returns the element count fixed at construction.
func (s *Storage[T]) Size() int {
	return s.size
}

// ByteSize returns the buffer size in bytes.
func (s *Storage[T]) ByteSize() int {
	return s.size * DataTypeOf[T]().Size()
}

// DType returns the runtime element type.
func (s *Storage[T]) DType() DataType {
	return DataTypeOf[T]()
}

// IsShared reports whether a tensor has ever bound this storage through FromStorage.
func (s *Storage[T]) IsShared() bool {
	return s.shared.Load()
}

func (s *Storage[T]) markShared() {
	s.shared.Store(true)
}

// Retain increments the reference count.
func (s *Storage[T]) Retain() {
	s.refCount.Add(1)
}

// Release decrements the reference count and returns the buffer to the
// allocator when it reaches 0. Extra releases are ignored.
func (s *Storage[T]) Release() {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			return
		}
		if s.refCount.CompareAndSwap(n, n-1) {
			if n == 1 {
				s.free()
			}
			return
		}
	}
}

// tryRetain adds a reference unless the storage has already been freed.
func (s *Storage[T]) tryRetain() bool {
	for {
		n := s.refCount.Load()
		if n <= 0 {
			return false
		}
		if s.refCount.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// free runs exactly once, from the Release that takes the count from 1 to 0.
func (s *Storage[T]) free() {
	buf := s.data
	s.data = buf[:0:0]
	s.alloc.Free(buf)
}

// RefCount returns the number of live references.
func (s *Storage[T]) RefCount() int {
	return int(s.refCount.Load())
}

// Released reports whether the last reference has been dropped.
func (s *Storage[T]) Released() bool {
	return s.refCount.Load() <= 0
}
