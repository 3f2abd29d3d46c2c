// Copyright 2025 GraphEngine Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/graphengine/tensorcore/internal/tensor"

// Storage is a fixed-size, reference-counted contiguous buffer.
//
// Example:
//
//	s, _ := tensor.NewStorage[float32](6)
//	a, _ := tensor.FromStorage(s, tensor.Shape{2, 3})
//	b, _ := tensor.FromStorage(s, tensor.Shape{3, 2})
//	s.Release() // a and b keep the buffer alive
type Storage[T Element] = tensor.Storage[T]

// StorageOption configures NewStorage and New.
type StorageOption[T Element] = tensor.StorageOption[T]

// Allocator supplies element buffers to storages.
type Allocator[T Element] = tensor.Allocator[T]

// HeapAllocator allocates from the Go heap. It is the default.
type HeapAllocator[T Element] = tensor.HeapAllocator[T]

// LimitAllocator caps the number of live elements handed out.
type LimitAllocator[T Element] = tensor.LimitAllocator[T]

// NewStorage allocates size zero-valued elements.
func NewStorage[T Element](size int, opts ...StorageOption[T]) (*Storage[T], error) {
	return tensor.NewStorage[T](size, opts...)
}

// NewStorageFrom wraps buf without copying.
func NewStorageFrom[T Element](buf []T) *Storage[T] {
	return tensor.NewStorageFrom(buf)
}

// WithAllocator selects the allocation strategy.
func WithAllocator[T Element](a Allocator[T]) StorageOption[T] {
	return tensor.WithAllocator(a)
}

// NewLimitAllocator wraps next (HeapAllocator if nil) with an element budget.
func NewLimitAllocator[T Element](next Allocator[T], limit int) *LimitAllocator[T] {
	return tensor.NewLimitAllocator(next, limit)
}
