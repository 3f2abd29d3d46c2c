// Copyright 2025 GraphEngine Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/graphengine/tensorcore/internal/tensor"
)

// Element is a constraint for storage element types:
// float16/32/64, signed and unsigned integers, and bool.
type Element = tensor.Element

// DataType is the runtime tag of an element type.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Bool    DataType = tensor.Bool
)

// Shape represents the extents of a tensor.
// Example: Shape{2, 3, 4} is a 3D tensor with extents 2×3×4.
type Shape = tensor.Shape

// Tensor binds an immutable shape to a shared Storage.
type Tensor[T Element] = tensor.Tensor[T]

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Element]() DataType {
	return tensor.DataTypeOf[T]()
}

// New allocates a tensor with a fresh storage of shape.NumElements() elements.
func New[T Element](shape Shape, opts ...StorageOption[T]) (*Tensor[T], error) {
	return tensor.New[T](shape, opts...)
}

// FromStorage aliases an existing storage with the given shape and marks it shared.
// Fails with ErrCapacityMismatch if the shape needs more elements than the storage has.
func FromStorage[T Element](storage *Storage[T], shape Shape) (*Tensor[T], error) {
	return tensor.FromStorage(storage, shape)
}

// FromSlice copies data into a new tensor of the given shape.
func FromSlice[T Element](data []T, shape Shape, opts ...StorageOption[T]) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape, opts...)
}

// Errors returned by this package. Use errors.Is to test for them.
var (
	ErrResourceExhausted = tensor.ErrResourceExhausted
	ErrInvalidSize       = tensor.ErrInvalidSize
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrInvalidLayout     = tensor.ErrInvalidLayout
	ErrRankMismatch      = tensor.ErrRankMismatch
	ErrCapacityMismatch  = tensor.ErrCapacityMismatch
	ErrIndexOutOfRange   = tensor.ErrIndexOutOfRange
	ErrReleased          = tensor.ErrReleased
)

// IndexError reports which index of a multi-index was out of range.
type IndexError = tensor.IndexError
