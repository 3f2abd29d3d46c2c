// Copyright 2025 GraphEngine Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides shared element storages and shape-aware tensor views.
//
// # Overview
//
// The package has three building blocks:
//   - Storage[T]: a fixed-size, reference-counted contiguous buffer
//   - Tensor[T]: a shape bound to a Storage, either freshly allocated or aliased
//   - View[T]: a transient multi-index accessor with a pluggable layout and accessor
//
// # Basic Usage
//
//	import "github.com/graphengine/tensorcore/tensor"
//
//	func main() {
//	    t, _ := tensor.New[float32](tensor.Shape{1000, 1000})
//
//	    row := t.MustView(2)                                         // row-major, unchecked
//	    col := t.MustView(2, tensor.WithLayout(tensor.ColMajor()))   // same buffer, transposed mapping
//
//	    row.Set(42, 0, 100)
//	    _ = col.At(100, 0) // 42
//	}
//
// # Aliasing
//
// FromStorage binds a new tensor to an existing storage without copying and
// marks the storage shared. Every tensor and view over the storage sees the
// same elements:
//
//	a, _ := tensor.New[int32](tensor.Shape{4, 4})
//	b, _ := tensor.FromStorage(a.Storage(), tensor.Shape{16})
//	a.MustView(2).Set(7, 1, 0)
//	_ = b.MustView(1).At(4) // 7
//
// # Layouts and Accessors
//
// RowMajor (default), ColMajor and Strided map multi-indices to flat offsets.
// The Direct accessor (default) performs no per-dimension checks; Checked
// panics with an *IndexError on any out-of-range index. Get and Put always
// check and return errors instead.
//
// # Memory Management
//
// A storage starts with one reference held by its creator. FromStorage adds
// one, Tensor.Release drops one, and the buffer goes back to its Allocator
// when the count reaches zero. Views hold no reference and must not outlive
// their tensor.
//
// # Concurrency
//
// Reference counting is atomic. Element access is not synchronized: callers
// writing from several goroutines must lock or partition the buffer into
// disjoint ranges.
package tensor
