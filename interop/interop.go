// Copyright 2025 GraphEngine Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop shares tensor buffers with gonum and gorgonia without copying.
//
// Example:
//
//	x, _ := tensor.New[float64](tensor.Shape{3, 3})
//	m, _ := interop.ToDense(x)
//	m.Set(0, 0, 1) // visible through x
package interop

import (
	gtensor "github.com/pdevine/tensor"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"

	"github.com/graphengine/tensorcore/internal/interop"
	"github.com/graphengine/tensorcore/tensor"
)

// ErrUnsupported is returned when the target library cannot represent a tensor.
var ErrUnsupported = interop.ErrUnsupported

// Dense lists the element types a gorgonia Dense can be backed by.
type Dense = interop.Dense

// ToDense returns a gonum matrix sharing a rank-2 tensor's buffer.
func ToDense(t *tensor.Tensor[float64]) (*mat.Dense, error) {
	return interop.ToDense(t)
}

// FromDense aliases a gonum matrix as a tensor plus a view that honors its row stride.
func FromDense(m *mat.Dense) (*tensor.Tensor[float64], *tensor.View[float64], error) {
	return interop.FromDense(m)
}

// ToGorgonia returns a gorgonia Dense backed by the tensor's buffer.
func ToGorgonia[T Dense](t *tensor.Tensor[T]) (*gtensor.Dense, error) {
	return interop.ToGorgonia(t)
}

// Float16FromFloat32 rounds src into a half-precision tensor.
func Float16FromFloat32(dst *tensor.Tensor[float16.Float16], src []float32) error {
	return interop.Float16FromFloat32(dst, src)
}

// Float32FromFloat16 widens a half-precision tensor.
func Float32FromFloat16(src *tensor.Tensor[float16.Float16]) ([]float32, error) {
	return interop.Float32FromFloat16(src)
}
