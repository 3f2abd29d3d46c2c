// Copyright 2025 GraphEngine Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/graphengine/tensorcore/internal/tensor"

// View is a non-owning multi-dimensional accessor over a tensor's buffer.
type View[T Element] = tensor.View[T]

// ViewOption configures Tensor.View.
type ViewOption = tensor.ViewOption

// Layout maps multi-indices to flat offsets.
type Layout = tensor.Layout

// LayoutKind identifies a layout variant.
type LayoutKind = tensor.LayoutKind

// Layout kinds.
const (
	LayoutRowMajor = tensor.LayoutRowMajor
	LayoutColMajor = tensor.LayoutColMajor
	LayoutStrided  = tensor.LayoutStrided
)

// Accessor selects how View.At and View.Set treat indices.
type Accessor = tensor.Accessor

// Accessors.
const (
	Direct  = tensor.Direct
	Checked = tensor.Checked
)

// RowMajor returns the C-order layout (the default).
func RowMajor() Layout { return tensor.RowMajor() }

// ColMajor returns the Fortran-order layout.
func ColMajor() Layout { return tensor.ColMajor() }

// Strided returns a layout with explicit element strides.
func Strided(strides ...int) Layout { return tensor.Strided(strides...) }

// WithLayout selects a view's layout.
func WithLayout(l Layout) ViewOption { return tensor.WithLayout(l) }

// WithAccessor selects a view's accessor.
func WithAccessor(a Accessor) ViewOption { return tensor.WithAccessor(a) }
