// Package interop exposes tensors to other Go numeric libraries without copying.
package interop

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/graphengine/tensorcore/internal/tensor"
)

// ErrUnsupported is returned when a tensor cannot be represented by the target library.
var ErrUnsupported = errors.New("interop: unsupported tensor")

// ToDense returns a gonum Dense matrix backed by the tensor's buffer.
// The tensor must be rank 2 with non-zero extents. Writes through either side
// are visible through the other.
func ToDense(t *tensor.Tensor[float64]) (*mat.Dense, error) {
	if t.Released() {
		return nil, tensor.ErrReleased
	}
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: rank %d, want 2", tensor.ErrRankMismatch, t.Rank())
	}
	ext := t.Extents()
	rows, cols := ext[0], ext[1]
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: gonum matrices cannot have zero extents %v", ErrUnsupported, ext)
	}
	return mat.NewDense(rows, cols, t.Data()[:rows*cols]), nil
}

// FromDense adopts the backing slice of m as a shared storage. The returned
// view honors m's row stride, so it addresses exactly the elements of m even
// when m is a sub-matrix of a larger allocation.
func FromDense(m *mat.Dense) (*tensor.Tensor[float64], *tensor.View[float64], error) {
	raw := m.RawMatrix()
	storage := tensor.NewStorageFrom(raw.Data)
	defer storage.Release()

	t, err := tensor.FromStorage(storage, tensor.Shape{raw.Rows, raw.Cols})
	if err != nil {
		return nil, nil, err
	}
	v, err := t.View(2, tensor.WithLayout(tensor.Strided(raw.Stride, 1)))
	if err != nil {
		t.Release()
		return nil, nil, err
	}
	return t, v, nil
}
