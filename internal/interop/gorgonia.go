package interop

import (
	"fmt"

	gtensor "github.com/pdevine/tensor"

	"github.com/graphengine/tensorcore/internal/tensor"
)

// Dense is the subset of element types the gorgonia tensor package can back.
type Dense interface {
	float32 | float64 | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | bool
}

// ToGorgonia wraps the tensor's elements in a gorgonia Dense tensor of the
// same shape. The Dense uses the tensor's buffer as its backing array.
func ToGorgonia[T Dense](t *tensor.Tensor[T]) (*gtensor.Dense, error) {
	if t.Released() {
		return nil, tensor.ErrReleased
	}
	n := t.NumElements()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty tensor of shape %v", ErrUnsupported, t.Extents())
	}
	return gtensor.New(
		gtensor.WithShape(t.Extents()...),
		gtensor.WithBacking(t.Data()[:n]),
	), nil
}
