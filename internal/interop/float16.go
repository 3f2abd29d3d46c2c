package interop

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/graphengine/tensorcore/internal/tensor"
)

// Float16FromFloat32 rounds src into the half-precision tensor dst.
func Float16FromFloat32(dst *tensor.Tensor[float16.Float16], src []float32) error {
	if dst.Released() {
		return tensor.ErrReleased
	}
	out := dst.Data()
	if len(src) > len(out) {
		return fmt.Errorf("%w: %d values for %d elements", tensor.ErrCapacityMismatch, len(src), len(out))
	}
	for i, f := range src {
		out[i] = float16.Fromfloat32(f)
	}
	return nil
}

// Float32FromFloat16 widens the first NumElements values of src.
func Float32FromFloat16(src *tensor.Tensor[float16.Float16]) ([]float32, error) {
	if src.Released() {
		return nil, tensor.ErrReleased
	}
	in := src.Data()[:src.NumElements()]
	out := make([]float32, len(in))
	for i, h := range in {
		out[i] = h.Float32()
	}
	return out, nil
}
