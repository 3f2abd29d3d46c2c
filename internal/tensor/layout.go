package tensor

import (
	"fmt"
	"math"
)

// LayoutKind identifies an index-to-offset mapping rule.
type LayoutKind int

// Supported layouts.
const (
	LayoutRowMajor LayoutKind = iota // Last index varies fastest
	LayoutColMajor                   // First index varies fastest
	LayoutStrided                    // Caller-supplied element strides
)

// String returns a human-readable layout name.
func (k LayoutKind) String() string {
	switch k {
	case LayoutRowMajor:
		return "row-major"
	case LayoutColMajor:
		return "col-major"
	case LayoutStrided:
		return "strided"
	default:
		return "unknown"
	}
}

// Layout maps multi-indices to flat offsets. The zero value is row-major.
type Layout struct {
	kind    LayoutKind
	strides []int
}

// RowMajor returns the C-order layout.
func RowMajor() Layout {
	return Layout{kind: LayoutRowMajor}
}

// ColMajor returns the Fortran-order layout.
func ColMajor() Layout {
	return Layout{kind: LayoutColMajor}
}

// Strided returns a layout with explicit per-dimension element strides.
func Strided(strides ...int) Layout {
	return Layout{kind: LayoutStrided, strides: append([]int(nil), strides...)}
}

// Kind returns the layout variant.
func (l Layout) Kind() LayoutKind {
	return l.kind
}

// String describes the layout.
func (l Layout) String() string {
	if l.kind == LayoutStrided {
		return fmt.Sprintf("strided%v", l.strides)
	}
	return l.kind.String()
}

// Strides computes the element strides of this layout for the given extents.
func (l Layout) Strides(extents Shape) ([]int, error) {
	switch l.kind {
	case LayoutRowMajor:
		return rowMajorStrides(extents), nil
	case LayoutColMajor:
		return colMajorStrides(extents), nil
	case LayoutStrided:
		if len(l.strides) != len(extents) {
			return nil, fmt.Errorf("%w: %d strides for rank %d", ErrInvalidLayout, len(l.strides), len(extents))
		}
		for i, st := range l.strides {
			if st < 0 {
				return nil, fmt.Errorf("%w: stride %d is %d (must be >= 0)", ErrInvalidLayout, i, st)
			}
		}
		return append([]int(nil), l.strides...), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidLayout, l.kind)
	}
}

// rowMajorStrides: stride[i] = product of all dimensions after i.
func rowMajorStrides(extents Shape) []int {
	strides := make([]int, len(extents))
	if len(extents) == 0 {
		return strides
	}

	strides[len(extents)-1] = 1
	for i := len(extents) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * extents[i+1]
	}
	return strides
}

// colMajorStrides: stride[i] = product of all dimensions before i.
func colMajorStrides(extents Shape) []int {
	strides := make([]int, len(extents))
	if len(extents) == 0 {
		return strides
	}

	strides[0] = 1
	for i := 1; i < len(extents); i++ {
		strides[i] = strides[i-1] * extents[i-1]
	}
	return strides
}

// Offset returns Σ idx[k]*strides[k]. Indices are not checked.
func Offset(strides, idx []int) int {
	off := 0
	for k, i := range idx {
		off += i * strides[k]
	}
	return off
}

// RequiredSpan returns how many leading buffer elements a mapping can touch:
// one past the offset of the last multi-index, or 0 if any extent is 0.
// Fails with ErrInvalidLayout if the span does not fit in an int.
func RequiredSpan(extents Shape, strides []int) (int, error) {
	for _, e := range extents {
		if e == 0 {
			return 0, nil
		}
	}
	span := 1
	for k, e := range extents {
		st := strides[k]
		if st != 0 && e-1 > (math.MaxInt-span)/st {
			return 0, fmt.Errorf("%w: strides %v over %v overflow int", ErrInvalidLayout, strides, extents)
		}
		span += (e - 1) * st
	}
	return span, nil
}
