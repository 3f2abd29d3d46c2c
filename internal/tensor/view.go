package tensor

// View is a non-owning multi-dimensional window over a tensor's buffer.
//
// A View holds no reference on the storage: it must not be used after the
// tensor it came from has been released.
type View[T Element] struct {
	data     []T
	extents  Shape
	strides  []int
	layout   Layout
	accessor Accessor
}

// ViewOption configures Tensor.View.
type ViewOption func(*viewConfig)

type viewConfig struct {
	layout   Layout
	accessor Accessor
}

// WithLayout selects the index-to-offset mapping.
func WithLayout(l Layout) ViewOption {
	return func(c *viewConfig) {
		c.layout = l
	}
}

// WithAccessor selects the element access strategy.
func WithAccessor(a Accessor) ViewOption {
	return func(c *viewConfig) {
		c.accessor = a
	}
}

// Rank returns the number of dimensions.
func (v *View[T]) Rank() int {
	return len(v.extents)
}

// Extents returns a copy of the view's extents.
func (v *View[T]) Extents() Shape {
	return v.extents.Clone()
}

// Strides returns a copy of the element strides.
func (v *View[T]) Strides() []int {
	return append([]int(nil), v.strides...)
}

// Layout returns the layout the view was built with.
func (v *View[T]) Layout() Layout {
	return v.layout
}

// Accessor returns the access strategy.
func (v *View[T]) Accessor() Accessor {
	return v.accessor
}

// Len returns the number of addressable multi-indices.
func (v *View[T]) Len() int {
	return v.extents.NumElements()
}

// Data returns the underlying flat buffer.
func (v *View[T]) Data() []T {
	return v.data
}

// At returns the element at the given indices.
// Panics if the index count differs from the rank, or, with the Checked
// accessor, if any index is outside its extent.
//
// Example:
//
//	v := t.MustView(2)
//	value := v.At(1, 2) // Row 1, column 2
func (v *View[T]) At(indices ...int) T {
	return v.data[v.offset(indices)]
}

// Set sets the element at the given indices. Panics like At.
func (v *View[T]) Set(value T, indices ...int) {
	v.data[v.offset(indices)] = value
}

// Get returns the element at the given indices, or an *IndexError.
func (v *View[T]) Get(indices ...int) (T, error) {
	off, err := v.Offset(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.data[off], nil
}

// Put sets the element at the given indices, or returns an *IndexError.
func (v *View[T]) Put(value T, indices ...int) error {
	off, err := v.Offset(indices...)
	if err != nil {
		return err
	}
	v.data[off] = value
	return nil
}

// Offset maps indices to a flat buffer offset, checking each against its extent.
func (v *View[T]) Offset(indices ...int) (int, error) {
	if err := v.check(indices); err != nil {
		return 0, err
	}
	return Offset(v.strides, indices), nil
}

func (v *View[T]) offset(indices []int) int {
	if len(indices) != len(v.extents) {
		panic(&IndexError{Dim: -1, Index: len(indices), Extents: v.extents})
	}
	if v.accessor == Checked {
		if err := v.check(indices); err != nil {
			panic(err)
		}
	}
	return Offset(v.strides, indices)
}

func (v *View[T]) check(indices []int) error {
	if len(indices) != len(v.extents) {
		return &IndexError{Dim: -1, Index: len(indices), Extents: v.extents}
	}
	for i, idx := range indices {
		if idx < 0 || idx >= v.extents[i] {
			return &IndexError{Dim: i, Index: idx, Extents: v.extents}
		}
	}
	return nil
}
