package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStrides(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		extents Shape
		want    []int
	}{
		{"row 2d", RowMajor(), Shape{1000, 1000}, []int{1000, 1}},
		{"row 3d", RowMajor(), Shape{2, 3, 4}, []int{12, 4, 1}},
		{"col 2d", ColMajor(), Shape{1000, 1000}, []int{1, 1000}},
		{"col 3d", ColMajor(), Shape{2, 3, 4}, []int{1, 2, 6}},
		{"scalar", RowMajor(), Shape{}, []int{}},
		{"strided", Strided(8, 1), Shape{2, 3}, []int{8, 1}},
		{"zero value is row-major", Layout{}, Shape{4, 5}, []int{5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.layout.Strides(tt.extents)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutStridedIsCopied(t *testing.T) {
	strides := []int{3, 1}
	l := Strided(strides...)
	strides[0] = 100

	got, err := l.Strides(Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, got)

	got[1] = 50
	again, err := l.Strides(Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, again)
}

func TestLayoutTransposedOffsets(t *testing.T) {
	extents := Shape{1000, 1000}
	row, err := RowMajor().Strides(extents)
	require.NoError(t, err)
	col, err := ColMajor().Strides(extents)
	require.NoError(t, err)

	for _, idx := range [][2]int{{0, 100}, {2, 0}, {5, 10}, {999, 999}} {
		a, b := idx[0], idx[1]
		assert.Equal(t, Offset(row, []int{a, b}), Offset(col, []int{b, a}))
	}
	assert.Equal(t, 5010, Offset(row, []int{5, 10}))
}

func TestRequiredSpan(t *testing.T) {
	tests := []struct {
		extents Shape
		strides []int
		want    int
	}{
		{Shape{1000, 1000}, []int{1000, 1}, 1_000_000},
		{Shape{}, nil, 1},
		{Shape{3, 0}, []int{0, 1}, 0},
		{Shape{0, 3}, []int{math.MaxInt, 1}, 0},
		{Shape{2, 2}, []int{4, 2}, 7},
		{Shape{5}, []int{0}, 1}, // broadcast stride touches one element
	}

	for _, tt := range tests {
		got, err := RequiredSpan(tt.extents, tt.strides)
		require.NoError(t, err, "%v %v", tt.extents, tt.strides)
		assert.Equal(t, tt.want, got, "%v %v", tt.extents, tt.strides)
	}
}

func TestRequiredSpanOverflow(t *testing.T) {
	tests := []struct {
		extents Shape
		strides []int
	}{
		{Shape{3}, []int{math.MaxInt/2 + 1}},
		{Shape{2}, []int{math.MaxInt}},
		{Shape{2, 2}, []int{math.MaxInt/2 + 1, math.MaxInt/2 + 1}},
	}

	for _, tt := range tests {
		_, err := RequiredSpan(tt.extents, tt.strides)
		assert.ErrorIs(t, err, ErrInvalidLayout, "%v %v", tt.extents, tt.strides)
	}
}

func TestLayoutKindString(t *testing.T) {
	assert.Equal(t, "row-major", RowMajor().String())
	assert.Equal(t, "col-major", ColMajor().String())
	assert.Equal(t, "unknown", LayoutKind(9).String())

	_, err := Layout{kind: LayoutKind(9)}.Strides(Shape{1})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}
