package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkTensorCreation(b *testing.B) {
	shape := Shape{100, 100}

	b.Run("New", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			t, _ := New[float32](shape)
			t.Release()
		}
	})

	b.Run("FromStorage", func(b *testing.B) {
		s, _ := NewStorage[float32](shape.NumElements())
		for i := 0; i < b.N; i++ {
			t, _ := FromStorage(s, shape)
			t.Release()
		}
	})

	b.Run("LimitAllocator", func(b *testing.B) {
		alloc := NewLimitAllocator[float32](nil, shape.NumElements())
		for i := 0; i < b.N; i++ {
			t, _ := New(shape, WithAllocator[float32](alloc))
			t.Release()
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape := Shape{100, 100}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.NumElements()
		}
	})

	b.Run("Validate", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.Validate()
		}
	})

	b.Run("RowMajorStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = RowMajor().Strides(shape)
		}
	})
}

func BenchmarkFromSlice(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 16, 1 << 22} {
		data := make([]float32, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 4))
			for i := 0; i < b.N; i++ {
				t, _ := FromSlice(data, Shape{n})
				t.Release()
			}
		})
	}
}
