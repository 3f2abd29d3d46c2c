package tensor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

const (
	smallSize = 100
	largeSize = 1_000_000
)

// runTyped runs fn once per element type under test.
func runTyped(t *testing.T, fn func(t *testing.T, dt DataType)) {
	for _, dt := range []DataType{Float32, Float64, Int32} {
		t.Run(dt.String(), func(t *testing.T) { fn(t, dt) })
	}
}

func checkStorageAllocates[T Element](t *testing.T, size int) {
	t.Helper()
	s, err := NewStorage[T](size)
	require.NoError(t, err)
	assert.Equal(t, size, s.Size())
	assert.NotNil(t, s.Data())
	assert.Len(t, s.Data(), size)
	assert.False(t, s.IsShared())
	assert.Equal(t, 1, s.RefCount())
}

func checkStorageReadBack[T int32 | float32 | float64](t *testing.T) {
	t.Helper()
	s, err := NewStorage[T](largeSize)
	require.NoError(t, err)

	s.Data()[10_000] = 42
	assert.Equal(t, T(42), s.Data()[10_000])

	src := make([]T, largeSize)
	for i := range src {
		src[i] = 42
	}
	copy(s.Data(), src)
	assert.Equal(t, T(42), s.Data()[0])
	assert.Equal(t, T(42), s.Data()[10])
	assert.Equal(t, T(42), s.Data()[largeSize-1])
}

func TestStorageAllocates(t *testing.T) {
	runTyped(t, func(t *testing.T, dt DataType) {
		for _, size := range []int{0, 1, smallSize, largeSize} {
			switch dt {
			case Float32:
				checkStorageAllocates[float32](t, size)
			case Float64:
				checkStorageAllocates[float64](t, size)
			case Int32:
				checkStorageAllocates[int32](t, size)
			}
		}
	})
}

func TestStorageReadBack(t *testing.T) {
	runTyped(t, func(t *testing.T, dt DataType) {
		switch dt {
		case Float32:
			checkStorageReadBack[float32](t)
		case Float64:
			checkStorageReadBack[float64](t)
		case Int32:
			checkStorageReadBack[int32](t)
		}
	})
}

func TestStorageSizeZero(t *testing.T) {
	s, err := NewStorage[float32](0)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Size())
	assert.NotNil(t, s.Data(), "empty storage must not hand out a nil buffer")
	assert.Empty(t, s.Data())
	assert.Equal(t, 0, s.ByteSize())
}

func TestStorageNegativeSize(t *testing.T) {
	s, err := NewStorage[float32](-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Nil(t, s)
}

func TestStorageByteSize(t *testing.T) {
	s, err := NewStorage[float64](10)
	require.NoError(t, err)
	assert.Equal(t, 80, s.ByteSize())
	assert.Equal(t, Float64, s.DType())
}

func TestStorageFloat16(t *testing.T) {
	s, err := NewStorage[float16.Float16](4)
	require.NoError(t, err)

	s.Data()[3] = float16.Fromfloat32(1.5)
	assert.InDelta(t, 1.5, s.Data()[3].Float32(), 1e-3)
	assert.Equal(t, 8, s.ByteSize())
}

func TestStorageRefCount(t *testing.T) {
	s, err := NewStorage[int32](8)
	require.NoError(t, err)

	s.Retain()
	assert.Equal(t, 2, s.RefCount())

	s.Release()
	assert.Equal(t, 1, s.RefCount())
	assert.False(t, s.Released())
	assert.Len(t, s.Data(), 8)

	s.Release()
	assert.True(t, s.Released())
	assert.Empty(t, s.Data())
	assert.Equal(t, 8, s.Size(), "size is fixed at construction")

	// Extra releases are ignored.
	s.Release()
	assert.Equal(t, 0, s.RefCount())
}

func TestStorageFromSliceAliases(t *testing.T) {
	buf := []float32{1, 2, 3}
	s := NewStorageFrom(buf)

	s.Data()[1] = 20
	assert.Equal(t, float32(20), buf[1])
	assert.Equal(t, 3, s.Size())

	empty := NewStorageFrom[float32](nil)
	assert.NotNil(t, empty.Data())
	assert.Equal(t, 0, empty.Size())
}

func TestStorageWithAllocator(t *testing.T) {
	alloc := NewLimitAllocator[float32](nil, 100)

	s, err := NewStorage(60, WithAllocator[float32](alloc))
	require.NoError(t, err)
	assert.Equal(t, 60, alloc.InUse())

	_, err = NewStorage(60, WithAllocator[float32](alloc))
	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, 60, alloc.InUse(), "failed request must not consume budget")

	s.Release()
	assert.Equal(t, 0, alloc.InUse())

	_, err = NewStorage(60, WithAllocator[float32](alloc))
	assert.NoError(t, err)
}

type shortAllocator struct{}

func (shortAllocator) Allocate(n int) ([]int32, error) { return make([]int32, n/2), nil }
func (shortAllocator) Free([]int32)                    {}

func TestStorageRejectsShortAllocation(t *testing.T) {
	_, err := NewStorage(10, WithAllocator[int32](shortAllocator{}))
	assert.ErrorIs(t, err, ErrResourceExhausted)
}

// countingAllocator records how many times each buffer is freed.
type countingAllocator struct {
	*LimitAllocator[float32]
	mu    sync.Mutex
	frees int
}

func (a *countingAllocator) Free(buf []float32) {
	a.mu.Lock()
	a.frees++
	a.mu.Unlock()
	a.LimitAllocator.Free(buf)
}

func TestStorageConcurrentSharing(t *testing.T) {
	alloc := &countingAllocator{LimitAllocator: NewLimitAllocator[float32](nil, 64)}
	s, err := NewStorage(64, WithAllocator[float32](alloc))
	require.NoError(t, err)

	const workers = 64
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				view, err := FromStorage(s, Shape{8, 8})
				if err != nil {
					errs <- err
					return
				}
				s.Retain()
				s.Release()
				view.Release()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, 1, s.RefCount())
	assert.True(t, s.IsShared())
	assert.Equal(t, 0, alloc.frees)
	assert.Equal(t, 64, alloc.InUse())

	s.Release()
	assert.Equal(t, 1, alloc.frees, "buffer must be freed exactly once")
	assert.Equal(t, 0, alloc.InUse())
}

func TestStorageConcurrentFinalRelease(t *testing.T) {
	alloc := &countingAllocator{LimitAllocator: NewLimitAllocator[float32](nil, 16)}
	s, err := NewStorage(16, WithAllocator[float32](alloc))
	require.NoError(t, err)

	const workers = 32
	for range workers - 1 {
		s.Retain()
	}

	var wg sync.WaitGroup
	for range workers * 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.RefCount())
	assert.Equal(t, 1, alloc.frees)
	assert.Equal(t, 0, alloc.InUse())
}
