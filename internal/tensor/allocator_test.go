package tensor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator[float64]

	buf, err := a.Allocate(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, buf)

	buf, err = a.Allocate(0)
	require.NoError(t, err)
	assert.NotNil(t, buf)

	_, err = a.Allocate(-3)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestLimitAllocatorBudget(t *testing.T) {
	a := NewLimitAllocator[int32](HeapAllocator[int32]{}, 10)
	assert.Equal(t, 10, a.Limit())

	first, err := a.Allocate(7)
	require.NoError(t, err)

	_, err = a.Allocate(4)
	require.ErrorIs(t, err, ErrResourceExhausted)
	assert.Contains(t, err.Error(), "requested 4 elements")

	second, err := a.Allocate(3)
	require.NoError(t, err)
	assert.Equal(t, 10, a.InUse())

	a.Free(first)
	a.Free(second)
	assert.Equal(t, 0, a.InUse())
}

func TestLimitAllocatorConcurrent(t *testing.T) {
	a := NewLimitAllocator[uint8](nil, 1000)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				buf, err := a.Allocate(10)
				if err == nil {
					a.Free(buf)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, a.InUse())
}
