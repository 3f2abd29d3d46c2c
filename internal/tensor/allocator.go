package tensor

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Allocator provides element buffers for storages.
//
// Allocate must return exactly n zero-valued elements, and a non-nil slice when n == 0.
// Free is called once, when the last reference to a storage is released.
type Allocator[T Element] interface {
	Allocate(n int) ([]T, error)
	Free(buf []T)
}

// HeapAllocator allocates from the Go heap.
type HeapAllocator[T Element] struct{}

// Allocate returns a new zeroed slice of n elements.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return make([]T, n), nil
}

// Free is a no-op; the garbage collector reclaims the buffer.
func (HeapAllocator[T]) Free([]T) {}

// LimitAllocator caps the number of live elements handed out by an underlying allocator.
// It is safe for concurrent use.
type LimitAllocator[T Element] struct {
	next  Allocator[T]
	limit int64
	used  atomic.Int64
}

// NewLimitAllocator wraps next with a budget of limit elements.
// A nil next uses HeapAllocator.
func NewLimitAllocator[T Element](next Allocator[T], limit int) *LimitAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &LimitAllocator[T]{next: next, limit: int64(limit)}
}

// Allocate reserves n elements from the budget, then delegates.
func (a *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if used := a.used.Add(int64(n)); used > a.limit {
		a.used.Add(-int64(n))
		slog.Debug("allocation refused", "requested", n, "in_use", used-int64(n), "limit", a.limit)
		return nil, fmt.Errorf("%w: requested %d elements, %d of %d in use",
			ErrResourceExhausted, n, used-int64(n), a.limit)
	}
	buf, err := a.next.Allocate(n)
	if err != nil {
		a.used.Add(-int64(n))
		return nil, err
	}
	return buf, nil
}

// Free returns len(buf) elements to the budget.
func (a *LimitAllocator[T]) Free(buf []T) {
	a.used.Add(-int64(len(buf)))
	a.next.Free(buf)
}

// InUse returns the number of elements currently allocated.
func (a *LimitAllocator[T]) InUse() int {
	return int(a.used.Load())
}

// Limit returns the element budget.
func (a *LimitAllocator[T]) Limit() int {
	return int(a.limit)
}
