package sortedlist

import (
	"fmt"
)

// Allocator supplies element storage to a List. Every method returns a
// slice of exactly n elements or an error; implementations must not panic
// on exhaustion.
//
// The List references its allocator and never takes ownership of it. One
// allocator may serve many lists.
type Allocator[T any] interface {
	// Allocate returns storage for n elements. Contents are unspecified.
	Allocate(n int) ([]T, error)

	// ZeroAllocate returns storage for n zero-valued elements.
	ZeroAllocate(n int) ([]T, error)

	// Reallocate returns storage for n elements holding the first
	// min(n, len(buf)) elements of buf. buf must not be used afterwards.
	Reallocate(buf []T, n int) ([]T, error)

	// Release returns storage obtained from this allocator.
	Release(buf []T)
}

// HeapAllocator allocates from the Go heap. It is the allocator lists use
// when none is configured.
type HeapAllocator[T any] struct{}

var _ Allocator[int] = HeapAllocator[int]{}

func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailure, n)
	}

	return make([]T, n), nil
}

func (h HeapAllocator[T]) ZeroAllocate(n int) ([]T, error) {
	// make already zeroes.
	return h.Allocate(n)
}

func (h HeapAllocator[T]) Reallocate(buf []T, n int) ([]T, error) {
	out, err := h.Allocate(n)
	if err != nil {
		return nil, err
	}

	copy(out, buf)

	return out, nil
}

func (HeapAllocator[T]) Release([]T) {}

// LimitedAllocator enforces a budget on the number of elements held at
// once across every buffer it has handed out. Requests that would exceed
// the budget fail with ErrAllocationFailure. It is not safe for concurrent
// use.
type LimitedAllocator[T any] struct {
	inner Allocator[T]
	limit int
	inUse int
}

var _ Allocator[int] = (*LimitedAllocator[int])(nil)

// NewLimitedAllocator returns an allocator that delegates to inner (the heap
// when nil) while keeping at most limit elements allocated.
func NewLimitedAllocator[T any](limit int, inner Allocator[T]) *LimitedAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}

	return &LimitedAllocator[T]{inner: inner, limit: limit}
}

// InUse returns the number of elements currently allocated.
func (a *LimitedAllocator[T]) InUse() int {
	return a.inUse
}

// Limit returns the element budget.
func (a *LimitedAllocator[T]) Limit() int {
	return a.limit
}

func (a *LimitedAllocator[T]) admit(released, requested int) error {
	if a.inUse-released+requested > a.limit {
		return fmt.Errorf("%w: %d elements requested, %d of %d in use",
			ErrAllocationFailure, requested, a.inUse-released, a.limit)
	}

	return nil
}

func (a *LimitedAllocator[T]) Allocate(n int) ([]T, error) {
	if err := a.admit(0, n); err != nil {
		return nil, err
	}

	buf, err := a.inner.Allocate(n)
	if err != nil {
		return nil, err
	}

	a.inUse += len(buf)

	return buf, nil
}

func (a *LimitedAllocator[T]) ZeroAllocate(n int) ([]T, error) {
	if err := a.admit(0, n); err != nil {
		return nil, err
	}

	buf, err := a.inner.ZeroAllocate(n)
	if err != nil {
		return nil, err
	}

	a.inUse += len(buf)

	return buf, nil
}

func (a *LimitedAllocator[T]) Reallocate(buf []T, n int) ([]T, error) {
	if err := a.admit(len(buf), n); err != nil {
		return nil, err
	}

	out, err := a.inner.Reallocate(buf, n)
	if err != nil {
		return nil, err
	}

	a.inUse += len(out) - len(buf)

	return out, nil
}

func (a *LimitedAllocator[T]) Release(buf []T) {
	a.inner.Release(buf)
	a.inUse -= len(buf)
}
