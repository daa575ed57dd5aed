package instrument

import (
	"github.com/amp-labs/lazylist/sortedlist"
	"go.uber.org/atomic"
)

// Allocator wraps another allocator and exports what it hands out as
// Prometheus metrics labeled with the allocator's name. It may be shared by
// lists living on different goroutines as long as the wrapped allocator
// allows that.
type Allocator[T any] struct {
	inner sortedlist.Allocator[T]
	name  string
	live  *atomic.Int64
}

var _ sortedlist.Allocator[int] = (*Allocator[int])(nil)

// NewAllocator instruments inner (the heap when nil) under name.
func NewAllocator[T any](name string, inner sortedlist.Allocator[T]) *Allocator[T] {
	if inner == nil {
		inner = sortedlist.HeapAllocator[T]{}
	}

	alloc := &Allocator[T]{
		inner: inner,
		name:  sanitizeName(name),
		live:  atomic.NewInt64(0),
	}

	// Expose zero values so the series exist before the first event.
	for _, kind := range []string{kindAllocate, kindZeroAllocate, kindReallocate} {
		allocations.WithLabelValues(alloc.name, kind).Add(0)
		allocationFailures.WithLabelValues(alloc.name, kind).Add(0)
	}

	releases.WithLabelValues(alloc.name).Add(0)
	liveElements.WithLabelValues(alloc.name).Set(0)

	return alloc
}

// Name returns the metric label used for this allocator.
func (a *Allocator[T]) Name() string {
	return a.name
}

// Live returns the number of element slots currently allocated through a.
func (a *Allocator[T]) Live() int64 {
	return a.live.Load()
}

func (a *Allocator[T]) Allocate(n int) ([]T, error) {
	buf, err := a.inner.Allocate(n)

	return a.record(kindAllocate, 0, buf, err)
}

func (a *Allocator[T]) ZeroAllocate(n int) ([]T, error) {
	buf, err := a.inner.ZeroAllocate(n)

	return a.record(kindZeroAllocate, 0, buf, err)
}

func (a *Allocator[T]) Reallocate(buf []T, n int) ([]T, error) {
	previous := len(buf)

	out, err := a.inner.Reallocate(buf, n)

	return a.record(kindReallocate, previous, out, err)
}

func (a *Allocator[T]) Release(buf []T) {
	a.inner.Release(buf)

	releases.WithLabelValues(a.name).Inc()
	a.adjust(-int64(len(buf)))
}

func (a *Allocator[T]) record(kind string, previous int, buf []T, err error) ([]T, error) {
	if err != nil {
		allocationFailures.WithLabelValues(a.name, kind).Inc()

		return nil, err
	}

	allocations.WithLabelValues(a.name, kind).Inc()
	a.adjust(int64(len(buf) - previous))

	return buf, nil
}

func (a *Allocator[T]) adjust(delta int64) {
	a.live.Add(delta)
	liveElements.WithLabelValues(a.name).Add(float64(delta))
}
