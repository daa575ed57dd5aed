package sortedlist

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amp-labs/lazylist/compare"
	"github.com/amp-labs/lazylist/logger"
)

// List is a growable array that sorts itself lazily. Inserts append in O(1)
// amortized time and mark the list unsorted; the first order-dependent call
// afterwards (Min, Max, Get, IndexOf, Contains, Equals, iteration, Print)
// sorts the whole buffer once.
//
// len(buffer) is the capacity. Slots at or past count are always zero.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	buffer    []T
	count     int
	sorted    bool
	status    Status
	behavior  *Behavior[T]
	alloc     Allocator[T]
	callbacks *Callbacks
	log       *slog.Logger
	name      string
	id        string
}

var _ compare.Comparable[*List[int]] = (*List[int])(nil)

// New builds a List with room for capacity elements ordered by behavior.
func New[T any](capacity int, behavior *Behavior[T], opts ...Option[T]) (*List[T], error) {
	cfg := Config[T]{
		Capacity: capacity,
		Behavior: behavior,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig builds a List from a Config. It fails with ErrInvalidArgument
// when the capacity is below one or the behavior lacks a compare function,
// and with ErrAllocationFailure when the allocator cannot supply storage.
func NewWithConfig[T any](cfg Config[T]) (*List[T], error) {
	if cfg.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1, got %d", ErrInvalidArgument, cfg.Capacity)
	}

	if !cfg.Behavior.valid() {
		return nil, fmt.Errorf("%w: behavior requires a compare function", ErrInvalidArgument)
	}

	alloc := cfg.Allocator
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	buf, err := alloc.ZeroAllocate(cfg.Capacity)
	if err == nil && len(buf) != cfg.Capacity {
		err = fmt.Errorf("allocator returned %d elements, wanted %d", len(buf), cfg.Capacity)
	}

	if err != nil {
		return nil, logger.AnnotateError(allocationError(err), "capacity", cfg.Capacity)
	}

	return &List[T]{
		buffer:    buf,
		behavior:  cfg.Behavior,
		alloc:     alloc,
		callbacks: cfg.Callbacks,
		log:       log,
		name:      cfg.Name,
	}, nil
}

func allocationError(err error) error {
	if errors.Is(err, ErrAllocationFailure) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrAllocationFailure, err)
}

// Clear destroys every element and empties the list. The capacity is kept.
func (l *List[T]) Clear() {
	l.callbacks.beforeClear()

	l.destroyElements()
	clear(l.buffer)

	l.count = 0
	l.sorted = true
	l.status = StatusOK

	l.callbacks.afterClear()
}

// Destroy destroys every element and hands the buffer back to the
// allocator. The list is left empty with zero capacity and should not be
// used further.
func (l *List[T]) Destroy() {
	l.callbacks.beforeFree()

	l.destroyElements()
	l.alloc.Release(l.buffer)

	l.buffer = nil
	l.count = 0
	l.sorted = true
	l.status = StatusOK

	l.callbacks.afterFree()
}

func (l *List[T]) destroyElements() {
	if l.behavior.Destroy == nil {
		return
	}

	for i := range l.count {
		l.behavior.Destroy(l.buffer[i])
	}
}

// Reconfigure replaces the allocator and/or the callbacks. A nil argument
// keeps the current setting. The current buffer is later released through
// whichever allocator is configured at that time.
func (l *List[T]) Reconfigure(alloc Allocator[T], callbacks *Callbacks) {
	if alloc != nil {
		l.alloc = alloc
	}

	if callbacks != nil {
		l.callbacks = callbacks
	}
}

// Insert appends value, doubling the capacity first when the list is full.
// It returns false, leaving the list untouched, only if growing fails.
func (l *List[T]) Insert(value T) bool {
	if l.IsFull() && !l.Resize(max(l.Capacity()*2, 1)) {
		return false
	}

	l.buffer[l.count] = value
	l.count++
	l.sorted = false
	l.status = StatusOK

	return true
}

// RemoveAt removes the element at index, shifting later elements left.
// Removal keeps the relative order, so a sorted list stays sorted.
func (l *List[T]) RemoveAt(index int) bool {
	if index < 0 || index >= l.count {
		l.status = StatusOutOfRange

		return false
	}

	copy(l.buffer[index:], l.buffer[index+1:l.count])

	l.count--

	var zero T

	l.buffer[l.count] = zero
	l.status = StatusOK

	return true
}

// Resize changes the capacity. It fails with StatusInvalidArgument when
// capacity is below one or below Count, and with StatusAllocationFailure
// when the allocator refuses. New slots are zero.
func (l *List[T]) Resize(capacity int) bool {
	if capacity == l.Capacity() {
		l.status = StatusOK

		return true
	}

	if capacity < 1 || capacity < l.count {
		l.status = StatusInvalidArgument

		return false
	}

	previous := l.Capacity()

	buf, err := l.alloc.Reallocate(l.buffer, capacity)
	if err == nil && len(buf) != capacity {
		err = fmt.Errorf("allocator returned %d elements, wanted %d", len(buf), capacity)
	}

	if err != nil {
		l.status = StatusAllocationFailure
		l.log.Warn("sortedlist: reallocation failed",
			"list", l.name,
			"error", logger.AnnotateError(allocationError(err), "from", previous, "to", capacity, "count", l.count))

		return false
	}

	clear(buf[l.count:])

	l.buffer = buf
	l.status = StatusOK

	l.log.Debug("sortedlist: resized", "list", l.name, "from", previous, "to", capacity, "count", l.count)

	return true
}

// Min returns the smallest element.
func (l *List[T]) Min() (T, bool) {
	if l.IsEmpty() {
		l.status = StatusEmpty

		var zero T

		return zero, false
	}

	l.Sort()
	l.status = StatusOK

	return l.buffer[0], true
}

// Max returns the largest element.
func (l *List[T]) Max() (T, bool) {
	if l.IsEmpty() {
		l.status = StatusEmpty

		var zero T

		return zero, false
	}

	l.Sort()
	l.status = StatusOK

	return l.buffer[l.count-1], true
}

// Get returns the element at index in sorted order, so Get(0) is the
// minimum. Out of range indexes return the zero value and false.
func (l *List[T]) Get(index int) (T, bool) {
	if index < 0 || index >= l.count {
		l.status = StatusOutOfRange

		var zero T

		return zero, false
	}

	l.Sort()
	l.status = StatusOK

	return l.buffer[index], true
}

func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

func (l *List[T]) IsFull() bool {
	return l.count >= len(l.buffer)
}

func (l *List[T]) Count() int {
	return l.count
}

func (l *List[T]) Capacity() int {
	return len(l.buffer)
}

// Status returns the outcome of the last operation.
func (l *List[T]) Status() Status {
	return l.status
}

// Err returns the sentinel error for the last operation's status, or nil.
func (l *List[T]) Err() error {
	return l.status.Err()
}

// CopyOf returns an independent list with the same capacity, behavior,
// allocator, callbacks and logger. Elements go through Behavior.Copy when
// set and are assigned directly otherwise.
func (l *List[T]) CopyOf() (*List[T], error) {
	result, err := NewWithConfig(Config[T]{
		Capacity:  max(l.Capacity(), 1),
		Behavior:  l.behavior,
		Allocator: l.alloc,
		Callbacks: l.callbacks,
		Logger:    l.log,
		Name:      l.name,
	})
	if err != nil {
		l.status = StatusAllocationFailure

		return nil, err
	}

	if l.behavior.Copy != nil {
		for i := range l.count {
			result.buffer[i] = l.behavior.Copy(l.buffer[i])
		}
	} else {
		copy(result.buffer, l.buffer[:l.count])
	}

	result.count = l.count
	result.sorted = l.sorted
	l.status = StatusOK

	return result, nil
}

// Equals reports whether both lists hold equivalent elements in the same
// sorted order, using l's compare function. Both lists are sorted as a side
// effect.
func (l *List[T]) Equals(other *List[T]) bool {
	l.Sort()
	other.Sort()

	if l.count != other.count {
		return false
	}

	for i := range l.count {
		if l.behavior.Compare(l.buffer[i], other.buffer[i]) != 0 {
			return false
		}
	}

	return true
}

// Equal is the two-argument form of Equals.
func Equal[T any](a, b *List[T]) bool {
	return a.Equals(b)
}
