package sortedlist

import (
	"fmt"
	"io"
	"iter"
	"reflect"

	"github.com/amp-labs/lazylist/hashing"
	"github.com/google/uuid"
)

// Describe returns a one-line summary of the list's state. It does not sort.
func (l *List[T]) Describe() string {
	if l.id == "" {
		l.id = uuid.NewString()
	}

	return fmt.Sprintf("SortedList<%s> %s { capacity:%d, count:%d, sorted:%t, status:%s, allocator:%T, callbacks:%t }",
		reflect.TypeFor[T]().String(), l.id, l.Capacity(), l.count, l.sorted, l.status, l.alloc, l.callbacks != nil)
}

func (l *List[T]) String() string {
	return l.Describe()
}

// Print writes the elements in sorted order, rendered with Behavior.String,
// as start, elements joined by separator, then end.
func (l *List[T]) Print(w io.Writer, start, separator, end string) error {
	if l.behavior.String == nil {
		l.status = StatusInvalidArgument

		return fmt.Errorf("%w: behavior has no String function", ErrInvalidArgument)
	}

	l.Sort()
	l.status = StatusOK

	if _, err := io.WriteString(w, start); err != nil {
		return err
	}

	for i := range l.count {
		if i > 0 {
			if _, err := io.WriteString(w, separator); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, l.behavior.String(l.buffer[i])); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, end)

	return err
}

// Seq returns an iterator over the elements in sorted order.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Sort()

		for i := 0; i < l.count; i++ {
			if !yield(l.buffer[i]) {
				return
			}
		}
	}
}

// Fingerprint returns an order-sensitive digest of the sorted elements
// built from Behavior.Hash. Lists that are Equal and whose equivalent
// elements hash equally share a fingerprint. It returns false when the
// behavior has no Hash function.
func (l *List[T]) Fingerprint() (uint64, bool) {
	if l.behavior.Hash == nil {
		l.status = StatusInvalidArgument

		return 0, false
	}

	l.Sort()

	digest := hashing.NewDigest()

	for i := range l.count {
		digest.Add(l.behavior.Hash(l.buffer[i]))
	}

	l.status = StatusOK

	return digest.Sum64(), true
}
