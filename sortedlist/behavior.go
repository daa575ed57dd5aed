package sortedlist

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/lazylist/compare"
	"github.com/amp-labs/lazylist/hashing"
	"github.com/amp-labs/lazylist/sortable"
)

// Behavior is the table of element functions a List is built with.
// Compare is required; every other slot is optional and may be nil.
//
// A Behavior is shared, never copied, by the lists that use it, so the same
// table can back any number of lists of the same element type.
type Behavior[T any] struct {
	// Compare orders elements. It must define a strict weak ordering.
	Compare compare.Func[T]

	// Copy duplicates an element for CopyOf. Without it elements are copied
	// by plain assignment.
	Copy func(value T) T

	// String renders an element for Print.
	String func(value T) string

	// Destroy is called on every live element by Clear and Destroy.
	Destroy func(value T)

	// Hash hashes an element. Equivalent elements must hash equally.
	// Required by Fingerprint.
	Hash hashing.Func[T]

	// Priority is an alternative ordering for collections that schedule by
	// priority. Lists carry it but order by Compare.
	Priority compare.Func[T]
}

func (b *Behavior[T]) valid() bool {
	return b != nil && b.Compare != nil
}

// OrderedBehavior returns a behavior table for any cmp.Ordered element type:
// ascending order, fmt-based String, and xxh3 hashing.
func OrderedBehavior[T cmp.Ordered]() *Behavior[T] {
	return &Behavior[T]{
		Compare:  compare.Ordered[T](),
		String:   func(value T) string { return fmt.Sprint(value) },
		Hash:     hashing.Ordered[T](),
		Priority: compare.Ordered[T](),
	}
}

// SortableBehavior returns a behavior table for element types that
// implement sortable.Sortable.
func SortableBehavior[T sortable.Sortable[T]]() *Behavior[T] {
	return &Behavior[T]{
		Compare: sortable.Func[T](),
		String:  func(value T) string { return fmt.Sprint(value) },
	}
}

// NaturalStrings returns a behavior table that orders strings naturally,
// so "v2" sorts before "v10".
func NaturalStrings() *Behavior[string] {
	return &Behavior[string]{
		Compare: func(a, b string) int {
			return sortable.Compare(sortable.Natural(a), sortable.Natural(b))
		},
		String: func(value string) string { return value },
		Hash:   hashing.String,
	}
}
