// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/lazylist/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparison for any Sortable type. Equals wins
// over LessThan so types whose equality is coarser than their ordering
// still compare as equivalent.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// Func returns Compare as a compare.Func, ready to plug into a behavior table.
func Func[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}
