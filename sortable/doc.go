// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of ordered collections.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [String] and the
// natural-order string type [Natural].
//
// The Sortable interface extends [github.com/amp-labs/lazylist/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Compare] folds the two methods into the three-way comparison used by
// [github.com/amp-labs/lazylist/sortedlist].
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. Collections holding them may not be, and require external
// synchronization for concurrent access.
package sortable
