// Package sortedlist provides List, a generic growable array that defers
// sorting until an order-dependent query is made.
//
// # Overview
//
// Inserting is a plain append. The list remembers that it may be out of
// order and sorts itself the next time Min, Max, Get, IndexOf, Contains,
// Equals, Print, Seq or an Iterator needs the order. Removing by index
// preserves order, so it never forces another sort.
//
// Element behavior is supplied as a [Behavior] table: a required compare
// function plus optional copy, string, destroy, hash and priority functions.
// [OrderedBehavior], [SortableBehavior], [NaturalStrings] and
// [CollatedStrings] build tables for common element types.
//
//	list, err := sortedlist.New(8, sortedlist.OrderedBehavior[int]())
//	if err != nil {
//	    return err
//	}
//
//	for _, v := range []int{5, 1, 4, 2, 3} {
//	    list.Insert(v)
//	}
//
//	lowest, _ := list.Min()                  // 1, sorts once
//	pos := list.IndexOf(4, sortedlist.First) // 3
//
// # Errors
//
// Constructors return errors wrapping the package sentinels. Other
// operations return a bool (or the Count sentinel for searches) and record
// the reason in [List.Status]; [List.Err] converts it to a sentinel error.
//
// # Storage
//
// Storage comes from an [Allocator]. [HeapAllocator] is used unless another
// is configured; [LimitedAllocator] caps the number of elements held.
// Lifecycle [Callbacks] fire around Clear and Destroy.
//
// # Encoding
//
// Lists encode to YAML as a sequence in sorted order, and decode by
// appending to a list built with [New].
//
// # Thread Safety
//
// Lists and iterators are not safe for concurrent use. Serialize access
// externally. [SortAll] sorts distinct lists in parallel.
package sortedlist
