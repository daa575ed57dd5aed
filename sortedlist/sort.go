package sortedlist

import "github.com/amp-labs/lazylist/compare"

// Partitions shorter than this are finished with insertion sort.
const insertionSortThreshold = 10

// Sort orders the live elements if they are not already known to be in
// order. It runs automatically before every order-dependent query; calling
// it directly only moves the cost to a time of the caller's choosing.
//
// The sort is not stable. It pivots on the last element of each partition,
// so input that is already sorted (but flagged unsorted, e.g. after a
// single Insert into a sorted list) degrades to quadratic time.
func (l *List[T]) Sort() {
	if l.sorted || l.count <= 1 {
		return
	}

	quickSort(l.buffer, l.behavior.Compare, 0, l.count-1)

	l.sorted = true
}

// IsSorted reports whether the list is currently known to be in order.
func (l *List[T]) IsSorted() bool {
	return l.sorted || l.count <= 1
}

// quickSort sorts array[low:high+1]. It recurses into the smaller side of
// each Lomuto partition and loops on the larger one, which bounds the stack
// depth to O(log n) regardless of pivot quality.
func quickSort[T any](array []T, cmp compare.Func[T], low, high int) {
	for low < high {
		if high-low < insertionSortThreshold {
			insertionSort(array, cmp, low, high)

			return
		}

		pivot := array[high]
		store := low

		for i := low; i < high; i++ {
			if cmp(array[i], pivot) <= 0 {
				array[i], array[store] = array[store], array[i]
				store++
			}
		}

		array[store], array[high] = array[high], array[store]

		if store-low < high-store {
			quickSort(array, cmp, low, store-1)
			low = store + 1
		} else {
			quickSort(array, cmp, store+1, high)
			high = store - 1
		}
	}
}

// insertionSort sorts array[low:high+1].
func insertionSort[T any](array []T, cmp compare.Func[T], low, high int) {
	for i := low + 1; i <= high; i++ {
		value := array[i]
		j := i

		for j > low && cmp(array[j-1], value) > 0 {
			array[j] = array[j-1]
			j--
		}

		array[j] = value
	}
}
