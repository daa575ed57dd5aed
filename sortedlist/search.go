package sortedlist

// Direction selects which occurrence IndexOf reports when an element is
// present more than once.
type Direction int

const (
	// First selects the lowest matching index.
	First Direction = iota
	// Last selects the highest matching index.
	Last
)

func (d Direction) String() string {
	if d == Last {
		return "last"
	}

	return "first"
}

// IndexOf returns the sorted position of the first or last element
// equivalent to value. A miss returns Count(), for empty lists too.
func (l *List[T]) IndexOf(value T, dir Direction) int {
	l.Sort()

	var index int

	if dir == Last {
		index = l.searchLast(value)
	} else {
		index = l.searchFirst(value)
	}

	if index == l.count {
		l.status = StatusNotFound
	} else {
		l.status = StatusOK
	}

	return index
}

// Contains reports whether an element equivalent to value is present.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value, First) < l.count
}

// searchFirst narrows to the leftmost element not less than value.
// The buffer must be sorted.
func (l *List[T]) searchFirst(value T) int {
	lo, hi := 0, l.count

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		if l.behavior.Compare(l.buffer[mid], value) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo < l.count && l.behavior.Compare(l.buffer[lo], value) == 0 {
		return lo
	}

	return l.count
}

// searchLast narrows to the element just past the rightmost element not
// greater than value. The buffer must be sorted.
func (l *List[T]) searchLast(value T) int {
	lo, hi := 0, l.count

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		if l.behavior.Compare(l.buffer[mid], value) > 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	if lo > 0 && l.behavior.Compare(l.buffer[lo-1], value) == 0 {
		return lo - 1
	}

	return l.count
}
