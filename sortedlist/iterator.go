package sortedlist

// Iterator is a bidirectional cursor over a List in sorted order. It does
// not own the list.
//
// The cursor is an index. Mutating the list while an iterator is live keeps
// the index meaningful as long as it stays below Count, but it may then
// denote a different element.
//
// Boundary flags are only raised by an attempt to move past an end, or by
// SeekStart/SeekEnd; stepping onto index 0 or Count-1 does not raise them.
//
//	it := list.Begin()
//	for ok := !it.AtEnd(); ok; ok = it.StepForward() {
//	    fmt.Println(it.CurrentIndex(), it.Current())
//	}
type Iterator[T any] struct {
	target  *List[T]
	cursor  int
	atStart bool
	atEnd   bool
}

// NewIterator returns an iterator positioned at the start of target.
func NewIterator[T any](target *List[T]) *Iterator[T] {
	it := &Iterator[T]{}
	it.Init(target)

	return it
}

// Init positions it at the start of target, sorting target first.
func (it *Iterator[T]) Init(target *List[T]) {
	target.Sort()

	it.target = target
	it.cursor = 0
	it.atStart = true
	it.atEnd = target.IsEmpty()
}

// Begin returns an iterator at the first element.
func (l *List[T]) Begin() *Iterator[T] {
	return NewIterator(l)
}

// End returns an iterator at the last element.
func (l *List[T]) End() *Iterator[T] {
	it := NewIterator(l)
	it.SeekEnd()

	return it
}

// Release detaches the iterator from its list. A released iterator behaves
// as if its list were empty.
func (it *Iterator[T]) Release() {
	it.target = nil
	it.cursor = 0
	it.atStart = true
	it.atEnd = true
}

func (it *Iterator[T]) empty() bool {
	return it.target == nil || it.target.count == 0
}

// AtStart reports whether the iterator is flagged at the start. Always true
// for an empty list.
func (it *Iterator[T]) AtStart() bool {
	return it.empty() || it.atStart
}

// AtEnd reports whether the iterator is flagged at the end. Always true for
// an empty list.
func (it *Iterator[T]) AtEnd() bool {
	return it.empty() || it.atEnd
}

// SeekStart moves to index 0. It returns false for an empty list.
func (it *Iterator[T]) SeekStart() bool {
	if it.empty() {
		return false
	}

	it.cursor = 0
	it.atStart = true
	it.atEnd = false

	return true
}

// SeekEnd moves to the last index. It returns false for an empty list.
func (it *Iterator[T]) SeekEnd() bool {
	if it.empty() {
		return false
	}

	it.cursor = it.target.count - 1
	it.atStart = false
	it.atEnd = true

	return true
}

// StepForward moves one position towards the end. At the last index it
// raises the end flag and returns false without moving.
func (it *Iterator[T]) StepForward() bool {
	if it.empty() || it.atEnd {
		return false
	}

	if it.cursor+1 >= it.target.count {
		it.atEnd = true

		return false
	}

	it.atStart = false
	it.cursor++

	return true
}

// StepBackward moves one position towards the start. At index 0 it raises
// the start flag and returns false without moving.
func (it *Iterator[T]) StepBackward() bool {
	if it.empty() || it.atStart {
		return false
	}

	if it.cursor == 0 {
		it.atStart = true

		return false
	}

	it.atEnd = false
	it.cursor--

	return true
}

// Advance moves steps positions towards the end. It does not move and
// returns false when steps is not positive or the move would pass the last
// index; landing exactly on the last index is allowed.
func (it *Iterator[T]) Advance(steps int) bool {
	if it.empty() || it.atEnd || steps <= 0 {
		return false
	}

	last := it.target.count - 1

	if it.cursor >= last {
		it.atEnd = true

		return false
	}

	if steps > last-it.cursor {
		return false
	}

	it.atStart = false
	it.cursor += steps

	return true
}

// Rewind moves steps positions towards the start. It does not move and
// returns false when steps is not positive or the move would pass index 0;
// landing exactly on index 0 is allowed.
func (it *Iterator[T]) Rewind(steps int) bool {
	if it.empty() || it.atStart || steps <= 0 {
		return false
	}

	if it.cursor == 0 {
		it.atStart = true

		return false
	}

	if steps > it.cursor {
		return false
	}

	it.atEnd = false
	it.cursor -= steps

	return true
}

// SeekTo moves to an absolute index. It returns false, without moving, for
// an index outside [0, Count).
func (it *Iterator[T]) SeekTo(index int) bool {
	if it.empty() || index < 0 || index >= it.target.count {
		return false
	}

	switch {
	case it.cursor > index:
		return it.Rewind(it.cursor - index)
	case it.cursor < index:
		return it.Advance(index - it.cursor)
	default:
		return true
	}
}

// Current returns the element under the cursor, or the zero value when the
// list is empty or the cursor is past its end.
func (it *Iterator[T]) Current() T {
	if it.empty() || it.cursor >= it.target.count {
		var zero T

		return zero
	}

	return it.target.buffer[it.cursor]
}

// CurrentIndex returns the cursor position.
func (it *Iterator[T]) CurrentIndex() int {
	return it.cursor
}
