package sortedlist

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/lazylist/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnusedSlotsAreZero(t *testing.T) {
	t.Parallel()

	type payload struct {
		name string
	}

	list, err := New(2, &Behavior[*payload]{
		Compare: func(a, b *payload) int { return compare.Ordered[string]()(a.name, b.name) },
	})
	require.NoError(t, err)

	for _, name := range []string{"c", "a", "b"} {
		require.True(t, list.Insert(&payload{name: name}))
	}

	assertTail := func() {
		t.Helper()

		for i := list.count; i < len(list.buffer); i++ {
			assert.Nil(t, list.buffer[i], "slot %d", i)
		}
	}

	assert.Equal(t, 4, list.Capacity())
	assertTail()

	require.True(t, list.RemoveAt(1))
	assertTail()

	require.True(t, list.Resize(16))
	assertTail()

	require.True(t, list.Resize(2))
	assertTail()

	list.Clear()
	assertTail()
}

func TestInsertionSort(t *testing.T) {
	t.Parallel()

	values := []int{9, 4, 7, 1, 8, 2}
	insertionSort(values, compare.Ordered[int](), 1, 4)

	assert.Equal(t, []int{9, 1, 4, 7, 8, 2}, values, "only the requested range moves")
}

func TestQuickSort(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec

	for _, size := range []int{2, 10, 11, 12, 57, 500} {
		values := make([]int, size)
		for i := range values {
			values[i] = rng.IntN(size)
		}

		expected := slices.Clone(values)
		slices.Sort(expected)

		quickSort(values, compare.Ordered[int](), 0, size-1)

		assert.Equal(t, expected, values, "size %d", size)
	}
}

func TestQuickSort_SubRange(t *testing.T) {
	t.Parallel()

	values := []int{100, 15, 3, 12, 9, 14, 1, 2, 11, 13, 6, 5, 4, 8, 7, 10, -100}
	quickSort(values, compare.Ordered[int](), 1, len(values)-2)

	assert.Equal(t, 100, values[0])
	assert.Equal(t, -100, values[len(values)-1])
	assert.True(t, slices.IsSorted(values[1:len(values)-1]))
}

func TestSearchOnSortedBuffer(t *testing.T) {
	t.Parallel()

	list := &List[int]{
		buffer:   []int{1, 2, 2, 2, 3, 0, 0},
		count:    5,
		sorted:   true,
		behavior: OrderedBehavior[int](),
	}

	assert.Equal(t, 1, list.searchFirst(2))
	assert.Equal(t, 3, list.searchLast(2))
	assert.Equal(t, 5, list.searchFirst(0), "zeroed tail is never searched")
	assert.Equal(t, 5, list.searchLast(4))
}
