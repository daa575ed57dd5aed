package sortedlist_test

import (
	"testing"

	"github.com/amp-labs/lazylist/sortedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		find   int
		first  int
		last   int
	}{
		{name: "single occurrence", values: []int{5, 1, 4, 2, 3}, find: 4, first: 3, last: 3},
		{name: "run of duplicates", values: []int{2, 3, 2, 1, 2}, find: 2, first: 1, last: 3},
		{name: "duplicates at the start", values: []int{1, 1, 1, 9}, find: 1, first: 0, last: 2},
		{name: "duplicates at the end", values: []int{0, 9, 9}, find: 9, first: 1, last: 2},
		{name: "all equal", values: []int{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, find: 7, first: 0, last: 11},
		{name: "absent between elements", values: []int{1, 3, 5}, find: 4, first: 3, last: 3},
		{name: "absent below minimum", values: []int{1, 3, 5}, find: 0, first: 3, last: 3},
		{name: "absent above maximum", values: []int{1, 3, 5}, find: 6, first: 3, last: 3},
		{name: "empty list", values: nil, find: 1, first: 0, last: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := newIntList(t, 4, tt.values...)

			assert.Equal(t, tt.first, list.IndexOf(tt.find, sortedlist.First))
			assert.Equal(t, tt.last, list.IndexOf(tt.find, sortedlist.Last))
		})
	}
}

func TestIndexOf_SentinelIsCount(t *testing.T) {
	t.Parallel()

	empty := newIntList(t, 4)
	assert.Equal(t, empty.Count(), empty.IndexOf(42, sortedlist.First))
	assert.Equal(t, empty.Count(), empty.IndexOf(42, sortedlist.Last))
	assert.Equal(t, sortedlist.StatusNotFound, empty.Status())

	populated := newIntList(t, 4, 1, 2, 3)
	assert.Equal(t, populated.Count(), populated.IndexOf(42, sortedlist.First))
	require.ErrorIs(t, populated.Err(), sortedlist.ErrNotFound)

	assert.Equal(t, 1, populated.IndexOf(2, sortedlist.First))
	assert.Equal(t, sortedlist.StatusOK, populated.Status())
}

func TestContains(t *testing.T) {
	t.Parallel()

	list := newIntList(t, 2, 30, 10, 20)

	assert.True(t, list.Contains(10))
	assert.True(t, list.Contains(30))
	assert.False(t, list.Contains(15))
	assert.False(t, newIntList(t, 1).Contains(0))
}

func TestDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first", sortedlist.First.String())
	assert.Equal(t, "last", sortedlist.Last.String())
}
