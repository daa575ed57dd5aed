package sortedlist_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/lazylist/compare"
	"github.com/amp-labs/lazylist/sortedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_MatchesSortedMultiset(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	random := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = rng.IntN(50)
		}

		return out
	}

	ascending := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}

		return out
	}

	descending := func(n int) []int {
		out := ascending(n)
		slices.Reverse(out)

		return out
	}

	inputs := map[string][]int{
		"empty":              nil,
		"single":             {1},
		"pair reversed":      {2, 1},
		"below threshold":    random(9),
		"at threshold":       random(10),
		"above threshold":    random(11),
		"random hundred":     random(100),
		"random thousand":    random(1000),
		"ascending":          ascending(300),
		"descending":         descending(300),
		"all equal":          slices.Repeat([]int{4}, 64),
		"organ pipe":         append(ascending(50), descending(50)...),
		"few distinct large": random(2000),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			list := newIntList(t, 1, input...)
			list.Sort()

			expected := slices.Clone(input)
			slices.Sort(expected)

			if expected == nil {
				expected = []int{}
			}

			got := contents(list)
			if got == nil {
				got = []int{}
			}

			assert.Equal(t, expected, got)
			assert.True(t, list.IsSorted())
		})
	}
}

func TestSort_CustomOrder(t *testing.T) {
	t.Parallel()

	list, err := sortedlist.New(4, &sortedlist.Behavior[string]{
		Compare: compare.Reverse(compare.Ordered[string]()),
	})
	require.NoError(t, err)

	for _, v := range []string{"b", "d", "a", "c"} {
		list.Insert(v)
	}

	assert.Equal(t, []string{"d", "c", "b", "a"}, contents(list))
}

func TestSort_LazyComparisons(t *testing.T) {
	t.Parallel()

	comparisons := 0
	behavior := &sortedlist.Behavior[int]{
		Compare: func(a, b int) int {
			comparisons++

			return a - b
		},
	}

	list, err := sortedlist.New(16, behavior)
	require.NoError(t, err)

	for _, v := range []int{9, 3, 7, 1} {
		list.Insert(v)
	}

	assert.Zero(t, comparisons, "inserts never compare")

	_, _ = list.Min()
	afterFirstQuery := comparisons
	assert.Positive(t, afterFirstQuery)

	_, _ = list.Max()
	_, _ = list.Get(2)
	assert.Equal(t, afterFirstQuery, comparisons, "sorted list is not sorted again")
}
