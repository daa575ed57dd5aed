package sortedlist_test

import (
	"testing"

	"github.com/amp-labs/lazylist/sortedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestCollatedStrings(t *testing.T) {
	t.Parallel()

	t.Run("language order", func(t *testing.T) {
		t.Parallel()

		list, err := sortedlist.New(2, sortedlist.CollatedStrings(language.German))
		require.NoError(t, err)

		for _, v := range []string{"Zebra", "äpfel", "Birne", "apfel"} {
			require.True(t, list.Insert(v))
		}

		assert.Equal(t, []string{"apfel", "äpfel", "Birne", "Zebra"}, contents(list))
	})

	t.Run("case insensitive equivalence", func(t *testing.T) {
		t.Parallel()

		behavior := sortedlist.CollatedStrings(language.English, collate.IgnoreCase)

		list, err := sortedlist.New(4, behavior)
		require.NoError(t, err)

		for _, v := range []string{"b", "A", "a", "B"} {
			require.True(t, list.Insert(v))
		}

		assert.Equal(t, 0, list.IndexOf("A", sortedlist.First))
		assert.Equal(t, 1, list.IndexOf("a", sortedlist.Last))
		assert.True(t, list.Contains("b"))

		assert.Equal(t, behavior.Hash("Hello"), behavior.Hash("hELLO"))
		assert.NotEqual(t, behavior.Hash("Hello"), behavior.Hash("World"))
	})
}
