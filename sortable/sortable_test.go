package sortable_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/lazylist/sortable"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("ints", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, sortable.Compare(sortable.Int(1), sortable.Int(2)))
		assert.Equal(t, 1, sortable.Compare(sortable.Int(5), sortable.Int(2)))
		assert.Equal(t, 0, sortable.Compare(sortable.Int(3), sortable.Int(3)))
	})

	t.Run("bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, sortable.Compare(sortable.Byte('a'), sortable.Byte('b')))
		assert.Equal(t, 0, sortable.Compare(sortable.Byte('z'), sortable.Byte('z')))
	})

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, sortable.Compare(sortable.String("apple"), sortable.String("banana")))
		assert.Equal(t, 1, sortable.Compare(sortable.String("b"), sortable.String("a")))
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	values := []sortable.Int{5, 1, 4, 2, 3}
	slices.SortFunc(values, sortable.Func[sortable.Int]())

	assert.Equal(t, []sortable.Int{1, 2, 3, 4, 5}, values)
}

func TestNatural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    sortable.Natural
		b    sortable.Natural
		less bool
	}{
		{name: "numeric runs compare as numbers", a: "file2", b: "file10", less: true},
		{name: "larger number sorts later", a: "file10", b: "file2", less: false},
		{name: "plain prefix order", a: "alpha", b: "beta", less: true},
		{name: "equal strings", a: "v1", b: "v1", less: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.less, tt.a.LessThan(tt.b))
		})
	}

	t.Run("sorts a slice naturally", func(t *testing.T) {
		t.Parallel()

		values := []sortable.Natural{"img12", "img10", "img2", "img1"}
		slices.SortFunc(values, sortable.Compare[sortable.Natural])

		assert.Equal(t, []sortable.Natural{"img1", "img2", "img10", "img12"}, values)
	})
}
