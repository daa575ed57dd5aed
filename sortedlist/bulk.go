package sortedlist

import (
	"context"
	"runtime"

	"github.com/alitto/pond/v2"
)

// SortAll sorts several lists concurrently on a bounded worker pool, one
// worker per list. A list given twice is sorted once. Lists that are
// already sorted cost nothing.
//
// Each list is still touched by one goroutine at a time, but the caller
// must not use any of them until SortAll returns. Lists that share a
// Behavior run its Compare concurrently, so that function must be safe
// for concurrent use.
func SortAll[T any](ctx context.Context, lists ...*List[T]) error {
	pending := make([]*List[T], 0, len(lists))
	seen := make(map[*List[T]]struct{}, len(lists))

	for _, l := range lists {
		if l == nil || l.IsSorted() {
			continue
		}

		if _, ok := seen[l]; ok {
			continue
		}

		seen[l] = struct{}{}
		pending = append(pending, l)
	}

	switch len(pending) {
	case 0:
		return ctx.Err()
	case 1:
		if err := ctx.Err(); err != nil {
			return err
		}

		pending[0].Sort()

		return nil
	}

	pool := pond.NewPool(min(len(pending), runtime.GOMAXPROCS(0)))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)

	for _, l := range pending {
		group.Submit(l.Sort)
	}

	return group.Wait()
}
