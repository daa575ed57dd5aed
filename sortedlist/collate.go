package sortedlist

import (
	"sync"

	"github.com/amp-labs/lazylist/hashing"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CollatedStrings returns a behavior table that orders strings by the
// collation rules of a language, e.g. language.German puts "ä" next to "a".
// Options such as collate.IgnoreCase or collate.Numeric widen what counts
// as equivalent; Hash follows the same rules.
//
// A collator is not safe for concurrent use, so calls into it are
// serialized. The returned table can back any number of lists.
func CollatedStrings(tag language.Tag, opts ...collate.Option) *Behavior[string] {
	var (
		mu       sync.Mutex
		collator = collate.New(tag, opts...)
		buf      collate.Buffer
	)

	return &Behavior[string]{
		Compare: func(a, b string) int {
			mu.Lock()
			defer mu.Unlock()

			return collator.CompareString(a, b)
		},
		String: func(value string) string { return value },
		Hash: func(value string) uint64 {
			mu.Lock()
			defer mu.Unlock()

			key := collator.KeyFromString(&buf, value)
			sum := hashing.Bytes(key)

			buf.Reset()

			return sum
		},
	}
}
