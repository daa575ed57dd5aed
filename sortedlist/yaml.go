package sortedlist

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = (*List[int])(nil)
	_ yaml.Unmarshaler = (*List[int])(nil)
)

// MarshalYAML encodes the list as a sequence of its elements in sorted
// order.
func (l *List[T]) MarshalYAML() (any, error) {
	l.Sort()
	l.status = StatusOK

	return l.buffer[:l.count:l.count], nil
}

// UnmarshalYAML decodes a sequence and inserts every element. The list must
// have been built with New so that it has a behavior; existing elements are
// kept.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	if !l.behavior.valid() || l.alloc == nil {
		return fmt.Errorf("%w: list must be created with New before decoding", ErrInvalidArgument)
	}

	var values []T

	if err := node.Decode(&values); err != nil {
		return err
	}

	if free := l.Capacity() - l.count; len(values) > free {
		if !l.Resize(max(l.Capacity()*2, l.count+len(values))) {
			return fmt.Errorf("%w: cannot hold %d decoded elements", ErrAllocationFailure, len(values))
		}
	}

	for _, v := range values {
		l.Insert(v)
	}

	return nil
}
