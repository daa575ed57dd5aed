// Package compare provides utilities for comparing values.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparison function. It returns a negative number
// when a sorts before b, zero when they are equivalent and a positive
// number when a sorts after b. The function must define a strict weak
// ordering; it does not need to distinguish values that are equivalent.
type Func[T any] func(a, b T) int

// Ordered returns the natural ascending Func for any ordered type.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// FromLess builds a Func out of a strict less-than predicate.
// Two values are considered equivalent when neither is less than the other.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse returns a Func that orders values in the opposite direction of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Equivalent reports whether f considers a and b to be equivalent.
func (f Func[T]) Equivalent(a, b T) bool {
	return f(a, b) == 0
}
