package sortedlist

import "errors"

var (
	// ErrAllocationFailure is returned when an Allocator cannot provide storage.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrInvalidArgument is returned for a bad capacity, a missing compare
	// function or a missing optional behavior that an operation needs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for an index outside [0, count).
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("collection is empty")

	// ErrNotFound is returned when a search misses.
	ErrNotFound = errors.New("not found")
)

// Status records the outcome of the last operation performed on a List.
// Operations without an error return (Insert, RemoveAt, Min, ...) report
// failure through a bool and leave the reason here.
type Status int

const (
	StatusOK Status = iota
	StatusAllocationFailure
	StatusEmpty
	StatusNotFound
	StatusInvalidArgument
	StatusOutOfRange
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusAllocationFailure:
		return "ALLOCATION_FAILURE"
	case StatusEmpty:
		return "EMPTY"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusOutOfRange:
		return "OUT_OF_RANGE"
	default:
		return "UNKNOWN"
	}
}

// Err returns the sentinel error matching the status, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusAllocationFailure:
		return ErrAllocationFailure
	case StatusEmpty:
		return ErrEmpty
	case StatusNotFound:
		return ErrNotFound
	case StatusInvalidArgument:
		return ErrInvalidArgument
	case StatusOutOfRange:
		return ErrOutOfRange
	default:
		return ErrInvalidArgument
	}
}
