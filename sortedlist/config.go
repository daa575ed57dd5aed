package sortedlist

import "log/slog"

// Config holds everything needed to build a List. Capacity and Behavior are
// required; the rest default to the heap allocator, no callbacks, and the
// logger returned by logger.Get.
type Config[T any] struct {
	Capacity  int
	Behavior  *Behavior[T]
	Allocator Allocator[T]
	Callbacks *Callbacks
	Logger    *slog.Logger

	// Name labels the list in log output.
	Name string
}

// Option adjusts a Config before the List is built.
type Option[T any] func(*Config[T])

// WithAllocator sets the allocator.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(c *Config[T]) {
		c.Allocator = alloc
	}
}

// WithCallbacks sets the lifecycle callbacks.
func WithCallbacks[T any](callbacks *Callbacks) Option[T] {
	return func(c *Config[T]) {
		c.Callbacks = callbacks
	}
}

// WithLogger sets the logger used for growth and allocation diagnostics.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(c *Config[T]) {
		c.Logger = log
	}
}

// WithName labels the list in log output.
func WithName[T any](name string) Option[T] {
	return func(c *Config[T]) {
		c.Name = name
	}
}
