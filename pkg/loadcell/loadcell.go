// Package loadcell provides a single-flight memoization cell: a value that
// is loaded at most once, shared with all concurrent callers, and reset on
// failure so the next caller can retry. Failed load attempts are retried
// with exponential backoff up to a fixed count before the error is reported.
package loadcell

import (
	"context"
	"sync"
	"time"
)

// LoadFunc produces the value held by a Cell
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Cell is a lazily-loaded, process-wide shared value.
// The zero value is not usable; create cells with New.
type Cell[T any] struct {
	load     LoadFunc[T]
	retries  int
	backoff  time.Duration
	maxDelay time.Duration

	mu       sync.Mutex
	loaded   bool
	value    T
	inflight chan struct{} // non-nil while a load is running
	loadErr  error
}

// Option configures a Cell
type Option func(*options)

type options struct {
	retries  int
	backoff  time.Duration
	maxDelay time.Duration
}

// WithRetries sets how many times a failed load is retried before giving up
func WithRetries(n int) Option {
	return func(o *options) { o.retries = n }
}

// WithBackoff sets the initial retry delay (doubled per attempt) and its cap
func WithBackoff(initial, max time.Duration) Option {
	return func(o *options) {
		o.backoff = initial
		o.maxDelay = max
	}
}

// New creates a cell around the given load function
func New[T any](load LoadFunc[T], opts ...Option) *Cell[T] {
	o := options{
		retries:  2,
		backoff:  200 * time.Millisecond,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cell[T]{
		load:     load,
		retries:  o.retries,
		backoff:  o.backoff,
		maxDelay: o.maxDelay,
	}
}

// Get returns the cached value, loading it if necessary. Concurrent callers
// during a load all wait for the same attempt. After a failed load the cell
// is left empty, so a subsequent Get starts a fresh attempt.
func (c *Cell[T]) Get(ctx context.Context) (T, error) {
	for {
		c.mu.Lock()
		if c.loaded {
			v := c.value
			c.mu.Unlock()
			return v, nil
		}

		if c.inflight != nil {
			// Another caller is loading; wait for it and re-check.
			wait := c.inflight
			c.mu.Unlock()
			select {
			case <-wait:
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			}
			continue
		}

		// This caller owns the load.
		done := make(chan struct{})
		c.inflight = done
		c.mu.Unlock()

		value, err := c.loadWithRetry(ctx)

		c.mu.Lock()
		c.inflight = nil
		if err == nil {
			c.loaded = true
			c.value = value
			c.loadErr = nil
		} else {
			c.loadErr = err
		}
		c.mu.Unlock()
		close(done)

		if err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
}

func (c *Cell[T]) loadWithRetry(ctx context.Context) (T, error) {
	var lastErr error
	delay := c.backoff

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			}
			delay *= 2
			if delay > c.maxDelay {
				delay = c.maxDelay
			}
		}

		value, err := c.load(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err
	}

	var zero T
	return zero, lastErr
}

// Reset drops the cached value so the next Get reloads it
func (c *Cell[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.loaded = false
	c.value = zero
	c.loadErr = nil
}

// Loaded reports whether a value is currently cached
func (c *Cell[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}
