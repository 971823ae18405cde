// Package future provides a write-once, read-many deferred value: a
// computation started once and whose result is memoized for every
// subsequent reader.
package future

import (
	"context"
	"sync"

	"github.com/flier/goutil/pkg/opt"
)

// Future is a value of type T that is computed once, on its own
// goroutine, and memoized for all later [Future.Get] calls.
//
// The zero Future is not useful; use [New].
type Future[T any] struct {
	done chan struct{}

	mu    sync.Mutex
	value T
	err   error
	ready bool
}

// New starts fn on its own goroutine and returns a Future that will hold
// its result.
func New[T any](fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		ctx := context.Background()
		v, err := fn(ctx)

		f.mu.Lock()
		f.value, f.err, f.ready = v, err, true
		f.mu.Unlock()

		close(f.done)
	}()

	return f
}

// Get blocks until the Future's value is ready or ctx is done, whichever
// comes first. Once ready, Get always returns the same memoized result
// without re-running fn.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Peek returns Some(value) if fn has finished successfully, without
// blocking. It returns None while fn is still running and also when fn
// finished with an error. It never starts or waits for fn.
func (f *Future[T]) Peek() opt.Option[T] {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.err != nil {
			return opt.None[T]()
		}
		return opt.Some(f.value)
	default:
		return opt.None[T]()
	}
}
