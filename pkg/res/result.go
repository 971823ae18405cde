// Package res provides Result[T], the outcome of a fallible operation:
// either a value (Ok) or an error (Err). It is a thin, composable layer
// over the ordinary (T, error) convention, not a replacement for it —
// [Wrap] and [Result.Get] convert in both directions.
package res

import "fmt"

// Result holds either a value of type T or a non-nil error, never both.
// The zero Result is Ok with T's zero value.
type Result[T any] struct {
	v   T
	err error
}

// Ok returns a Result holding value.
func Ok[T any](value T) Result[T] { return Result[T]{v: value} }

// Err returns a Result holding err. err must be non-nil; Err with a nil
// error is indistinguishable from Ok of a zero value.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// Wrap converts an ordinary (value, error) return into a Result.
func Wrap[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Get converts r back into the ordinary (value, error) form.
func (r Result[T]) Get() (T, error) { return r.v, r.err }

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Expect returns the contained value, panicking with msg and the error
// if r is Err.
func (r Result[T]) Expect(msg string) T {
	if r.err != nil {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.v
}

// Unwrap returns the contained value, panicking if r is Err.
func (r Result[T]) Unwrap() T {
	return r.Expect("called `Result.Unwrap()` on an `Err` value")
}

// UnwrapOr returns the contained value, or def if r is Err.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.v
}

// UnwrapErr returns the contained error, panicking if r is Ok.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		panic(fmt.Sprintf("called `Result.UnwrapErr()` on an `Ok` value: %v", r.v))
	}
	return r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.v)
}
