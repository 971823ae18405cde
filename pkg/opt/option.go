// Package opt provides Option[T], a value that is either present (Some)
// or absent (None), without resorting to pointers or sentinel values.
package opt

import "fmt"

// Option holds either a value of type T or nothing. The zero Option is
// None.
type Option[T any] struct {
	v    T
	some bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] { return Option[T]{v: value, some: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// FromPtr converts a possibly-nil pointer into an Option, dereferencing
// it when non-nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the contained value and whether it is present, in the
// comma-ok style of a map lookup.
func (o Option[T]) Get() (T, bool) { return o.v, o.some }

// Expect returns the contained value, panicking with msg if o is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.v
}

// Unwrap returns the contained value, panicking if o is None.
func (o Option[T]) Unwrap() T {
	return o.Expect("called `Option.Unwrap()` on a `None` value")
}

// UnwrapOr returns the contained value, or def if o is None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.v
}

// UnwrapOrElse returns the contained value, or f() if o is None.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.v
}

// UnwrapOrZero returns the contained value, or T's zero value if o is
// None.
func (o Option[T]) UnwrapOrZero() (v T) {
	if o.some {
		v = o.v
	}
	return
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}
