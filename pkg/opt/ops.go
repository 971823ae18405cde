package opt

import (
	"github.com/flier/goutil/pkg/res"
	"github.com/flier/goutil/pkg/tuple"
)

// Map applies f to the contained value, or propagates None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// MapOr applies f to the contained value, or returns def if o is None.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def
}

// AndThen chains a computation that itself may come up empty.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Filter keeps the contained value only if f accepts it.
func (o Option[T]) Filter(f func(T) bool) Option[T] {
	if o.some && f(o.v) {
		return o
	}
	return None[T]()
}

// Or returns o if it holds a value, otherwise alt.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt
}

// OkOr converts o into a [res.Result], mapping Some(v) to Ok(v) and None
// to Err(err).
func (o Option[T]) OkOr(err error) res.Result[T] {
	if o.some {
		return res.Ok(o.v)
	}
	return res.Err[T](err)
}

// Ok converts a [res.Result] into an Option, discarding any error.
func Ok[T any](r res.Result[T]) Option[T] {
	if r.IsOk() {
		return Some(r.Unwrap())
	}
	return None[T]()
}

// Zip pairs two Options: Some only when both are.
func Zip[T, U any](x Option[T], y Option[U]) Option[tuple.Tuple2[T, U]] {
	xv, xok := x.Get()
	yv, yok := y.Get()
	if xok && yok {
		return Some(tuple.New2(xv, yv))
	}
	return None[tuple.Tuple2[T, U]]()
}

// Unzip splits an Option of a pair into a pair of Options.
func Unzip[T, U any](o Option[tuple.Tuple2[T, U]]) (Option[T], Option[U]) {
	if p, ok := o.Get(); ok {
		a, b := p.Unpack()
		return Some(a), Some(b)
	}
	return None[T](), None[U]()
}
