package res

// Map applies f to the contained value, or propagates the error.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.v))
}

// AndThen chains a computation that itself may fail.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.v)
}

// MapErr applies f to the contained error, or propagates the value.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// Inspect calls f with the contained value if r is Ok, returning r
// unchanged either way.
func (r Result[T]) Inspect(f func(T)) Result[T] {
	if r.err == nil {
		f(r.v)
	}
	return r
}

// InspectErr calls f with the contained error if r is Err, returning r
// unchanged either way.
func (r Result[T]) InspectErr(f func(error)) Result[T] {
	if r.err != nil {
		f(r.err)
	}
	return r
}
