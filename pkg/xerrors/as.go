// Package xerrors holds small generic conveniences over the standard
// errors package.
package xerrors

import "errors"

// AsA unwraps err looking for an error of concrete type T, in the manner
// of [errors.As] but without the target-pointer ceremony.
func AsA[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	var zero T
	return zero, false
}

// IsA reports whether err or anything it wraps has concrete type T.
func IsA[T error](err error) bool {
	_, ok := AsA[T](err)
	return ok
}
