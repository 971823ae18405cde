// Package xflag provides typed helpers over the standard flag package.
package xflag

import "flag"

// Func registers a flag whose string value is parsed by fn, allocating
// its own storage for the parsed result so callers don't need an init
// func. The returned pointer holds fn's result once the flag is parsed,
// and T's zero value before then.
func Func[T any](name, usage string, fn func(string) (T, error)) *T {
	v := new(T)
	flag.Func(name, usage, func(s string) (err error) {
		*v, err = fn(s)
		return err
	})
	return v
}
