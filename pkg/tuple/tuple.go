// Package tuple provides small fixed-arity heterogeneous sequences, for
// the places a named struct would be ceremony: zipping two options,
// returning a pair from a closure, keying a map by a composite.
package tuple

import "fmt"

// Tuple2 is an ordered pair.
type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// New2 constructs a Tuple2.
func New2[T0, T1 any](v0 T0, v1 T1) Tuple2[T0, T1] {
	return Tuple2[T0, T1]{V0: v0, V1: v1}
}

// Unpack returns the pair's elements in order.
func (t Tuple2[T0, T1]) Unpack() (T0, T1) { return t.V0, t.V1 }

// Swap returns the pair with its elements exchanged.
func (t Tuple2[T0, T1]) Swap() Tuple2[T1, T0] { return Tuple2[T1, T0]{V0: t.V1, V1: t.V0} }

func (t Tuple2[T0, T1]) String() string { return fmt.Sprintf("(%v, %v)", t.V0, t.V1) }

// Tuple3 is an ordered triple.
type Tuple3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

// New3 constructs a Tuple3.
func New3[T0, T1, T2 any](v0 T0, v1 T1, v2 T2) Tuple3[T0, T1, T2] {
	return Tuple3[T0, T1, T2]{V0: v0, V1: v1, V2: v2}
}

// Unpack returns the triple's elements in order.
func (t Tuple3[T0, T1, T2]) Unpack() (T0, T1, T2) { return t.V0, t.V1, t.V2 }

func (t Tuple3[T0, T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V0, t.V1, t.V2)
}
