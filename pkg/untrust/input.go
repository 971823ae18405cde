// Package untrust wraps bytes of unknown provenance — data files, wire
// payloads — so they are consumed through a bounds-checked cursor instead
// of raw slice indexing. Nothing in this package panics on short input;
// every read that can run off the end returns [ErrEndOfInput].
package untrust

import (
	"bytes"

	"github.com/flier/goutil/pkg/opt"
)

// Input is a byte payload of unknown provenance. Consume it through a
// [Reader] (see [ReadAll]) rather than indexing it directly.
type Input []byte

// Empty reports whether the input holds no bytes.
func (in Input) Empty() bool { return len(in) == 0 }

// Len returns the number of bytes in the input.
func (in Input) Len() int { return len(in) }

// AsSliceLessSafe exposes the raw bytes, for handing to decoders that
// were not written against the Input/Reader framework. The name is the
// warning: the caller takes back responsibility for bounds discipline.
func (in Input) AsSliceLessSafe() []byte { return in }

// Clone returns a copy of the input's bytes.
func (in Input) Clone() Input { return bytes.Clone(in) }

func (in Input) GoString() string { return "Input" }

// ReadAll runs read over input through a fresh [Reader] and checks that
// every byte was consumed, returning incomplete if any remain.
func ReadAll[T any](input Input, incomplete error, read func(r *Reader) (T, error)) (T, error) {
	r := NewReader(input)

	v, err := read(r)
	if err != nil {
		return v, err
	}
	if !r.AtEnd() {
		return v, incomplete
	}
	return v, nil
}

// ReadAllOptional is [ReadAll] for input that may be absent entirely:
// when input is None, read is called once with None so it can produce
// whatever an absent payload means for T.
func ReadAllOptional[T any](input opt.Option[Input], incomplete error, read func(r opt.Option[*Reader]) (T, error)) (T, error) {
	in, ok := input.Get()
	if !ok {
		return read(opt.None[*Reader]())
	}

	r := NewReader(in)

	v, err := read(opt.Some(r))
	if err != nil {
		return v, err
	}
	if !r.AtEnd() {
		return v, incomplete
	}
	return v, nil
}
