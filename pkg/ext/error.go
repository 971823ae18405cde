package ext

import (
	"fmt"

	"github.com/flier/goutil/pkg/xerrors"
)

// Kind identifies which of the five caller-error conditions an [Error]
// represents.
type Kind int

const (
	// InvalidKey means a Key's provenance does not admit it against the
	// Container it was used with.
	InvalidKey Kind = iota
	// NullValue means a required value was nil.
	NullValue
	// TypeMismatch means a value's runtime type is not assignable to its
	// Key's type witness.
	TypeMismatch
	// DerivationDepthExceeded means Derive was called on a level-7
	// Container.
	DerivationDepthExceeded
	// KeyBudgetExceeded means a family has already minted 65,535 keys, so
	// the request that would be its 65,536th is rejected.
	KeyBudgetExceeded
)

func (k Kind) String() string {
	switch k {
	case InvalidKey:
		return "InvalidKey"
	case NullValue:
		return "NullValue"
	case TypeMismatch:
		return "TypeMismatch"
	case DerivationDepthExceeded:
		return "DerivationDepthExceeded"
	case KeyBudgetExceeded:
		return "KeyBudgetExceeded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error reports one of the five caller-error conditions this package can
// raise. All of ext's public operations treat these as programmer
// errors: they are surfaced immediately via panic, with no retry or
// recovery attempted internally. A caller that wants to handle one
// inline can recover and type-assert (or use
// [github.com/flier/goutil/pkg/xerrors.AsA]), the same way one might
// recover a failed type assertion elsewhere.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return "ext: " + e.Msg }

// AsError recovers r (the value returned by a deferred recover() after a
// panicking ext call) as an *Error, using
// [github.com/flier/goutil/pkg/xerrors.AsA] under the hood. A caller that
// wants to treat one of these five conditions as recoverable — a plugin
// host validating third-party extension code, say — can use this instead
// of a bare type assertion on recover's result.
func AsError(r any) (*Error, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	return xerrors.AsA[*Error](err)
}

func invalidKeyf(format string, args ...any) error {
	return &Error{Kind: InvalidKey, Msg: fmt.Sprintf(format, args...)}
}

func nullValuef(format string, args ...any) error {
	return &Error{Kind: NullValue, Msg: fmt.Sprintf(format, args...)}
}

func typeMismatchf(format string, args ...any) error {
	return &Error{Kind: TypeMismatch, Msg: fmt.Sprintf(format, args...)}
}

func derivationDepthExceededf(format string, args ...any) error {
	return &Error{Kind: DerivationDepthExceeded, Msg: fmt.Sprintf(format, args...)}
}

func keyBudgetExceededf(format string, args ...any) error {
	return &Error{Kind: KeyBudgetExceeded, Msg: fmt.Sprintf(format, args...)}
}
