// Package loaderr carries a structured error for a single data-file
// failure: which file, which phase, and the underlying cause.
package loaderr

import "fmt"

// Op identifies which phase of loading a config data source failed.
type Op string

const (
	// OpWalk means the directory walk itself failed (permission, symlink
	// loop, and the like).
	OpWalk Op = "walk"
	// OpDecode means a file's contents could not be parsed as JSON/YAML.
	OpDecode Op = "decode"
	// OpMerge names the merge phase. datasrc.Load's merge cannot fail (a
	// scalar/map clash on one key is resolved by the later file winning),
	// so Load never reports this Op.
	OpMerge Op = "merge"
	// OpValidate means the merged document failed schema validation.
	OpValidate Op = "validate"
)

// Error reports a single data-file failure with enough context — the
// offending path and which phase failed — to diagnose a bad config
// without a stack trace.
type Error struct {
	Path string
	Op   Op
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("datasrc: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("datasrc: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an Error for the given path, phase, and cause.
func New(path string, op Op, err error) *Error {
	return &Error{Path: path, Op: op, Err: err}
}
