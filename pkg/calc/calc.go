// Package calc evaluates arithmetic, comparison, and boolean expressions
// over a variable environment, backed by [github.com/expr-lang/expr]
// rather than a hand-rolled parser.
package calc

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Eval compiles and runs expr against env, returning whatever value the
// expression produces (a number, string, or bool depending on the
// expression). No custom functions are registered; callers get exactly
// the arithmetic, comparison, and boolean operators expr exposes by
// default.
func Eval(expression string, env map[string]any) (any, error) {
	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("calc: compiling %q: %w", expression, err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("calc: evaluating %q: %w", expression, err)
	}

	return out, nil
}

// EvalAs is [Eval] with the result asserted to type T, returning an error
// instead of panicking if the expression produced something else.
func EvalAs[T any](expression string, env map[string]any) (T, error) {
	var zero T

	out, err := Eval(expression, env)
	if err != nil {
		return zero, err
	}

	v, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("calc: %q evaluated to %T, not %T", expression, out, zero)
	}

	return v, nil
}
