//go:build debug

// Package debug includes debugging helpers: trace logging and internal
// assertions, compiled in only under the debug build tag.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/timandy/routine"

	"github.com/flier/goutil/internal/xflag"
)

// Enabled is true when the module is built with the debug tag.
const Enabled = true

var (
	logPattern = xflag.Func("filter", "regexp to filter debug logs by", regexp.Compile)
	nocapture  = flag.Bool("nocapture", false, "disables capturing debug logs as test logs")
)

// Log prints a trace line to stderr (or, inside a test that called
// [WithTesting], to the test log).
//
// context is an optional fmt.Printf format-plus-args pair printed before
// operation, for tagging a set of related operations with identifying
// state.
func Log(context []any, operation string, format string, args ...any) {
	// Find the frame that called into the logging helpers.
	skip := 1
again:
	pc, file, line, _ := runtime.Caller(skip)

	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	name = name[strings.LastIndex(name, ".")+1:]
	if strings.HasPrefix(name, "log") || strings.Contains(name, "Log") {
		skip++
		goto again
	}

	pkg := fn.Name()
	pkg = strings.TrimPrefix(pkg, "github.com/flier/")
	pkg = strings.TrimPrefix(pkg, "goutil/pkg")
	pkg = pkg[:strings.Index(pkg, ".")]

	file = filepath.Base(file)

	buf := new(strings.Builder)

	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, file, line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if *logPattern != nil && !(*logPattern).MatchString(buf.String()) {
		return
	}

	t := tls.Get()
	if !*nocapture && t != nil {
		t.Log(buf.String())
		return
	}

	_, _ = buf.Write([]byte{'\n'})
	_, _ = os.Stderr.WriteString(buf.String())
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false, but only in debug mode. It guards
// impossible internal states, not caller errors; the panic message
// includes a stack trace.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		msg := fmt.Sprintf("goutil: internal assertion failed: "+format, args...)
		panic(msg + "\n" + Stack(2))
	}
}
