// Package flagcount provides named atomic counters registered as CLI
// flags, for ad-hoc runtime diagnostics ("how many cache misses has this
// process seen") inspectable via -help or read back programmatically.
package flagcount

import (
	"flag"
	"fmt"
	"sync/atomic"
)

// Counter is a named int64 counter that also implements [flag.Value], so
// it can be set from the command line (e.g. -cache.misses=10 to seed it)
// and reported by -help.
type Counter struct {
	name string
	v    atomic.Int64
}

// New registers a Counter named name with the default [flag.CommandLine]
// set and returns it.
func New(name, usage string) *Counter {
	return NewOn(flag.CommandLine, name, usage)
}

// NewOn is like [New], but registers the Counter with an explicit
// [flag.FlagSet] instead of the global [flag.CommandLine] — useful for
// tests and for processes that manage their own flag sets.
func NewOn(fs *flag.FlagSet, name, usage string) *Counter {
	c := &Counter{name: name}
	fs.Var(c, name, usage)
	return c
}

// Add adds delta to the counter and returns the new value.
func (c *Counter) Add(delta int64) int64 { return c.v.Add(delta) }

// Load returns the counter's current value.
func (c *Counter) Load() int64 { return c.v.Load() }

// String implements [flag.Value].
func (c *Counter) String() string {
	if c == nil {
		return "0"
	}
	return fmt.Sprintf("%d", c.v.Load())
}

// Set implements [flag.Value] by overwriting the counter's value.
func (c *Counter) Set(s string) error {
	var n int64
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return fmt.Errorf("flagcount: invalid value %q for counter %q: %w", s, c.name, err)
	}
	c.v.Store(n)
	return nil
}

// Group is a related family of counters sharing a name prefix. Each
// counter is registered as its own flag (prefix.name); there is no single
// flag for the whole group. [Group.Snapshot] reports all of them together.
type Group struct {
	fs       *flag.FlagSet
	prefix   string
	counters map[string]*Counter
}

// NewGroup creates a Group whose counters are all registered under
// prefix+"." as their flag name prefix, on the global [flag.CommandLine].
func NewGroup(prefix string) *Group {
	return NewGroupOn(flag.CommandLine, prefix)
}

// NewGroupOn is like [NewGroup], but registers counters on an explicit
// [flag.FlagSet].
func NewGroupOn(fs *flag.FlagSet, prefix string) *Group {
	return &Group{fs: fs, prefix: prefix, counters: map[string]*Counter{}}
}

// Counter returns the named counter within the group, registering it as
// a new flag (prefix.name) the first time it's requested.
func (g *Group) Counter(name, usage string) *Counter {
	if c, ok := g.counters[name]; ok {
		return c
	}
	c := NewOn(g.fs, g.prefix+"."+name, usage)
	g.counters[name] = c
	return c
}

// Snapshot returns the current value of every counter in the group,
// keyed by its unqualified name.
func (g *Group) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(g.counters))
	for name, c := range g.counters {
		out[name] = c.Load()
	}
	return out
}
