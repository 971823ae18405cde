package flagcount_test

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/goutil/pkg/flagcount"
)

func TestCounterAddAndLoad(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := flagcount.NewOn(fs, "cache.misses", "number of cache misses")

	assert.Equal(t, int64(0), c.Load())
	assert.Equal(t, int64(3), c.Add(3))
	assert.Equal(t, "3", c.String())
}

func TestCounterSetFromFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := flagcount.NewOn(fs, "seeded", "a seeded counter")

	require.NoError(t, fs.Parse([]string{"-seeded=42"}))
	assert.Equal(t, int64(42), c.Load())
}

func TestGroupSnapshot(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	g := flagcount.NewGroupOn(fs, "cache")

	g.Counter("hits", "").Add(10)
	g.Counter("misses", "").Add(2)

	snap := g.Snapshot()
	assert.Equal(t, int64(10), snap["hits"])
	assert.Equal(t, int64(2), snap["misses"])
}

func TestGroupCounterIsStable(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	g := flagcount.NewGroupOn(fs, "cache")

	a := g.Counter("hits", "")
	b := g.Counter("hits", "")
	assert.Same(t, a, b)
}
