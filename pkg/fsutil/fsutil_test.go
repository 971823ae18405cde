package fsutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/goutil/pkg/datasrc/loaderr"
	"github.com/flier/goutil/pkg/fsutil"
	"github.com/flier/goutil/pkg/xerrors"
)

func TestReadCapped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hp": 10}`), 0o644))

	in, err := fsutil.ReadCapped(path, 1024)
	require.NoError(t, err)
	assert.Equal(t, `{"hp": 10}`, string(in.AsSliceLessSafe()))
}

func TestReadCappedTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.json")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0o644))

	_, err := fsutil.ReadCapped(path, 99)
	assert.True(t, errors.Is(err, fsutil.ErrTooLarge))

	le, ok := xerrors.AsA[*loaderr.Error](err)
	require.True(t, ok)
	assert.Equal(t, path, le.Path)
}

func TestReadCappedMissingFile(t *testing.T) {
	_, err := fsutil.ReadCapped(filepath.Join(t.TempDir(), "nope.json"), 10)
	assert.Error(t, err)
}
