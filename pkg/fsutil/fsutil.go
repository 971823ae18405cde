// Package fsutil provides size-capped, panic-free file reads built on
// [github.com/flier/goutil/pkg/untrust], so a corrupt or hostile data
// file can't exhaust memory or be indexed past its end during decode.
package fsutil

import (
	"errors"
	"io"
	"os"

	"github.com/flier/goutil/pkg/datasrc/loaderr"
	"github.com/flier/goutil/pkg/untrust"
)

// ErrTooLarge is returned (wrapped in a [loaderr.Error]) when a file
// exceeds the limit passed to [ReadCapped].
var ErrTooLarge = errors.New("fsutil: file exceeds size limit")

// ReadCapped opens path and reads at most limit+1 bytes from it. If the
// file is larger than limit, it returns a [loaderr.Error] wrapping
// [ErrTooLarge] instead of reading the rest of the file.
func ReadCapped(path string, limit int64) (untrust.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loaderr.New(path, loaderr.OpWalk, err)
	}
	defer f.Close() //nolint:errcheck

	lr := &io.LimitedReader{R: f, N: limit + 1}

	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, loaderr.New(path, loaderr.OpWalk, err)
	}

	if int64(len(b)) > limit {
		return nil, loaderr.New(path, loaderr.OpWalk, ErrTooLarge)
	}

	return untrust.Input(b), nil
}
