package future_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/goutil/pkg/future"
)

func TestGetMemoizes(t *testing.T) {
	calls := 0
	f := future.New(func(context.Context) (int, error) {
		calls++
		return 42, nil
	})

	for i := 0; i < 3; i++ {
		v, err := f.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}

	assert.Equal(t, 1, calls)
}

func TestGetPropagatesCancellation(t *testing.T) {
	block := make(chan struct{})
	f := future.New(func(context.Context) (int, error) {
		<-block
		return 0, nil
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Get(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetReturnsError(t *testing.T) {
	wantErr := errors.New("boom")
	f := future.New(func(context.Context) (int, error) {
		return 0, wantErr
	})

	_, err := f.Get(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestPeek(t *testing.T) {
	block := make(chan struct{})
	f := future.New(func(context.Context) (int, error) {
		<-block
		return 7, nil
	})

	assert.True(t, f.Peek().IsNone())

	close(block)
	_, _ = f.Get(context.Background())

	v, ok := f.Peek().Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}
