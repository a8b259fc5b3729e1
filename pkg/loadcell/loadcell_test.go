package loadcell

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_LoadsOnce(t *testing.T) {
	var calls int32
	cell := New(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	})

	for i := 0; i < 5; i++ {
		v, err := cell.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCell_ConcurrentCallersShareOneLoad(t *testing.T) {
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	cell := New(func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return 42, nil
	})

	const workers = 8
	var wg sync.WaitGroup
	results := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := cell.Get(context.Background())
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestCell_ResetOnFailureAllowsRetry(t *testing.T) {
	var calls int32
	cell := New(func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", errors.New("gateway unreachable")
		}
		return "loaded", nil
	}, WithRetries(0))

	_, err := cell.Get(context.Background())
	require.Error(t, err)
	assert.False(t, cell.Loaded())

	v, err := cell.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)
	assert.True(t, cell.Loaded())
}

func TestCell_RetriesWithBackoff(t *testing.T) {
	var calls int32
	cell := New(func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, WithRetries(2), WithBackoff(time.Millisecond, 5*time.Millisecond))

	v, err := cell.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestCell_ExplicitReset(t *testing.T) {
	var calls int32
	cell := New(func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	})

	first, err := cell.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	cell.Reset()

	second, err := cell.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, second)
}

func TestCell_ContextCancelledWhileWaiting(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	cell := New(func(ctx context.Context) (int, error) {
		close(started)
		<-release
		return 1, nil
	})

	go func() {
		_, _ = cell.Get(context.Background())
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cell.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
}
