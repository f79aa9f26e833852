package task

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"arcade/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_SubmitAndWait(t *testing.T) {
	pool := NewPool(2, 8, nil)
	defer pool.Shutdown(context.Background())

	var ran atomic.Bool
	future, err := pool.Submit(context.Background(), func(ctx context.Context) error {
		ran.Store(true)

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, future.Wait(context.Background()))
	assert.True(t, ran.Load())
}

func TestPool_FuturePropagatesError(t *testing.T) {
	pool := NewPool(1, 1, nil)
	defer pool.Shutdown(context.Background())

	sentinel := errors.New("boom")
	future, err := pool.Submit(context.Background(), func(ctx context.Context) error {
		return sentinel
	})
	require.NoError(t, err)

	assert.ErrorIs(t, future.Wait(context.Background()), sentinel)
}

func TestPool_QueueFull(t *testing.T) {
	pool := NewPool(1, 0, nil)
	defer pool.Shutdown(context.Background())

	release := make(chan struct{})
	started := make(chan struct{})
	_, err := pool.Submit(context.Background(), func(ctx context.Context) error {
		close(started)
		<-release

		return nil
	})
	require.NoError(t, err)
	<-started

	// Worker is busy and the queue has no capacity.
	_, err = pool.Submit(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	pool := NewPool(1, 1, nil)
	require.NoError(t, pool.Shutdown(context.Background()))

	_, err := pool.Submit(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPool_ShutdownWaitsForInflight(t *testing.T) {
	pool := NewPool(1, 1, nil)

	var finished atomic.Bool
	_, err := pool.Submit(context.Background(), func(ctx context.Context) error {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, pool.Shutdown(context.Background()))
	assert.True(t, finished.Load())
}

func TestPool_RecoversPanic(t *testing.T) {
	pool := NewPool(1, 1, nil)
	defer pool.Shutdown(context.Background())

	future, err := pool.Submit(context.Background(), func(ctx context.Context) error {
		panic("kaboom")
	})
	require.NoError(t, err)

	err = future.Wait(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestFuture_WaitHonoursContext(t *testing.T) {
	pool := NewPool(1, 1, nil)
	defer pool.Shutdown(context.Background())

	release := make(chan struct{})
	future, err := pool.Submit(context.Background(), func(ctx context.Context) error {
		<-release

		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, future.Wait(ctx))

	close(release)
}
