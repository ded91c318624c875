//go:build unit

package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_NoWaitOnHeldKey(t *testing.T) {
	m := lock.NewKeyedMutex(lock.Options{WaitTimeout: time.Second})
	ctx := context.Background()

	h, err := m.Acquire(ctx, "spot-1", lock.Block)
	require.NoError(t, err)

	_, err = m.Acquire(ctx, "spot-1", lock.NoWait)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrResourceLocked))

	h.Release()

	h2, err := m.Acquire(ctx, "spot-1", lock.NoWait)
	require.NoError(t, err)
	h2.Release()
}

func TestKeyedMutex_BlockTimesOut(t *testing.T) {
	m := lock.NewKeyedMutex(lock.Options{WaitTimeout: 30 * time.Millisecond})
	ctx := context.Background()

	h, err := m.Acquire(ctx, "spot-1", lock.Block)
	require.NoError(t, err)
	defer h.Release()

	start := time.Now()
	_, err = m.Acquire(ctx, "spot-1", lock.Block)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrLockTimeout))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestKeyedMutex_BlockWaitsForRelease(t *testing.T) {
	m := lock.NewKeyedMutex(lock.Options{WaitTimeout: time.Second})
	ctx := context.Background()

	h, err := m.Acquire(ctx, "spot-1", lock.Block)
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		h.Release()
	}()

	h2, err := m.Acquire(ctx, "spot-1", lock.Block)
	require.NoError(t, err)
	h2.Release()
}

func TestKeyedMutex_ContextCancel(t *testing.T) {
	m := lock.NewKeyedMutex(lock.Options{WaitTimeout: time.Minute})

	h, err := m.Acquire(context.Background(), "spot-1", lock.Block)
	require.NoError(t, err)
	defer h.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Acquire(ctx, "spot-1", lock.Block)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrLockTimeout))
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	m := lock.NewKeyedMutex(lock.Options{WaitTimeout: time.Second})
	ctx := context.Background()

	h1, err := m.Acquire(ctx, "spot-1", lock.NoWait)
	require.NoError(t, err)
	defer h1.Release()

	h2, err := m.Acquire(ctx, "spot-2", lock.NoWait)
	require.NoError(t, err)
	h2.Release()
}

func TestKeyedMutex_ReleaseIsIdempotentAndCleansUp(t *testing.T) {
	m := lock.NewKeyedMutex(lock.Options{})
	h, err := m.Acquire(context.Background(), "spot-1", lock.Block)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	h.Release()
	h.Release()
	assert.Equal(t, 0, m.Len())
}

func TestKeyedMutex_MutualExclusion(t *testing.T) {
	m := lock.NewKeyedMutex(lock.Options{WaitTimeout: 5 * time.Second})
	const workers = 50

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := m.Acquire(context.Background(), "spot-1", lock.Block)
			if !assert.NoError(t, err) {
				return
			}
			defer h.Release()

			n := inside.Add(1)
			for {
				cur := maxInside.Load()
				if n <= cur || maxInside.CompareAndSwap(cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Equal(t, 0, m.Len())
}
