//go:build unit

package lock_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gin-voucher-shop/internal/infra/kv"
	"gin-voucher-shop/internal/infra/lock"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLockers(t *testing.T, n int) ([]*lock.Locker, *kv.MemoryStore, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	store := kv.NewMemoryStore(clk)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lockers := make([]*lock.Locker, n)
	for i := range lockers {
		lockers[i] = lock.NewLocker(store, logger)
	}
	return lockers, store, clk
}

func TestLocker_TryAcquire(t *testing.T) {
	ctx := context.Background()
	lockers, store, _ := newLockers(t, 2)

	h, err := lockers[0].TryAcquire(ctx, "order:42", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "order:42", h.ResourceKey)
	assert.NotEmpty(t, h.Token)

	stored, err := store.Get(ctx, "lock:order:42")
	require.NoError(t, err)
	assert.Equal(t, h.Token, stored)

	_, err = lockers[1].TryAcquire(ctx, "order:42", 10*time.Second)
	assert.ErrorIs(t, err, lock.ErrNotAcquired)
	assert.True(t, errs.Is(err, errs.ErrLockContention))

	_, err = lockers[0].TryAcquire(ctx, "order:42", 10*time.Second)
	assert.ErrorIs(t, err, lock.ErrNotAcquired, "the lock is not reentrant")

	_, err = lockers[1].TryAcquire(ctx, "order:43", 10*time.Second)
	assert.NoError(t, err, "other resources are independent")
}

func TestLocker_InvalidLease(t *testing.T) {
	lockers, _, _ := newLockers(t, 1)

	_, err := lockers[0].TryAcquire(context.Background(), "k", 0)
	assert.Error(t, err)
}

func TestLocker_Release(t *testing.T) {
	ctx := context.Background()
	lockers, _, _ := newLockers(t, 2)

	h, err := lockers[0].TryAcquire(ctx, "shop:1", time.Second)
	require.NoError(t, err)

	forged := &lock.Handle{ResourceKey: "shop:1", Token: "forged", Lease: time.Second}
	assert.ErrorIs(t, lockers[1].Release(ctx, forged), lock.ErrNotHeld)

	_, err = lockers[1].TryAcquire(ctx, "shop:1", time.Second)
	assert.ErrorIs(t, err, lock.ErrNotAcquired, "a foreign release must not free the lock")

	require.NoError(t, lockers[0].Release(ctx, h))
	_, err = lockers[1].TryAcquire(ctx, "shop:1", time.Second)
	assert.NoError(t, err)

	assert.NoError(t, lockers[0].Release(ctx, nil))
}

func TestLocker_LeaseExpiry(t *testing.T) {
	ctx := context.Background()
	lockers, _, clk := newLockers(t, 2)

	stale, err := lockers[0].TryAcquire(ctx, "order:7", 10*time.Second)
	require.NoError(t, err)

	// holder stops responding
	clk.Add(9*time.Second + 999*time.Millisecond)
	_, err = lockers[1].TryAcquire(ctx, "order:7", 10*time.Second)
	assert.ErrorIs(t, err, lock.ErrNotAcquired, "never before the lease elapses")

	clk.Add(time.Millisecond)
	fresh, err := lockers[1].TryAcquire(ctx, "order:7", 10*time.Second)
	require.NoError(t, err, "acquirable once the lease elapses")

	assert.ErrorIs(t, lockers[0].Release(ctx, stale), lock.ErrNotHeld,
		"late release by the old holder must not delete the new holder's lock")
	assert.NoError(t, lockers[1].Release(ctx, fresh))
}

func TestLocker_ReleaseQuietlyWithCancelledContext(t *testing.T) {
	lockers, _, _ := newLockers(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	h, err := lockers[0].TryAcquire(ctx, "order:9", time.Minute)
	require.NoError(t, err)
	cancel()

	lockers[0].ReleaseQuietly(ctx, h)

	_, err = lockers[1].TryAcquire(context.Background(), "order:9", time.Minute)
	assert.NoError(t, err)
}

func TestLocker_MutualExclusion(t *testing.T) {
	ctx := context.Background()
	lockers, _, _ := newLockers(t, 8)

	var holders, winners atomic.Int32
	var wg sync.WaitGroup
	for _, l := range lockers {
		for range 25 {
			wg.Add(1)
			go func(l *lock.Locker) {
				defer wg.Done()
				h, err := l.TryAcquire(ctx, "hot", time.Minute)
				if err != nil {
					return
				}
				if holders.Add(1) != 1 {
					t.Error("two holders at the same time")
				}
				winners.Add(1)
				holders.Add(-1)
				assert.NoError(t, l.Release(ctx, h))
			}(l)
		}
	}
	wg.Wait()

	assert.GreaterOrEqual(t, winners.Load(), int32(1))
}
