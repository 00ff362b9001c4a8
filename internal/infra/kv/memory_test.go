//go:build unit

package kv_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"gin-voucher-shop/internal/infra/kv"
	"gin-voucher-shop/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(baseTime)
	store := kv.NewMemoryStore(clk)

	_, err := store.Get(ctx, "cache:shop:1")
	assert.True(t, kv.IsNotFound(err))

	require.NoError(t, store.Set(ctx, "cache:shop:1", "", time.Minute))
	v, err := store.Get(ctx, "cache:shop:1")
	require.NoError(t, err)
	assert.Equal(t, "", v, "empty value is a hit, not a miss")

	clk.Add(time.Minute)
	_, err = store.Get(ctx, "cache:shop:1")
	assert.True(t, kv.IsNotFound(err), "entry expires exactly at its deadline")
}

func TestMemoryStore_SetWithoutTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(baseTime)
	store := kv.NewMemoryStore(clk)

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	clk.Add(365 * 24 * time.Hour)

	v, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	ttl, ok := store.TTL("k")
	assert.True(t, ok)
	assert.Equal(t, time.Duration(-1), ttl)
}

func TestMemoryStore_SetIfAbsent(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(baseTime)
	store := kv.NewMemoryStore(clk)

	ok, err := store.SetIfAbsent(ctx, "lock:a", "t1", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetIfAbsent(ctx, "lock:a", "t2", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	clk.Add(10 * time.Second)
	ok, err = store.SetIfAbsent(ctx, "lock:a", "t2", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired key can be taken again")
}

func TestMemoryStore_CompareAndDelete(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(clock.NewMockClock(baseTime))
	require.NoError(t, store.Set(ctx, "lock:a", "owner", time.Minute))

	deleted, err := store.CompareAndDelete(ctx, "lock:a", "intruder")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = store.CompareAndDelete(ctx, "lock:a", "owner")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.Get(ctx, "lock:a")
	assert.True(t, kv.IsNotFound(err))
}

func TestMemoryStore_IncrConcurrent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(clock.NewMockClock(baseTime))

	const n = 200
	seen := make(chan int64, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.Incr(ctx, "icr:order")
			assert.NoError(t, err)
			seen <- v
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]struct{}, n)
	for v := range seen {
		unique[v] = struct{}{}
	}
	assert.Len(t, unique, n)
}

func TestMemoryStore_IncrOnNonInteger(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(clock.NewMockClock(baseTime))
	require.NoError(t, store.Set(ctx, "k", "abc", 0))

	_, err := store.Incr(ctx, "k")
	assert.Error(t, err)
}

func TestMemoryStore_Expire(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(baseTime)
	store := kv.NewMemoryStore(clk)

	_, err := store.Incr(ctx, "icr:order:2025:03:01")
	require.NoError(t, err)
	require.NoError(t, store.Expire(ctx, "icr:order:2025:03:01", time.Hour))

	ttl, ok := store.TTL("icr:order:2025:03:01")
	require.True(t, ok)
	assert.Equal(t, time.Hour, ttl)

	clk.Add(time.Hour)
	_, ok = store.TTL("icr:order:2025:03:01")
	assert.False(t, ok)
}

func TestMemoryStore_IncrWithTTL(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(baseTime)
	store := kv.NewMemoryStore(clk)
	key := "icr:order:2025:03:01"

	n, err := store.IncrWithTTL(ctx, key, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	clk.Add(time.Hour)
	n, err = store.IncrWithTTL(ctx, key, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ttl, ok := store.TTL(key)
	require.True(t, ok)
	assert.Equal(t, time.Hour, ttl, "only the first increment sets the expiry")

	clk.Add(time.Hour)
	n, err = store.IncrWithTTL(ctx, key, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "counter restarts after expiry")
}

func TestMemoryStore_IncrWithoutTTLKeepsNoExpiry(t *testing.T) {
	store := kv.NewMemoryStore(clock.NewMockClock(baseTime))

	_, err := store.IncrWithTTL(context.Background(), "k", 0)
	require.NoError(t, err)

	ttl, ok := store.TTL("k")
	require.True(t, ok)
	assert.Equal(t, time.Duration(-1), ttl)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := kv.NewMemoryStore(clock.NewMockClock(baseTime))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
