// Package cache is a read-through cache over the shared KV store with
// penetration protection (null caching) and two breakdown protections:
// a mutex rebuild that blocks concurrent readers, and a logical expiry
// that serves stale data while one background task refreshes it.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gin-voucher-shop/internal/infra/kv"
	"gin-voucher-shop/internal/infra/lock"
	"gin-voucher-shop/internal/infra/workerpool"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

type Strategy string

const (
	StrategyPassThrough Strategy = "passthrough"
	StrategyMutex       Strategy = "mutex"
	StrategyLogical     Strategy = "logical"
)

// NullMarker is cached for keys the backing store does not have.
const NullMarker = ""

var (
	ErrNotFound     = errs.New("cache: entity not found")
	ErrLockTimeout  = errs.New("cache: timed out waiting for rebuild lock")
	ErrBackingStore = errs.New("cache: backing store load failed")
	ErrUnknownMode  = errs.New("cache: unknown strategy")
)

// Loader fetches the entity from the backing store. (nil, nil) means the
// entity does not exist.
type Loader[T any] func(ctx context.Context) (*T, error)

type Locker interface {
	TryAcquire(ctx context.Context, resourceKey string, lease time.Duration) (*lock.Handle, error)
	ReleaseQuietly(ctx context.Context, h *lock.Handle)
}

type Submitter interface {
	Submit(task workerpool.Task) error
}

type Recorder interface {
	CacheResult(strategy, result string)
	CacheRebuild(strategy, outcome string)
}

type Config struct {
	NullTTL         time.Duration
	MutexLease      time.Duration
	MutexBackoff    time.Duration
	MutexMaxRetries int
	RebuildTimeout  time.Duration
	// RebuildLease is the lock lease of a queued logical rebuild. Zero falls
	// back to MutexLease.
	RebuildLease time.Duration
}

// RebuildLease sizes the lease of a logical rebuild so it covers the wait
// behind a full queue plus the rebuild itself: every batch of workers ahead
// of the task may take up to rebuildTimeout.
func RebuildLease(rebuildTimeout time.Duration, workers, queueSize int) time.Duration {
	workers = max(workers, 1)
	batches := (max(queueSize, 0) + workers - 1) / workers
	return time.Duration(batches+1) * rebuildTimeout
}

func (cfg Config) rebuildLease() time.Duration {
	if cfg.RebuildLease > 0 {
		return cfg.RebuildLease
	}
	return cfg.MutexLease
}

type Client struct {
	store    kv.Store
	locker   Locker
	pool     Submitter
	clock    clock.Clock
	cfg      Config
	group    singleflight.Group
	logger   *slog.Logger
	recorder Recorder
}

func NewClient(
	store kv.Store,
	locker Locker,
	pool Submitter,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
	recorder Recorder,
) *Client {
	return &Client{
		store:    store,
		locker:   locker,
		pool:     pool,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
	}
}

// Options selects the strategy used by Get. TTL is the physical TTL for
// pass-through and mutex, and the logical TTL for logical expiry.
type Options struct {
	Strategy Strategy
	TTL      time.Duration
}

func Get[T any](ctx context.Context, c *Client, key string, load Loader[T], opts Options) (*T, error) {
	switch opts.Strategy {
	case StrategyPassThrough:
		return PassThrough(ctx, c, key, opts.TTL, load)
	case StrategyMutex:
		return Mutex(ctx, c, key, opts.TTL, load)
	case StrategyLogical:
		return LogicalExpire(ctx, c, key, opts.TTL, load)
	default:
		return nil, errs.Wrapf(ErrUnknownMode, "%q", opts.Strategy)
	}
}

// Invalidate drops key so the next read goes to the backing store.
func (c *Client) Invalidate(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil {
		return errs.Wrapf(err, "cache: invalidate %s", key)
	}
	return nil
}

type lookupState string

const (
	stateHit         lookupState = "hit"
	stateNull        lookupState = "null_hit"
	stateMiss        lookupState = "miss"
	stateCorrupt     lookupState = "corrupt"
	stateUnavailable lookupState = "error"
	stateStale       lookupState = "stale"
	stateCancelled   lookupState = "cancelled"
)

// lookup reports stateCancelled when the caller's own context is done, and
// stateUnavailable only for store failures.
func (c *Client) lookup(ctx context.Context, key string) (string, lookupState, error) {
	if err := ctx.Err(); err != nil {
		return "", stateCancelled, err
	}
	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil && raw == NullMarker:
		return "", stateNull, nil
	case err == nil:
		return raw, stateHit, nil
	case kv.IsNotFound(err):
		return "", stateMiss, nil
	case ctx.Err() != nil:
		return "", stateCancelled, ctx.Err()
	default:
		c.logger.WarnContext(ctx, "cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return "", stateUnavailable, err
	}
}

func decode[T any](raw []byte) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "cache: decode payload"), errs.ErrSerialization)
	}
	return v, nil
}

func (c *Client) corrupt(ctx context.Context, key string, err error) {
	c.logger.WarnContext(ctx, "discarding corrupted cache entry",
		slog.String("key", key),
		slog.String("error", err.Error()))
}

// write is best effort; a failed write only costs a future miss.
func (c *Client) write(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.store.Set(ctx, key, value, ttl); err != nil {
		c.logger.WarnContext(ctx, "cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// fill loads from the backing store and caches the result. A nil slice
// means the entity does not exist and a NullMarker was written.
func fill[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) ([]byte, error) {
	v, err := load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "cache: load %s", key), ErrBackingStore)
	}
	if v == nil {
		c.write(ctx, key, NullMarker, c.cfg.NullTTL)
		return nil, nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "cache: encode %s", key), errs.ErrSerialization)
	}
	c.write(ctx, key, string(payload), ttl)
	return payload, nil
}

// recheck is run by whoever is about to call the loader. A flight that
// started after another one finished finds the key already populated.
func recheck[T any](ctx context.Context, c *Client, key string) ([]byte, bool) {
	raw, state, _ := c.lookup(ctx, key)
	switch state {
	case stateNull:
		return nil, true
	case stateHit:
		if _, err := decode[T]([]byte(raw)); err == nil {
			return []byte(raw), true
		}
	}
	return nil, false
}

func (c *Client) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.cfg.RebuildTimeout)
}

// canFallBack reports whether a failed lookup may be answered by a direct,
// lockless load. Only store outages qualify.
func canFallBack(err error) bool {
	return errs.Is(err, errs.ErrTransientStore)
}

func cancelled(key string, err error) error {
	return errs.Wrapf(err, "cache: read %s", key)
}

func notFound() error {
	return errs.Mark(ErrNotFound, errs.ErrNotFound)
}

func result[T any](payload []byte) (*T, error) {
	if payload == nil {
		return nil, notFound()
	}
	return decode[T](payload)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
