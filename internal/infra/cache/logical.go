package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gin-voucher-shop/internal/infra/lock"
	"gin-voucher-shop/internal/pkg/errs"
)

// envelope is stored without a physical TTL; readers compare ExpireAt
// against their own clock.
type envelope struct {
	Data     json.RawMessage `json:"data"`
	ExpireAt time.Time       `json:"expireAt"`
}

func (c *Client) wrap(v any, ttl time.Duration) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "cache: encode payload"), errs.ErrSerialization)
	}
	b, err := json.Marshal(envelope{Data: data, ExpireAt: c.clock.Now().Add(ttl)})
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "cache: encode envelope"), errs.ErrSerialization)
	}
	return string(b), nil
}

func unwrap[T any](raw string) (*T, time.Time, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, time.Time{}, errs.Mark(errs.Wrap(err, "cache: decode envelope"), errs.ErrSerialization)
	}
	v, err := decode[T](env.Data)
	if err != nil {
		return nil, time.Time{}, err
	}
	return v, env.ExpireAt, nil
}

// SetWithLogicalExpire pre-warms key. Logical-expiry reads never load a
// key that was not written here first.
func SetWithLogicalExpire[T any](ctx context.Context, c *Client, key string, value *T, ttl time.Duration) error {
	s, err := c.wrap(value, ttl)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, key, s, 0); err != nil {
		return errs.Wrapf(err, "cache: pre-warm %s", key)
	}
	return nil
}

// LogicalExpire never calls the loader on the caller's goroutine. An
// expired entry is returned as is and at most one refresh per key is
// queued on the rebuild pool.
func LogicalExpire[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) (*T, error) {
	strategy := string(StrategyLogical)

	raw, state, err := c.lookup(ctx, key)
	switch state {
	case stateMiss, stateNull:
		c.recorder.CacheResult(strategy, string(state))
		return nil, notFound()
	case stateCancelled:
		return nil, cancelled(key, err)
	case stateUnavailable:
		c.recorder.CacheResult(strategy, string(state))
		return nil, errs.Mark(errs.Wrapf(err, "cache: read %s", key), errs.ErrTransientStore)
	}

	v, expireAt, err := unwrap[T](raw)
	if err != nil {
		c.corrupt(ctx, key, err)
		c.recorder.CacheResult(strategy, string(stateCorrupt))
		scheduleRebuild(ctx, c, key, ttl, load)
		return nil, notFound()
	}

	if c.clock.Now().Before(expireAt) {
		c.recorder.CacheResult(strategy, string(stateHit))
		return v, nil
	}

	c.recorder.CacheResult(strategy, string(stateStale))
	scheduleRebuild(ctx, c, key, ttl, load)
	return v, nil
}

func scheduleRebuild[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) {
	strategy := string(StrategyLogical)

	lease := c.cfg.rebuildLease()
	h, err := c.locker.TryAcquire(ctx, key, lease)
	if err != nil {
		if !errs.Is(err, lock.ErrNotAcquired) {
			c.logger.WarnContext(ctx, "rebuild lock unavailable",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		c.recorder.CacheRebuild(strategy, "in_flight")
		return
	}

	acquiredAt := c.clock.Now()
	err = c.pool.Submit(func(poolCtx context.Context) {
		// the lock may have lapsed while the task sat in the queue; a
		// successor can own it by now, so neither rebuild nor release
		remaining := lease - c.clock.Now().Sub(acquiredAt)
		if remaining <= 0 {
			c.recorder.CacheRebuild(strategy, "lease_expired")
			c.logger.WarnContext(poolCtx, "cache rebuild dropped, lock lease expired in queue",
				slog.String("key", key),
				slog.Duration("lease", lease))
			return
		}

		ctx, cancel := context.WithTimeout(poolCtx, min(c.cfg.RebuildTimeout, remaining))
		defer cancel()
		defer c.locker.ReleaseQuietly(ctx, h)

		refresh(ctx, c, key, ttl, load)
	})
	if err != nil {
		c.locker.ReleaseQuietly(ctx, h)
		c.recorder.CacheRebuild(strategy, "rejected")
		c.logger.WarnContext(ctx, "cache rebuild not scheduled",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}
	c.recorder.CacheRebuild(strategy, "scheduled")
}

func refresh[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) {
	strategy := string(StrategyLogical)

	// a refresh that finished just before we took the lock already did the work
	if raw, state, _ := c.lookup(ctx, key); state == stateHit {
		if _, expireAt, err := unwrap[T](raw); err == nil && c.clock.Now().Before(expireAt) {
			c.recorder.CacheRebuild(strategy, "already_fresh")
			return
		}
	}

	v, err := load(ctx)
	if err != nil {
		c.recorder.CacheRebuild(strategy, "failed")
		c.logger.ErrorContext(ctx, "cache rebuild failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}
	if v == nil {
		c.write(ctx, key, NullMarker, c.cfg.NullTTL)
		c.recorder.CacheRebuild(strategy, "null")
		return
	}

	s, err := c.wrap(v, ttl)
	if err != nil {
		c.recorder.CacheRebuild(strategy, "failed")
		c.logger.ErrorContext(ctx, "cache rebuild encode failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}
	c.write(ctx, key, s, 0)
	c.recorder.CacheRebuild(strategy, "rebuilt")
}
