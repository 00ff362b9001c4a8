package cache

import (
	"context"
	"log/slog"
	"time"

	"gin-voucher-shop/internal/infra/lock"
	"gin-voucher-shop/internal/pkg/errs"
)

// Mutex rebuilds a missing key under the distributed lock "lock:"+key so
// that only one caller across all processes reaches the backing store.
// Callers that lose the race back off and re-read, up to
// MutexMaxRetries lock attempts, then fail with ErrLockTimeout.
func Mutex[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) (*T, error) {
	strategy := string(StrategyMutex)

	for attempt := 1; ; attempt++ {
		raw, state, lookupErr := c.lookup(ctx, key)
		switch state {
		case stateHit:
			v, err := decode[T]([]byte(raw))
			if err == nil {
				c.recorder.CacheResult(strategy, string(stateHit))
				return v, nil
			}
			c.corrupt(ctx, key, err)
			state = stateCorrupt
		case stateNull:
			c.recorder.CacheResult(strategy, string(stateNull))
			return nil, notFound()
		case stateCancelled:
			return nil, cancelled(key, lookupErr)
		case stateUnavailable:
			c.recorder.CacheResult(strategy, string(stateUnavailable))
			if !canFallBack(lookupErr) {
				return nil, errs.Wrapf(lookupErr, "cache: read %s", key)
			}
			// the lock lives in the same store; fall back to a local collapse
			payload, err := loadShared(ctx, c, key, ttl, load)
			if err != nil {
				return nil, err
			}
			return result[T](payload)
		}
		if attempt == 1 {
			c.recorder.CacheResult(strategy, string(state))
		}

		v, err, _ := c.group.Do("mutex:"+key, func() (any, error) {
			return rebuildUnderLock(ctx, c, key, ttl, load)
		})
		if err == nil {
			payload, _ := v.([]byte)
			return result[T](payload)
		}
		if !errs.Is(err, lock.ErrNotAcquired) && !sharedFlightCancelled(ctx, err) {
			return nil, err
		}

		if attempt >= c.cfg.MutexMaxRetries {
			c.recorder.CacheRebuild(strategy, "lock_timeout")
			return nil, errs.Wrapf(ErrLockTimeout, "key %s after %d attempts", key, attempt)
		}
		if err := sleep(ctx, c.cfg.MutexBackoff); err != nil {
			return nil, errs.Wrap(err, "cache: waiting for rebuild lock")
		}
	}
}

func rebuildUnderLock[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) ([]byte, error) {
	strategy := string(StrategyMutex)

	h, err := c.locker.TryAcquire(ctx, key, c.cfg.MutexLease)
	if errs.Is(err, lock.ErrNotAcquired) {
		return nil, err
	}
	if err != nil && !canFallBack(err) {
		return nil, errs.Wrapf(err, "cache: acquire rebuild lock for %s", key)
	}

	ctx, cancel := c.detached(ctx)
	defer cancel()

	if err != nil {
		c.logger.WarnContext(ctx, "rebuild lock unavailable, loading without it",
			slog.String("key", key),
			slog.String("error", err.Error()))
	} else {
		defer c.locker.ReleaseQuietly(ctx, h)
	}

	if payload, ok := recheck[T](ctx, c, key); ok {
		c.recorder.CacheRebuild(strategy, "already_filled")
		return payload, nil
	}

	payload, err := fill(ctx, c, key, ttl, load)
	switch {
	case err != nil:
		c.recorder.CacheRebuild(strategy, "failed")
	case payload == nil:
		c.recorder.CacheRebuild(strategy, "null")
	default:
		c.recorder.CacheRebuild(strategy, "rebuilt")
	}
	return payload, err
}

// sharedFlightCancelled reports an error that belongs to the caller that led
// the singleflight, not to us. We retry under our own context instead.
func sharedFlightCancelled(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return errs.Is(err, context.Canceled) || errs.Is(err, context.DeadlineExceeded)
}
