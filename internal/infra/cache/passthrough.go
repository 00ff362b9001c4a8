package cache

import (
	"context"
	"time"

	"gin-voucher-shop/internal/pkg/errs"
)

// PassThrough caches values for ttl and absences for the configured null
// TTL. Concurrent misses for one key in this process share a single load.
func PassThrough[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) (*T, error) {
	strategy := string(StrategyPassThrough)

	raw, state, lookupErr := c.lookup(ctx, key)
	switch state {
	case stateCancelled:
		return nil, cancelled(key, lookupErr)
	case stateUnavailable:
		if !canFallBack(lookupErr) {
			c.recorder.CacheResult(strategy, string(state))
			return nil, errs.Wrapf(lookupErr, "cache: read %s", key)
		}
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
	}
	c.recorder.CacheResult(strategy, string(state))

	payload, err := loadShared(ctx, c, key, ttl, load)
	if err != nil {
		return nil, err
	}
	return result[T](payload)
}

func loadShared[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load Loader[T]) ([]byte, error) {
	v, err, _ := c.group.Do("load:"+key, func() (any, error) {
		ctx, cancel := c.detached(ctx)
		defer cancel()

		if payload, ok := recheck[T](ctx, c, key); ok {
			return payload, nil
		}
		return fill(ctx, c, key, ttl, load)
	})
	if err != nil {
		return nil, err
	}
	payload, _ := v.([]byte)
	return payload, nil
}
