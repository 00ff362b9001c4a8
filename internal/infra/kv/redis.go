package kv

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gin-voucher-shop/internal/pkg/config"
	"gin-voucher-shop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const compareAndDeleteLua = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// PTTL is -1 only for a key without expiry; INCR has just created the key
// if it was missing.
const incrWithTTLLua = `
local n = redis.call("INCR", KEYS[1])
local ttl = tonumber(ARGV[1])
if ttl > 0 and redis.call("PTTL", KEYS[1]) == -1 then
	redis.call("PEXPIRE", KEYS[1], ttl)
end
return n
`

type RedisStore struct {
	rdb     redis.UniversalClient
	cb      *gobreaker.CircuitBreaker
	release *redis.Script
	incr    *redis.Script
	logger  *slog.Logger
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

func NewRedisStore(rdb redis.UniversalClient, cfg config.BreakerConfig, logger *slog.Logger) *RedisStore {
	threshold := cfg.FailureThreshold
	st := gobreaker.Settings{
		Name:        "redis-kv",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
		// a miss or a cancelled caller says nothing about redis health
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, redis.Nil) ||
				errors.Is(err, context.Canceled)
		},
	}

	return &RedisStore{
		rdb:     rdb,
		cb:      gobreaker.NewCircuitBreaker(st),
		release: redis.NewScript(compareAndDeleteLua),
		incr:    redis.NewScript(incrWithTTLLua),
		logger:  logger,
	}
}

func (s *RedisStore) do(op string, fn func() (any, error)) (any, error) {
	res, err := s.cb.Execute(fn)
	if err == nil {
		return res, nil
	}
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errs.Mark(errs.Wrapf(ErrUnavailable, "redis %s: breaker %s", op, s.cb.State()), errs.ErrTransientStore)
	}
	return nil, errs.Mark(errs.Wrapf(err, "redis %s", op), errs.ErrTransientStore)
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	res, err := s.do("GET", func() (any, error) {
		return s.rdb.Get(ctx, key).Result()
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := s.do("SET", func() (any, error) {
		return nil, s.rdb.Set(ctx, key, value, ttl).Err()
	})
	return err
}

func (s *RedisStore) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	res, err := s.do("SETNX", func() (any, error) {
		return s.rdb.SetNX(ctx, key, value, ttl).Result()
	})
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	_, err := s.do("DEL", func() (any, error) {
		return nil, s.rdb.Del(ctx, key).Err()
	})
	return err
}

func (s *RedisStore) CompareAndDelete(ctx context.Context, key, expected string) (bool, error) {
	res, err := s.do("EVALSHA", func() (any, error) {
		return s.release.Run(ctx, s.rdb, []string{key}, expected).Int64()
	})
	if err != nil {
		return false, err
	}
	return res.(int64) == 1, nil
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	res, err := s.do("INCR", func() (any, error) {
		return s.rdb.Incr(ctx, key).Result()
	})
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}

func (s *RedisStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	res, err := s.do("EVALSHA", func() (any, error) {
		return s.incr.Run(ctx, s.rdb, []string{key}, ttl.Milliseconds()).Int64()
	})
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}

func (s *RedisStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	_, err := s.do("EXPIRE", func() (any, error) {
		return nil, s.rdb.Expire(ctx, key, ttl).Err()
	})
	return err
}

func (s *RedisStore) Ping(ctx context.Context) error {
	_, err := s.do("PING", func() (any, error) {
		return nil, s.rdb.Ping(ctx).Err()
	})
	return err
}
