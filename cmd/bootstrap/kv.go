package bootstrap

import (
	"context"
	"log/slog"

	"gin-voucher-shop/internal/infra/kv"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/config"

	"go.uber.org/fx"
)

var KVModule = fx.Module("kv",
	fx.Provide(
		NewKVStore,
	),
)

// NewKVStore returns the shared store backing the cache, locks and id
// counters. The memory driver is process-local and only fits a single
// instance or tests.
func NewKVStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (kv.Store, error) {
	if cfg.Redis.Driver == config.KVDriverMemory {
		logger.Warn("using in-memory kv store; locks and counters are not shared across instances")
		return kv.NewMemoryStore(clk), nil
	}

	rdb := kv.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// the breaker handles outages at request time, so startup only warns
				logger.Warn("redis ping failed", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
				return nil
			}
			logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return kv.NewRedisStore(rdb, cfg.Redis.Breaker, logger), nil
}
