package bootstrap

import (
	"context"
	"log/slog"

	"gin-voucher-shop/internal/infra/db"
	"gin-voucher-shop/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				slog.Int("acquired_conns", int(stat.AcquiredConns())),
				slog.Int64("acquire_count", stat.AcquireCount()))
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
