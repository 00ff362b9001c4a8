package components

import (
	"context"
	"log/slog"

	"gin-voucher-shop/internal/infra/cache"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/config"
	"gin-voucher-shop/internal/usecase/commands"
	"gin-voucher-shop/internal/usecase/queries"
	"gin-voucher-shop/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(prewarmShopCache),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewVoucherOrderCommands,
		func(q queries.ShopQueries) commands.ShopCacheEvicter { return q },
		commands.NewShopUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewShopCacheConfig,
		queries.NewShopQueries,
	),
)

func NewVoucherOrderCommands(
	uow shared.UnitOfWork,
	locker commands.Locker,
	ids commands.IDGenerator,
	recorder commands.PurchaseRecorder,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.VoucherOrderCommands {
	return commands.NewVoucherOrderUseCase(uow, locker, ids, recorder, clk, cfg.Lock.OrderLease, logger)
}

func NewShopCacheConfig(cfg config.Config) queries.ShopCacheConfig {
	return queries.ShopCacheConfig{
		Strategy:   cache.Strategy(cfg.Cache.ShopStrategy),
		TTL:        cfg.Cache.ShopTTL,
		LogicalTTL: cfg.Cache.LogicalTTL,
		PrewarmIDs: cfg.Cache.PrewarmShopIDs,
	}
}

// Logical expiry never loads on a miss, so hot shops must be written
// before traffic arrives.
func prewarmShopCache(lc fx.Lifecycle, q queries.ShopQueries) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return q.Prewarm(ctx)
		},
	})
}
