package components

import (
	"log/slog"
	"time"

	"gin-voucher-shop/internal/handler"
	"gin-voucher-shop/internal/handler/api"
	"gin-voucher-shop/internal/handler/middleware"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShopHandler,
		api.NewVoucherOrderHandler,
		middleware.NewAuthMiddleware,
		NewPurchaseRateLimiter,
		NewRequestLogger,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRequestLogger(cfg config.Config, logger *slog.Logger) *middleware.Logger {
	return middleware.NewLogger(logger, time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
}

func NewPurchaseRateLimiter(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk)
}

func NewHandlers(shop *api.ShopHandler, order *api.VoucherOrderHandler) handler.Handlers {
	return handler.Handlers{
		Shop:         shop,
		VoucherOrder: order,
	}
}

func NewMiddlewares(auth *middleware.AuthMiddleware, rl *middleware.RateLimiter, logger *middleware.Logger) handler.Middlewares {
	return handler.Middlewares{
		Auth:      auth,
		RateLimit: rl,
		Logger:    logger,
	}
}
