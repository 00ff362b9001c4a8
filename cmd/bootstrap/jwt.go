package bootstrap

import (
	"time"

	"gin-voucher-shop/internal/handler/middleware"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/config"
	"gin-voucher-shop/internal/pkg/errs"
	"gin-voucher-shop/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "parse JWT_DURATION %q", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
