package bootstrap

import (
	"gin-voucher-shop/cmd/bootstrap/components"
	"gin-voucher-shop/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	KVModule,
	JWTModule,
	components.InfraModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
