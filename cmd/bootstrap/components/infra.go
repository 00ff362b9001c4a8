package components

import (
	"context"
	"log/slog"

	"gin-voucher-shop/internal/infra/cache"
	"gin-voucher-shop/internal/infra/idgen"
	"gin-voucher-shop/internal/infra/kv"
	"gin-voucher-shop/internal/infra/lock"
	"gin-voucher-shop/internal/infra/metrics"
	"gin-voucher-shop/internal/infra/workerpool"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/config"
	"gin-voucher-shop/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	infraBaseOption,
	infraMetricsModule,
	infraCoordinationModule,
	infraCacheModule,
)

var infraBaseOption = fx.Provide(
	clock.NewRealClock,
)

var infraMetricsModule = fx.Module("infra/metrics",
	fx.Provide(
		NewPrometheusRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		fx.Annotate(
			metrics.New,
			fx.As(new(commands.PurchaseRecorder)),
			fx.As(new(cache.Recorder)),
			fx.As(new(workerpool.Recorder)),
		),
	),
)

var infraCoordinationModule = fx.Module("infra/coordination",
	fx.Provide(
		fx.Annotate(
			lock.NewLocker,
			fx.As(new(commands.Locker)),
			fx.As(new(cache.Locker)),
		),
		fx.Annotate(
			NewIDGenerator,
			fx.As(new(commands.IDGenerator)),
		),
	),
)

var infraCacheModule = fx.Module("infra/cache",
	fx.Provide(
		fx.Annotate(
			NewRebuildPool,
			fx.As(new(cache.Submitter)),
		),
		NewCacheClient,
	),
)

// NewPrometheusRegistry uses a private registry so /metrics only exposes
// the service's own collectors plus the Go and process collectors.
func NewPrometheusRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewIDGenerator(store kv.Store, clk clock.Clock, cfg config.Config) *idgen.Generator {
	return idgen.NewGenerator(store, clk, cfg.IDGen.EpochSeconds, cfg.IDGen.CounterTTL)
}

func NewRebuildPool(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger, recorder workerpool.Recorder) *workerpool.Pool {
	pool := workerpool.New("cache-rebuild", cfg.Worker.Workers, cfg.Worker.QueueSize, logger, recorder)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			pool.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, cfg.Worker.StopTimeout)
			defer cancel()
			return pool.Stop(stopCtx)
		},
	})
	return pool
}

func NewCacheClient(
	store kv.Store,
	locker cache.Locker,
	pool cache.Submitter,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
	recorder cache.Recorder,
) *cache.Client {
	return cache.NewClient(store, locker, pool, clk, cache.Config{
		NullTTL:         cfg.Cache.NullTTL,
		MutexLease:      cfg.Cache.MutexLease,
		MutexBackoff:    cfg.Cache.MutexBackoff,
		MutexMaxRetries: cfg.Cache.MutexMaxRetries,
		RebuildTimeout:  cfg.Cache.RebuildTimeout,
		RebuildLease:    cache.RebuildLease(cfg.Cache.RebuildTimeout, cfg.Worker.Workers, cfg.Worker.QueueSize),
	}, logger, recorder)
}
