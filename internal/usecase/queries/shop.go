package queries

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"gin-voucher-shop/internal/infra/cache"
	"gin-voucher-shop/internal/pkg/errs"
	"gin-voucher-shop/internal/usecase/readmodel"
)

var (
	ErrShopNotFound    = errs.New("shop not found")
	ErrShopUnavailable = errs.New("shop lookup unavailable")
)

const shopKeyPrefix = "cache:shop:"

func ShopKey(id int64) string {
	return shopKeyPrefix + strconv.FormatInt(id, 10)
}

type ShopReadStore interface {
	// FindByID returns (nil, nil) when the shop does not exist.
	FindByID(ctx context.Context, id int64) (*readmodel.ShopRM, error)
}

type ShopCacheConfig struct {
	Strategy   cache.Strategy
	TTL        time.Duration
	LogicalTTL time.Duration
	PrewarmIDs []int64
}

func (c ShopCacheConfig) options() cache.Options {
	if c.Strategy == cache.StrategyLogical {
		return cache.Options{Strategy: c.Strategy, TTL: c.LogicalTTL}
	}
	return cache.Options{Strategy: c.Strategy, TTL: c.TTL}
}

type ShopQueries interface {
	GetByID(ctx context.Context, id int64) (*readmodel.ShopRM, error)
	// Evict makes the next GetByID observe the current row: the key is dropped,
	// or under logical expiry the envelope is rewritten with a fresh deadline.
	Evict(ctx context.Context, id int64) error
	// Prewarm seeds the logical-expiry envelopes of the configured hot shops.
	Prewarm(ctx context.Context) error
}

type shopQueriesImpl struct {
	store  ShopReadStore
	cache  *cache.Client
	cfg    ShopCacheConfig
	logger *slog.Logger
}

func NewShopQueries(store ShopReadStore, client *cache.Client, cfg ShopCacheConfig, logger *slog.Logger) ShopQueries {
	return &shopQueriesImpl{
		store:  store,
		cache:  client,
		cfg:    cfg,
		logger: logger,
	}
}

func (q *shopQueriesImpl) loader(id int64) cache.Loader[readmodel.ShopRM] {
	return func(ctx context.Context) (*readmodel.ShopRM, error) {
		return q.store.FindByID(ctx, id)
	}
}

func (q *shopQueriesImpl) GetByID(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	shop, err := cache.Get(ctx, q.cache, ShopKey(id), q.loader(id), q.cfg.options())
	switch {
	case err == nil:
		return shop, nil
	case errs.Is(err, errs.ErrNotFound):
		return nil, errs.Mark(ErrShopNotFound, errs.ErrNotFound)
	case errs.Is(err, cache.ErrLockTimeout):
		return nil, errs.Mark(errs.Mark(err, ErrShopUnavailable), errs.ErrTransientStore)
	default:
		return nil, errs.Wrapf(err, "get shop %d", id)
	}
}

func (q *shopQueriesImpl) Evict(ctx context.Context, id int64) error {
	key := ShopKey(id)
	if q.cfg.Strategy != cache.StrategyLogical {
		return q.cache.Invalidate(ctx, key)
	}

	shop, err := q.store.FindByID(ctx, id)
	if err != nil {
		return errs.Wrapf(err, "reload shop %d", id)
	}
	if shop == nil {
		return q.cache.Invalidate(ctx, key)
	}
	return cache.SetWithLogicalExpire(ctx, q.cache, key, shop, q.cfg.LogicalTTL)
}

func (q *shopQueriesImpl) Prewarm(ctx context.Context) error {
	if q.cfg.Strategy != cache.StrategyLogical || len(q.cfg.PrewarmIDs) == 0 {
		return nil
	}

	warmed := 0
	for _, id := range q.cfg.PrewarmIDs {
		shop, err := q.store.FindByID(ctx, id)
		if err != nil {
			return errs.Wrapf(err, "prewarm shop %d", id)
		}
		if shop == nil {
			q.logger.WarnContext(ctx, "prewarm skipped missing shop", slog.Int64("shop_id", id))
			continue
		}
		if err := cache.SetWithLogicalExpire(ctx, q.cache, ShopKey(id), shop, q.cfg.LogicalTTL); err != nil {
			return errs.Wrapf(err, "prewarm shop %d", id)
		}
		warmed++
	}

	q.logger.InfoContext(ctx, "shop cache prewarmed", slog.Int("count", warmed))
	return nil
}
