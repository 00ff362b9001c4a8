package commands

import (
	"context"
	"log/slog"

	"gin-voucher-shop/internal/domain/shop"
	"gin-voucher-shop/internal/infra"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/errs"
	"gin-voucher-shop/internal/usecase/shared"
)

var (
	ErrShopNotFound     = errs.New("shop not found")
	ErrInvalidShopPatch = errs.New("invalid shop update")
)

// ShopCacheEvicter drops or refreshes the cached copy of a shop.
type ShopCacheEvicter interface {
	Evict(ctx context.Context, id int64) error
}

type ShopCommands interface {
	Update(ctx context.Context, id int64, p shop.Patch) error
}

type shopUseCaseImpl struct {
	uow    shared.UnitOfWork
	cache  ShopCacheEvicter
	clock  clock.Clock
	logger *slog.Logger
}

func NewShopUseCase(uow shared.UnitOfWork, cache ShopCacheEvicter, clock clock.Clock, logger *slog.Logger) ShopCommands {
	return &shopUseCaseImpl{
		uow:    uow,
		cache:  cache,
		clock:  clock,
		logger: logger,
	}
}

// Update writes the row first and only then touches the cache, so a reader
// racing the update can at worst repopulate the key with the committed row.
func (u *shopUseCaseImpl) Update(ctx context.Context, id int64, p shop.Patch) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ShopByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrShopNotFound, errs.ErrNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		updated, err := current.Apply(p, u.clock.Now())
		if err != nil {
			return errs.Mark(errs.Mark(err, ErrInvalidShopPatch), errs.ErrInvalidInput)
		}

		if err := tx.Shops().Update(ctx, updated); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrShopNotFound, errs.ErrNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := u.cache.Evict(ctx, id); err != nil {
		// The row is committed; a stale entry ages out with its TTL.
		u.logger.WarnContext(ctx, "shop cache eviction failed",
			slog.Int64("shop_id", id),
			slog.String("error", err.Error()))
	}
	return nil
}
