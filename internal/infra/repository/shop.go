package repository

import (
	"context"

	"gin-voucher-shop/internal/domain/shop"
	"gin-voucher-shop/internal/infra"
	"gin-voucher-shop/internal/infra/repository/converter"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
)

type ShopQueries interface {
	GetShopByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Shops, error)
	UpdateShop(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateShopParams) (int64, error)
}

type ShopRepository struct {
	queries ShopQueries
	db      sqlc.DBTX
}

func NewShopRepository(queries ShopQueries, db sqlc.DBTX) *ShopRepository {
	return &ShopRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShopRepository) FindByID(ctx context.Context, id int64) (*shop.Shop, error) {
	row, err := r.queries.GetShopByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}
	s, err := converter.ShopFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored shop is invalid", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *ShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	rows, err := r.queries.UpdateShop(ctx, r.db, converter.ShopToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update shop", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	return nil
}
