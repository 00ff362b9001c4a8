package readstore

import (
	"context"

	"gin-voucher-shop/internal/infra"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
	"gin-voucher-shop/internal/pkg/pgconv"
	"gin-voucher-shop/internal/usecase/readmodel"
)

type ShopReadQueries interface {
	GetShopByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Shops, error)
}

type ShopReadStore struct {
	queries ShopReadQueries
	db      sqlc.DBTX
}

func NewShopReadStore(queries ShopReadQueries, db sqlc.DBTX) *ShopReadStore {
	return &ShopReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns (nil, nil) when the shop does not exist.
func (r *ShopReadStore) FindByID(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	row, err := r.queries.GetShopByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find shop by ID", err)
	}
	return toShopRM(row), nil
}

func toShopRM(row sqlc.Shops) *readmodel.ShopRM {
	return &readmodel.ShopRM{
		ID:        row.ID,
		Name:      row.Name,
		TypeID:    row.TypeID,
		Area:      pgconv.TextPtr(row.Area),
		Address:   row.Address,
		AvgPrice:  pgconv.Int8Ptr(row.AvgPrice),
		Score:     int(row.Score),
		OpenHours: pgconv.TextPtr(row.OpenHours),
		UpdatedAt: pgconv.Time(row.UpdatedAt),
	}
}
