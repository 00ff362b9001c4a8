package repository

import (
	"context"

	"gin-voucher-shop/internal/domain/voucher"
	"gin-voucher-shop/internal/infra"
	"gin-voucher-shop/internal/infra/repository/converter"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
)

type VoucherQueries interface {
	GetSeckillVoucherByID(ctx context.Context, db sqlc.DBTX, voucherID int64) (sqlc.SeckillVouchers, error)
	DecrementVoucherStock(ctx context.Context, db sqlc.DBTX, voucherID int64) (int64, error)
}

type VoucherRepository struct {
	queries VoucherQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) FindByID(ctx context.Context, id int64) (*voucher.SeckillVoucher, error) {
	row, err := r.queries.GetSeckillVoucherByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find seckill voucher", err)
	}
	return converter.VoucherFromRow(row), nil
}

// DecrementStock is the only write to stock. The stock > 0 predicate makes
// it safe under any number of concurrent buyers.
func (r *VoucherRepository) DecrementStock(ctx context.Context, voucherID int64) (bool, error) {
	rows, err := r.queries.DecrementVoucherStock(ctx, r.db, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement voucher stock", err)
	}
	return rows == 1, nil
}
