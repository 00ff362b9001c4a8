package repository

import (
	"context"

	"gin-voucher-shop/internal/domain/order"
	"gin-voucher-shop/internal/infra"
	"gin-voucher-shop/internal/infra/repository/converter"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
)

type OrderQueries interface {
	CountVoucherOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CountVoucherOrdersByUserParams) (int64, error)
	CreateVoucherOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherOrderParams) error
}

type OrderRepository struct {
	queries OrderQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) CountByUserAndVoucher(ctx context.Context, userID, voucherID int64) (int64, error) {
	n, err := r.queries.CountVoucherOrdersByUser(ctx, r.db, sqlc.CountVoucherOrdersByUserParams{
		UserID:    userID,
		VoucherID: voucherID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count voucher orders", err)
	}
	return n, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *order.VoucherOrder) error {
	if err := r.queries.CreateVoucherOrder(ctx, r.db, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create voucher order", err)
	}
	return nil
}
