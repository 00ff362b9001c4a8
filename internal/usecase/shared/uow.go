package shared

import (
	"context"

	"gin-voucher-shop/internal/domain/order"
	"gin-voucher-shop/internal/domain/shop"
	"gin-voucher-shop/internal/domain/voucher"
)

type UnitOfWork interface {
	// Within runs fn in one transaction, committing on nil and rolling back
	// otherwise. Serialization failures and deadlocks are retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Vouchers() VoucherRepository
	Orders() OrderRepository
	Shops() ShopRepository
	Reads() CommandReads
}

// CommandReads return an infra.KindNotFound repository error for absent rows.
type CommandReads interface {
	VoucherByID(ctx context.Context, id int64) (*voucher.SeckillVoucher, error)
	ShopByID(ctx context.Context, id int64) (*shop.Shop, error)
}

type VoucherRepository interface {
	// DecrementStock reports false when no unit was left to take.
	DecrementStock(ctx context.Context, voucherID int64) (bool, error)
}

type OrderRepository interface {
	CountByUserAndVoucher(ctx context.Context, userID, voucherID int64) (int64, error)
	Create(ctx context.Context, o *order.VoucherOrder) error
}

type ShopRepository interface {
	Update(ctx context.Context, s *shop.Shop) error
}
