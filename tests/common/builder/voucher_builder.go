//go:build unit || e2e

package builder

import (
	"time"

	"gin-voucher-shop/internal/domain/voucher"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
	"gin-voucher-shop/internal/pkg/pgconv"
)

type VoucherBuilder struct {
	ID        int64
	Stock     int
	BeginTime time.Time
	EndTime   time.Time
}

// NewVoucherBuilder returns a voucher whose window is open at now.
func NewVoucherBuilder(now time.Time) *VoucherBuilder {
	return &VoucherBuilder{
		ID:        10,
		Stock:     100,
		BeginTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) BuildDomain() *voucher.SeckillVoucher {
	return voucher.Rehydrate(b.ID, b.Stock, b.BeginTime, b.EndTime, b.BeginTime, b.BeginTime)
}

func (b *VoucherBuilder) BuildInfra() sqlc.SeckillVouchers {
	return sqlc.SeckillVouchers{
		VoucherID: b.ID,
		Stock:     int32(b.Stock),
		BeginTime: pgconv.Timestamptz(b.BeginTime),
		EndTime:   pgconv.Timestamptz(b.EndTime),
		CreatedAt: pgconv.Timestamptz(b.BeginTime),
		UpdatedAt: pgconv.Timestamptz(b.BeginTime),
	}
}
