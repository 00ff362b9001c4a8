package converter

import (
	"gin-voucher-shop/internal/domain/order"
	"gin-voucher-shop/internal/domain/shop"
	"gin-voucher-shop/internal/domain/voucher"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
	"gin-voucher-shop/internal/pkg/pgconv"
)

func VoucherFromRow(row sqlc.SeckillVouchers) *voucher.SeckillVoucher {
	return voucher.Rehydrate(
		row.VoucherID,
		int(row.Stock),
		pgconv.Time(row.BeginTime),
		pgconv.Time(row.EndTime),
		pgconv.Time(row.CreatedAt),
		pgconv.Time(row.UpdatedAt),
	)
}

func ShopFromRow(row sqlc.Shops) (*shop.Shop, error) {
	return shop.NewShop(
		row.ID,
		row.Name,
		row.TypeID,
		pgconv.TextPtr(row.Area),
		row.Address,
		pgconv.Int8Ptr(row.AvgPrice),
		int(row.Score),
		pgconv.TextPtr(row.OpenHours),
		pgconv.Time(row.UpdatedAt),
	)
}

func ShopToUpdateParams(s *shop.Shop) sqlc.UpdateShopParams {
	return sqlc.UpdateShopParams{
		ID:        s.ID(),
		Name:      s.Name(),
		TypeID:    s.TypeID(),
		Area:      pgconv.Text(s.Area()),
		Address:   s.Address(),
		AvgPrice:  pgconv.Int8(s.AvgPrice()),
		Score:     int32(s.Score()),
		OpenHours: pgconv.Text(s.OpenHours()),
		UpdatedAt: pgconv.Timestamptz(s.UpdatedAt()),
	}
}

func OrderToCreateParams(o *order.VoucherOrder) sqlc.CreateVoucherOrderParams {
	return sqlc.CreateVoucherOrderParams{
		ID:        o.ID(),
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		CreatedAt: pgconv.Timestamptz(o.CreatedAt()),
	}
}
