//go:build unit || e2e

package builder

import (
	"time"

	"gin-voucher-shop/internal/domain/shop"
	reqdto "gin-voucher-shop/internal/handler/dto/request"
	sqlc "gin-voucher-shop/internal/infra/sqlc/generated"
	"gin-voucher-shop/internal/pkg/pgconv"
	"gin-voucher-shop/internal/pkg/ptr"
	"gin-voucher-shop/internal/usecase/readmodel"
)

type ShopBuilder struct {
	ID        int64
	Name      string
	TypeID    int64
	Area      *string
	Address   string
	AvgPrice  *int64
	Score     int
	OpenHours *string
	UpdatedAt time.Time
}

func NewShopBuilder() *ShopBuilder {
	return &ShopBuilder{
		ID:        1,
		Name:      "Tea House",
		TypeID:    1,
		Area:      ptr.Of("Downtown"),
		Address:   "1 Main St",
		AvgPrice:  ptr.Of(int64(80)),
		Score:     47,
		OpenHours: ptr.Of("10:00-22:00"),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ShopBuilder) With(mutate func(*ShopBuilder)) *ShopBuilder {
	mutate(b)
	return b
}

func (b *ShopBuilder) WithID(id int64) *ShopBuilder {
	b.ID = id
	return b
}

// Build methods
func (b *ShopBuilder) BuildDomain() (*shop.Shop, error) {
	return shop.NewShop(b.ID, b.Name, b.TypeID, b.Area, b.Address, b.AvgPrice, b.Score, b.OpenHours, b.UpdatedAt)
}

func (b *ShopBuilder) BuildInfra() sqlc.Shops {
	return sqlc.Shops{
		ID:        b.ID,
		Name:      b.Name,
		TypeID:    b.TypeID,
		Area:      pgconv.Text(b.Area),
		Address:   b.Address,
		AvgPrice:  pgconv.Int8(b.AvgPrice),
		Score:     int32(b.Score),
		OpenHours: pgconv.Text(b.OpenHours),
		CreatedAt: pgconv.Timestamptz(b.UpdatedAt),
		UpdatedAt: pgconv.Timestamptz(b.UpdatedAt),
	}
}

func (b *ShopBuilder) BuildReadModel() *readmodel.ShopRM {
	return &readmodel.ShopRM{
		ID:        b.ID,
		Name:      b.Name,
		TypeID:    b.TypeID,
		Area:      b.Area,
		Address:   b.Address,
		AvgPrice:  b.AvgPrice,
		Score:     b.Score,
		OpenHours: b.OpenHours,
		UpdatedAt: b.UpdatedAt,
	}
}

// BuildUpdateRequestDTO sets every field the builder carries.
func (b *ShopBuilder) BuildUpdateRequestDTO() reqdto.UpdateShopRequest {
	return reqdto.UpdateShopRequest{
		Name:      ptr.Of(b.Name),
		TypeID:    ptr.Of(b.TypeID),
		Area:      b.Area,
		Address:   ptr.Of(b.Address),
		AvgPrice:  b.AvgPrice,
		Score:     ptr.Of(b.Score),
		OpenHours: b.OpenHours,
	}
}
