package request

import "gin-voucher-shop/internal/domain/shop"

// UpdateShopRequest is a partial update; omitted fields keep their value.
type UpdateShopRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=128"`
	TypeID    *int64  `json:"type_id" binding:"omitempty,min=1"`
	Area      *string `json:"area" binding:"omitempty,max=128"`
	Address   *string `json:"address" binding:"omitempty,min=1,max=255"`
	AvgPrice  *int64  `json:"avg_price" binding:"omitempty,min=0"`
	Score     *int    `json:"score" binding:"omitempty,min=0,max=50"`
	OpenHours *string `json:"open_hours" binding:"omitempty,max=64"`
}

func (r *UpdateShopRequest) ToPatch() shop.Patch {
	return shop.Patch{
		Name:      r.Name,
		TypeID:    r.TypeID,
		Area:      r.Area,
		Address:   r.Address,
		AvgPrice:  r.AvgPrice,
		Score:     r.Score,
		OpenHours: r.OpenHours,
	}
}

func (r *UpdateShopRequest) IsEmpty() bool {
	return r.Name == nil && r.TypeID == nil && r.Area == nil && r.Address == nil &&
		r.AvgPrice == nil && r.Score == nil && r.OpenHours == nil
}
