package response

import (
	"time"

	"gin-voucher-shop/internal/usecase/readmodel"
)

type ShopResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TypeID    int64     `json:"type_id"`
	Area      *string   `json:"area,omitempty"`
	Address   string    `json:"address"`
	AvgPrice  *int64    `json:"avg_price,omitempty"`
	Score     float64   `json:"score"`
	OpenHours *string   `json:"open_hours,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromShopRM exposes the score on a five-point scale; it is stored as tenths.
func FromShopRM(rm *readmodel.ShopRM) ShopResponse {
	return ShopResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		TypeID:    rm.TypeID,
		Area:      rm.Area,
		Address:   rm.Address,
		AvgPrice:  rm.AvgPrice,
		Score:     float64(rm.Score) / 10,
		OpenHours: rm.OpenHours,
		UpdatedAt: rm.UpdatedAt,
	}
}
