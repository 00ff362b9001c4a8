package readmodel

import "time"

// ShopRM is the cached representation of a shop.
type ShopRM struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TypeID    int64     `json:"type_id"`
	Area      *string   `json:"area,omitempty"`
	Address   string    `json:"address"`
	AvgPrice  *int64    `json:"avg_price,omitempty"`
	Score     int       `json:"score"`
	OpenHours *string   `json:"open_hours,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
