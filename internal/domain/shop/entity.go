package shop

import (
	"errors"
	"strings"
	"time"

	"gin-voucher-shop/internal/pkg/ptr"
)

var (
	ErrEmptyShopName    = errors.New("shop name cannot be empty")
	ErrShopNameTooLong  = errors.New("shop name is too long (max 128 characters)")
	ErrEmptyAddress     = errors.New("shop address cannot be empty")
	ErrInvalidScore     = errors.New("score must be between 0 and 50")
	ErrNegativeAvgPrice = errors.New("average price cannot be negative")
	ErrInvalidShopID    = errors.New("shop id must be positive")
)

const (
	MaxShopNameLength = 128
	MaxScore          = 50
)

type Shop struct {
	id        int64
	name      string
	typeID    int64
	area      *string
	address   string
	avgPrice  *int64
	score     int
	openHours *string
	updatedAt time.Time
}

// Patch carries the fields an update may change. Nil leaves the field as is.
type Patch struct {
	Name      *string
	TypeID    *int64
	Area      *string
	Address   *string
	AvgPrice  *int64
	Score     *int
	OpenHours *string
}

func NewShop(
	id int64,
	name string,
	typeID int64,
	area *string,
	address string,
	avgPrice *int64,
	score int,
	openHours *string,
	updatedAt time.Time,
) (*Shop, error) {
	s := &Shop{
		id:        id,
		name:      strings.TrimSpace(name),
		typeID:    typeID,
		area:      area,
		address:   strings.TrimSpace(address),
		avgPrice:  avgPrice,
		score:     score,
		openHours: openHours,
		updatedAt: updatedAt,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply returns a copy of s with p applied and validated.
func (s *Shop) Apply(p Patch, now time.Time) (*Shop, error) {
	updated := &Shop{
		id:        s.id,
		name:      strings.TrimSpace(ptr.Or(p.Name, s.name)),
		typeID:    ptr.Or(p.TypeID, s.typeID),
		area:      coalescePtr(p.Area, s.area),
		address:   strings.TrimSpace(ptr.Or(p.Address, s.address)),
		avgPrice:  coalescePtr(p.AvgPrice, s.avgPrice),
		score:     ptr.Or(p.Score, s.score),
		openHours: coalescePtr(p.OpenHours, s.openHours),
		updatedAt: now,
	}
	if err := updated.validate(); err != nil {
		return nil, err
	}
	return updated, nil
}

func coalescePtr[T any](v, fallback *T) *T {
	if v != nil {
		return v
	}
	return fallback
}

func (s *Shop) validate() error {
	if s.id <= 0 {
		return ErrInvalidShopID
	}
	if s.name == "" {
		return ErrEmptyShopName
	}
	if len(s.name) > MaxShopNameLength {
		return ErrShopNameTooLong
	}
	if s.address == "" {
		return ErrEmptyAddress
	}
	if s.score < 0 || s.score > MaxScore {
		return ErrInvalidScore
	}
	if s.avgPrice != nil && *s.avgPrice < 0 {
		return ErrNegativeAvgPrice
	}
	return nil
}

func (s *Shop) ID() int64            { return s.id }
func (s *Shop) Name() string         { return s.name }
func (s *Shop) TypeID() int64        { return s.typeID }
func (s *Shop) Area() *string        { return s.area }
func (s *Shop) Address() string      { return s.address }
func (s *Shop) AvgPrice() *int64     { return s.avgPrice }
func (s *Shop) Score() int           { return s.score }
func (s *Shop) OpenHours() *string   { return s.openHours }
func (s *Shop) UpdatedAt() time.Time { return s.updatedAt }
