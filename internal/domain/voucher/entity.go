package voucher

import (
	"errors"
	"time"
)

var (
	ErrSaleNotStarted   = errors.New("flash sale has not started")
	ErrSaleEnded        = errors.New("flash sale has ended")
	ErrOutOfStock       = errors.New("voucher is out of stock")
	ErrInvalidWindow    = errors.New("sale window must end after it begins")
	ErrNegativeStock    = errors.New("stock cannot be negative")
	ErrInvalidVoucherID = errors.New("voucher id must be positive")
)

// SeckillVoucher is a voucher sold in limited quantity during a window.
// Stock is only ever decremented by the conditional update in the store.
type SeckillVoucher struct {
	id        int64
	stock     int
	beginTime time.Time
	endTime   time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewSeckillVoucher(id int64, stock int, beginTime, endTime time.Time) (*SeckillVoucher, error) {
	if id <= 0 {
		return nil, ErrInvalidVoucherID
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if !endTime.After(beginTime) {
		return nil, ErrInvalidWindow
	}
	return &SeckillVoucher{
		id:        id,
		stock:     stock,
		beginTime: beginTime,
		endTime:   endTime,
	}, nil
}

// Rehydrate rebuilds a voucher from persisted state without validation.
func Rehydrate(id int64, stock int, beginTime, endTime, createdAt, updatedAt time.Time) *SeckillVoucher {
	return &SeckillVoucher{
		id:        id,
		stock:     stock,
		beginTime: beginTime,
		endTime:   endTime,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ValidateWindow accepts both window edges.
func (v *SeckillVoucher) ValidateWindow(t time.Time) error {
	if t.Before(v.beginTime) {
		return ErrSaleNotStarted
	}
	if t.After(v.endTime) {
		return ErrSaleEnded
	}
	return nil
}

// ValidateStock is an early reject only; stock read here may already be gone.
func (v *SeckillVoucher) ValidateStock() error {
	if v.stock < 1 {
		return ErrOutOfStock
	}
	return nil
}

func (v *SeckillVoucher) ID() int64            { return v.id }
func (v *SeckillVoucher) Stock() int           { return v.stock }
func (v *SeckillVoucher) BeginTime() time.Time { return v.beginTime }
func (v *SeckillVoucher) EndTime() time.Time   { return v.endTime }
func (v *SeckillVoucher) CreatedAt() time.Time { return v.createdAt }
func (v *SeckillVoucher) UpdatedAt() time.Time { return v.updatedAt }
