package order

import (
	"errors"
	"time"
)

var (
	ErrInvalidOrderID = errors.New("order id must be positive")
	ErrInvalidUserID  = errors.New("user id must be positive")
	ErrInvalidVoucher = errors.New("voucher id must be positive")
)

// VoucherOrder is created once per successful purchase and never changes.
type VoucherOrder struct {
	id        int64
	userID    int64
	voucherID int64
	createdAt time.Time
}

func NewVoucherOrder(id, userID, voucherID int64, createdAt time.Time) (*VoucherOrder, error) {
	switch {
	case id <= 0:
		return nil, ErrInvalidOrderID
	case userID <= 0:
		return nil, ErrInvalidUserID
	case voucherID <= 0:
		return nil, ErrInvalidVoucher
	}
	return &VoucherOrder{
		id:        id,
		userID:    userID,
		voucherID: voucherID,
		createdAt: createdAt,
	}, nil
}

func (o *VoucherOrder) ID() int64            { return o.id }
func (o *VoucherOrder) UserID() int64        { return o.userID }
func (o *VoucherOrder) VoucherID() int64     { return o.voucherID }
func (o *VoucherOrder) CreatedAt() time.Time { return o.createdAt }
