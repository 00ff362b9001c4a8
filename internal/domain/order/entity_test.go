//go:build unit

package order_test

import (
	"testing"
	"time"

	"gin-voucher-shop/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoucherOrder(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		id        int64
		userID    int64
		voucherID int64
		wantErr   error
	}{
		{name: "valid", id: 1 << 32, userID: 10, voucherID: 20},
		{name: "missing id", id: 0, userID: 10, voucherID: 20, wantErr: order.ErrInvalidOrderID},
		{name: "missing user", id: 1, userID: 0, voucherID: 20, wantErr: order.ErrInvalidUserID},
		{name: "missing voucher", id: 1, userID: 10, voucherID: -1, wantErr: order.ErrInvalidVoucher},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := order.NewVoucherOrder(tc.id, tc.userID, tc.voucherID, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, o.ID())
			assert.Equal(t, tc.userID, o.UserID())
			assert.Equal(t, tc.voucherID, o.VoucherID())
			assert.Equal(t, now, o.CreatedAt())
		})
	}
}
