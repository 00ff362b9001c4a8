//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"gin-voucher-shop/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	begin = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func TestNewSeckillVoucher(t *testing.T) {
	testCases := []struct {
		name    string
		id      int64
		stock   int
		begin   time.Time
		end     time.Time
		wantErr error
	}{
		{name: "valid", id: 1, stock: 100, begin: begin, end: end},
		{name: "zero stock is allowed", id: 1, stock: 0, begin: begin, end: end},
		{name: "invalid id", id: 0, stock: 1, begin: begin, end: end, wantErr: voucher.ErrInvalidVoucherID},
		{name: "negative stock", id: 1, stock: -1, begin: begin, end: end, wantErr: voucher.ErrNegativeStock},
		{name: "end before begin", id: 1, stock: 1, begin: end, end: begin, wantErr: voucher.ErrInvalidWindow},
		{name: "empty window", id: 1, stock: 1, begin: begin, end: begin, wantErr: voucher.ErrInvalidWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := voucher.NewSeckillVoucher(tc.id, tc.stock, tc.begin, tc.end)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.stock, v.Stock())
		})
	}
}

func TestSeckillVoucher_ValidateWindow(t *testing.T) {
	v, err := voucher.NewSeckillVoucher(1, 10, begin, end)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "before begin", at: begin.Add(-time.Nanosecond), wantErr: voucher.ErrSaleNotStarted},
		{name: "at begin", at: begin},
		{name: "inside", at: begin.Add(time.Hour)},
		{name: "at end", at: end},
		{name: "after end", at: end.Add(time.Nanosecond), wantErr: voucher.ErrSaleEnded},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateWindow(tc.at)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSeckillVoucher_ValidateStock(t *testing.T) {
	soldOut := voucher.Rehydrate(1, 0, begin, end, begin, begin)
	available := voucher.Rehydrate(1, 1, begin, end, begin, begin)

	assert.ErrorIs(t, soldOut.ValidateStock(), voucher.ErrOutOfStock)
	assert.NoError(t, available.ValidateStock())
}
