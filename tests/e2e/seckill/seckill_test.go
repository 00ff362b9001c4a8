//go:build e2e

package seckill_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "gin-voucher-shop/internal/handler/dto/response"
	"gin-voucher-shop/tests/common/authtest"
	"gin-voucher-shop/tests/common/dbtest"
	"gin-voucher-shop/tests/common/httptest"
	"gin-voucher-shop/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const seckillURL = "/api/voucher-orders/seckill/%d"

type SeckillSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *SeckillSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestSeckillSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SeckillSuite))
}

func (s *SeckillSuite) purchase(userID, voucherID int64) *http.Response {
	token := s.jwt.GenerateToken(s.T(), userID)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(seckillURL, voucherID), nil, token)
	return rec.Result()
}

// =============================================================================
// TestPurchase - single buyer flows
// =============================================================================

func (s *SeckillSuite) TestPurchase() {
	s.Run("Normal case: order is created and stock decremented", func() {
		t := s.T()
		dbtest.CreateOpenVoucher(t, s.DB, 100, 5)

		token := s.jwt.GenerateToken(t, 1001)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, 100), nil, token)

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
		require.Positive(t, body.OrderID)
		require.Equal(t, fmt.Sprint(body.OrderID), body.OrderIDStr)
		require.Equal(t, 4, dbtest.VoucherStock(t, s.DB, 100))
		require.Equal(t, 1, dbtest.CountUserOrders(t, s.DB, 1001, 100))
	})

	s.Run("Normal case: the order id counter expires with its day", func() {
		t := s.T()
		dbtest.CreateOpenVoucher(t, s.DB, 102, 5)

		require.Equal(t, http.StatusCreated, s.purchase(1101, 102).StatusCode)
		require.Equal(t, http.StatusCreated, s.purchase(1102, 102).StatusCode)

		keys, err := s.Redis.Keys(t.Context(), "icr:order:*").Result()
		require.NoError(t, err)
		require.Len(t, keys, 1)

		ttl, err := s.Redis.TTL(t.Context(), keys[0]).Result()
		require.NoError(t, err)
		require.Positive(t, ttl)
		require.LessOrEqual(t, ttl, s.Config.IDGen.CounterTTL)
	})

	s.Run("Error case: second purchase by the same user is rejected", func() {
		t := s.T()
		dbtest.CreateOpenVoucher(t, s.DB, 100, 5)

		require.Equal(t, http.StatusCreated, s.purchase(1001, 100).StatusCode)

		token := s.jwt.GenerateToken(t, 1001)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, 100), nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already purchased")
		require.Equal(t, 4, dbtest.VoucherStock(t, s.DB, 100))
	})

	s.Run("Error case: sale window and stock are enforced", func() {
		t := s.T()
		now := time.Now()
		dbtest.CreateTestVoucher(t, s.DB, 201, 5, now.Add(time.Hour), now.Add(2*time.Hour))
		dbtest.CreateTestVoucher(t, s.DB, 202, 5, now.Add(-2*time.Hour), now.Add(-time.Hour))
		dbtest.CreateOpenVoucher(t, s.DB, 203, 0)

		testCases := []struct {
			voucherID int64
			status    int
			msg       string
		}{
			{voucherID: 201, status: http.StatusUnprocessableEntity, msg: "not started"},
			{voucherID: 202, status: http.StatusUnprocessableEntity, msg: "ended"},
			{voucherID: 203, status: http.StatusConflict, msg: "sold out"},
			{voucherID: 999, status: http.StatusNotFound, msg: "not found"},
		}
		token := s.jwt.GenerateToken(t, 1002)
		for _, tc := range testCases {
			rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, tc.voucherID), nil, token)
			httptest.AssertErrorResponse(t, rec, tc.status, tc.msg)
		}
		require.Equal(t, 0, dbtest.CountUserOrders(t, s.DB, 1002, 201))
	})

	s.Run("Error case: anonymous and expired callers get 401", func() {
		t := s.T()
		dbtest.CreateOpenVoucher(t, s.DB, 100, 5)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, 100), nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")

		expired := s.jwt.CreateExpiredToken(t, 1001)
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, 100), nil, expired)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")
		require.Equal(t, 5, dbtest.VoucherStock(t, s.DB, 100))
	})
}

// =============================================================================
// TestConcurrentPurchase - many buyers racing for the same voucher
// =============================================================================

func (s *SeckillSuite) TestConcurrentPurchase() {
	s.Run("Stock never goes negative and every order id is distinct", func() {
		t := s.T()
		const (
			stock  = 10
			buyers = 60
		)
		dbtest.CreateOpenVoucher(t, s.DB, 300, stock)

		tokens := make([]string, buyers)
		for i := range tokens {
			tokens[i] = s.jwt.GenerateToken(t, int64(2000+i))
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			statuses = map[int]int{}
		)
		for i := range buyers {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, 300), nil, token)
				mu.Lock()
				statuses[rec.Code]++
				mu.Unlock()
			}(tokens[i])
		}
		wg.Wait()

		require.Equal(t, stock, statuses[http.StatusCreated], "statuses: %v", statuses)
		require.Equal(t, buyers-stock, statuses[http.StatusConflict], "statuses: %v", statuses)
		require.Equal(t, 0, dbtest.VoucherStock(t, s.DB, 300))
		require.Equal(t, stock, dbtest.CountOrders(t, s.DB, 300))

		var distinct int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(DISTINCT id) FROM voucher_orders WHERE voucher_id = $1", 300).Scan(&distinct)
		require.NoError(t, err)
		require.Equal(t, stock, distinct)
	})

	s.Run("One user racing themselves places at most one order", func() {
		t := s.T()
		dbtest.CreateOpenVoucher(t, s.DB, 301, 10)
		token := s.jwt.GenerateToken(t, 3000)

		var wg sync.WaitGroup
		codes := make([]int, 20)
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(seckillURL, 301), nil, token)
				codes[i] = rec.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict, http.StatusTooManyRequests:
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountUserOrders(t, s.DB, 3000, 301))
		require.Equal(t, 9, dbtest.VoucherStock(t, s.DB, 301))
	})
}
