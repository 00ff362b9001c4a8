//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/config"
	"gin-voucher-shop/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints buyer tokens signed with the application's secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, userID, duration, clock.NewRealClock())
}

// CreateExpiredToken returns a token that expired an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	return h.sign(t, userID, time.Hour, issued)
}

func (h *JWTHelper) sign(t *testing.T, userID int64, d time.Duration, clk clock.Clock) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, d, clk).GenerateToken(userID)
	require.NoError(t, err)
	return token
}
