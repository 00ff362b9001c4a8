//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour, clock.NewMockClock(issuedAt))

	token, err := svc.GenerateToken(1001)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), claims.UserID)
	assert.Equal(t, "1001", claims.Subject)
	assert.Equal(t, issuedAt.Add(time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestService_ExpiresWithClock(t *testing.T) {
	clk := clock.NewMockClock(issuedAt)
	svc := jwt.NewService("test-secret", time.Hour, clk)

	token, err := svc.GenerateToken(7)
	require.NoError(t, err)

	clk.Add(59 * time.Minute)
	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	clk.Add(2 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_ValidateToken(t *testing.T) {
	clk := clock.NewMockClock(issuedAt)
	signer := jwt.NewService("test-secret", time.Hour, clk)
	expired := jwt.NewService("test-secret", -time.Minute, clk)
	otherKey := jwt.NewService("other-secret", time.Hour, clk)

	valid, err := signer.GenerateToken(7)
	require.NoError(t, err)
	expiredToken, err := expired.GenerateToken(7)
	require.NoError(t, err)
	foreign, err := otherKey.GenerateToken(7)
	require.NoError(t, err)
	anonymous, err := signer.GenerateToken(0)
	require.NoError(t, err)
	noExpiry, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{UserID: 7}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	wrongAlg, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, jwt.Claims{
		UserID:           7,
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid", token: valid},
		{name: "expired", token: expiredToken, wantErr: jwt.ErrExpiredToken},
		{name: "wrong key", token: foreign, wantErr: jwt.ErrInvalidToken},
		{name: "no user", token: anonymous, wantErr: jwt.ErrInvalidToken},
		{name: "no expiry", token: noExpiry, wantErr: jwt.ErrInvalidToken},
		{name: "unexpected algorithm", token: wrongAlg, wantErr: jwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := signer.ValidateToken(tc.token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
