package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gin-voucher-shop/internal/handler/httperr"
	"gin-voucher-shop/internal/pkg/authctx"
	"gin-voucher-shop/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errors.New("access token required")

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth puts the caller's id on both the gin context and the request
// context; usecases only ever read the latter.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetUserID(c, claims.UserID)
		c.Next()
	}
}

// SetUserID binds an authenticated user to the request.
func SetUserID(c *gin.Context, userID int64) {
	c.Set(ctxUserIDKey, userID)
	c.Set("jwt_claims", map[string]any{
		"user_id": strconv.FormatInt(userID, 10),
	})
	c.Request = c.Request.WithContext(authctx.WithUserID(c.Request.Context(), userID))
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
