package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gin-voucher-shop/internal/handler/httperr"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

const sweepEvery = 1024

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller. Authenticated requests are
// keyed by user id, anonymous ones by client IP.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	ttl   time.Duration
	clock clock.Clock

	mu       sync.Mutex
	visitors map[string]*visitor
	lookups  int
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	burst := cfg.PurchaseBurst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(cfg.PurchaseRPS),
		burst:    burst,
		ttl:      cfg.IdleTTL,
		clock:    clk,
		visitors: make(map[string]*visitor),
	}
}

func rateKey(c *gin.Context) string {
	if userID, ok := GetUserID(c); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// sweep before the lookup so an idle bucket is not revived by it
	rl.lookups++
	if rl.lookups >= sweepEvery {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Handler must run after RequireAuth to key by user.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.allow(rateKey(c)) {
			c.Next()
			return
		}

		c.Header("Retry-After", "1")
		httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded", nil)
	}
}
