//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"gin-voucher-shop/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Redis.Driver)
	assert.Equal(t, "mutex", cfg.Cache.ShopStrategy)
	assert.Equal(t, 30*time.Minute, cfg.Cache.ShopTTL)
	assert.Equal(t, 2*time.Minute, cfg.Cache.NullTTL)
	assert.Equal(t, 20*time.Second, cfg.Cache.LogicalTTL)
	assert.Equal(t, 50*time.Millisecond, cfg.Cache.MutexBackoff)
	assert.Equal(t, 10*time.Second, cfg.Lock.OrderLease)
	assert.Equal(t, int64(1640995200), cfg.IDGen.EpochSeconds)
	assert.Equal(t, 10, cfg.Worker.Workers)
	assert.Empty(t, cfg.Cache.PrewarmShopIDs)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KV_DRIVER", "memory")
	t.Setenv("CACHE_SHOP_STRATEGY", "logical")
	t.Setenv("CACHE_SHOP_PREWARM_IDS", "1,2,3")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Redis.Driver)
	assert.Equal(t, "logical", cfg.Cache.ShopStrategy)
	assert.Equal(t, []int64{1, 2, 3}, cfg.Cache.PrewarmShopIDs)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown kv driver", key: "KV_DRIVER", val: "etcd"},
		{name: "unknown strategy", key: "CACHE_SHOP_STRATEGY", val: "write-behind"},
		{name: "no workers", key: "REBUILD_WORKERS", val: "0"},
		{name: "no retries", key: "CACHE_MUTEX_MAX_RETRIES", val: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	// t.Setenv restores the previous value after the test.
	require.NoError(t, os.Unsetenv("DB_USER"))

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
