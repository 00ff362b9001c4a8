package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Lock      LockConfig
	IDGen     IDGenConfig
	Worker    WorkerConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

const (
	KVDriverRedis  = "redis"
	KVDriverMemory = "memory"
)

type RedisConfig struct {
	Driver       string        `envconfig:"KV_DRIVER" default:"redis"`
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"50"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"3s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"1s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"1s"`
	Breaker      BreakerConfig
}

type BreakerConfig struct {
	MaxRequests      uint32        `envconfig:"REDIS_BREAKER_MAX_REQUESTS" default:"5"`
	Interval         time.Duration `envconfig:"REDIS_BREAKER_INTERVAL" default:"60s"`
	Timeout          time.Duration `envconfig:"REDIS_BREAKER_TIMEOUT" default:"10s"`
	FailureThreshold uint32        `envconfig:"REDIS_BREAKER_FAILURE_THRESHOLD" default:"10"`
}

// CacheConfig holds the shop cache knobs. Strategy is one of
// passthrough, mutex or logical.
type CacheConfig struct {
	ShopStrategy    string        `envconfig:"CACHE_SHOP_STRATEGY" default:"mutex"`
	ShopTTL         time.Duration `envconfig:"CACHE_SHOP_TTL" default:"30m"`
	NullTTL         time.Duration `envconfig:"CACHE_NULL_TTL" default:"2m"`
	LogicalTTL      time.Duration `envconfig:"CACHE_LOGICAL_TTL" default:"20s"`
	MutexLease      time.Duration `envconfig:"CACHE_MUTEX_LEASE" default:"10s"`
	MutexBackoff    time.Duration `envconfig:"CACHE_MUTEX_BACKOFF" default:"50ms"`
	MutexMaxRetries int           `envconfig:"CACHE_MUTEX_MAX_RETRIES" default:"40"`
	RebuildTimeout  time.Duration `envconfig:"CACHE_REBUILD_TIMEOUT" default:"5s"`
	PrewarmShopIDs  []int64       `envconfig:"CACHE_SHOP_PREWARM_IDS"`
}

type LockConfig struct {
	OrderLease time.Duration `envconfig:"LOCK_ORDER_LEASE" default:"10s"`
}

type IDGenConfig struct {
	// EpochSeconds is the unix second the timestamp part counts from.
	EpochSeconds int64         `envconfig:"IDGEN_EPOCH_SECONDS" default:"1640995200"`
	CounterTTL   time.Duration `envconfig:"IDGEN_COUNTER_TTL" default:"48h"`
}

type WorkerConfig struct {
	Workers     int           `envconfig:"REBUILD_WORKERS" default:"10"`
	QueueSize   int           `envconfig:"REBUILD_QUEUE_SIZE" default:"100"`
	StopTimeout time.Duration `envconfig:"REBUILD_STOP_TIMEOUT" default:"10s"`
}

type RateLimitConfig struct {
	PurchaseRPS   float64       `envconfig:"RATE_LIMIT_PURCHASE_RPS" default:"5"`
	PurchaseBurst int           `envconfig:"RATE_LIMIT_PURCHASE_BURST" default:"10"`
	IdleTTL       time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Redis.Driver {
	case KVDriverRedis, KVDriverMemory:
	default:
		return fmt.Errorf("unknown KV_DRIVER %q", c.Redis.Driver)
	}
	switch c.Cache.ShopStrategy {
	case "passthrough", "mutex", "logical":
	default:
		return fmt.Errorf("unknown CACHE_SHOP_STRATEGY %q", c.Cache.ShopStrategy)
	}
	if c.Worker.Workers < 1 || c.Worker.QueueSize < 0 {
		return fmt.Errorf("invalid rebuild pool size: workers=%d queue=%d", c.Worker.Workers, c.Worker.QueueSize)
	}
	if c.Cache.MutexMaxRetries < 1 {
		return fmt.Errorf("CACHE_MUTEX_MAX_RETRIES must be positive, got %d", c.Cache.MutexMaxRetries)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 20,
		},
		Redis: RedisConfig{
			Driver:       KVDriverMemory,
			Addr:         "localhost:16379",
			PoolSize:     50,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			Breaker: BreakerConfig{
				MaxRequests:      5,
				Interval:         time.Minute,
				Timeout:          10 * time.Second,
				FailureThreshold: 10,
			},
		},
		Cache: CacheConfig{
			ShopStrategy:    "mutex",
			ShopTTL:         30 * time.Minute,
			NullTTL:         2 * time.Minute,
			LogicalTTL:      20 * time.Second,
			MutexLease:      10 * time.Second,
			MutexBackoff:    10 * time.Millisecond,
			MutexMaxRetries: 100,
			RebuildTimeout:  5 * time.Second,
		},
		Lock: LockConfig{
			OrderLease: 10 * time.Second,
		},
		IDGen: IDGenConfig{
			EpochSeconds: 1640995200,
			CounterTTL:   48 * time.Hour,
		},
		Worker: WorkerConfig{
			Workers:     4,
			QueueSize:   16,
			StopTimeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			PurchaseRPS:   1000,
			PurchaseBurst: 1000,
			IdleTTL:       time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
