package bootstrap

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gin-voucher-shop/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger also installs the logger as the slog default so packages that
// log through slog.Default share the same handler.
func NewLogger(cfg config.Config) *slog.Logger {
	timezone := time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.Log.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
