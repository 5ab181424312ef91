package logger

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RayIDKey is both the Fiber locals key and the log field of the request id.
const RayIDKey = "ray_id"

// AppName is attached to every entry of a logger built by New.
const AppName = "apo-analyzer"

// New builds the process logger. Level accepts any zap level name and an
// empty level means info. Debug switches to zap's development defaults.
func New(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	case "", "json":
		zc.Encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("app", AppName)), nil
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if id, ok := c.Locals(RayIDKey).(string); ok && id != "" {
		return l.With(zap.String(RayIDKey, id))
	}
	return l
}

// ForSite tags l with the site an entry concerns.
func ForSite(l *zap.Logger, address, name string) *zap.Logger {
	return l.With(zap.String("site", address), zap.String("site_name", name))
}
