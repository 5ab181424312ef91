package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"apo-analyzer/core/database"
	"apo-analyzer/core/logger"
	"apo-analyzer/core/server"
	"apo-analyzer/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the whole process configuration, one section per package.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage holding raw logs.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Remnant holds configuration for the analyzer feature.
	Remnant RemnantConfig `mapstructure:"remnant"`
}

// RemnantConfig configures the remnant analyzer.
type RemnantConfig struct {
	// SitesFile is an optional YAML site table replacing the built-in one.
	SitesFile string `mapstructure:"sites_file" default:""`
	// SchedulerEnabled turns on periodic re-analysis of the newest upload.
	SchedulerEnabled bool `mapstructure:"scheduler_enabled" default:"false"`
	// Schedule is a six-field cron expression (seconds first).
	Schedule string `mapstructure:"schedule" default:"0 */15 * * * *"`
	// CacheTTLSeconds keeps analysis results of stored uploads in memory.
	// Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// CacheTTL returns the result cache lifetime; zero when caching is off.
func (r RemnantConfig) CacheTTL() time.Duration {
	if r.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// Validate checks the sections the server depends on.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("database: unsupported driver %q", c.Database.Driver)
	}
	if c.Remnant.SchedulerEnabled && strings.TrimSpace(c.Remnant.Schedule) == "" {
		return fmt.Errorf("remnant: scheduler enabled without a schedule")
	}
	return nil
}

// LoadConfig reads dir/.env (if present, overriding the process environment)
// and then the environment itself. Keys map as REMNANT_SCHEDULE -> remnant.schedule.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// registerDefaults walks t and sets every leaf key to its default tag. Keys
// without a default are still registered so AutomaticEnv can fill them.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
