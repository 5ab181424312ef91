package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 64, cfg.Server.BodyLimitMB)
	assert.Equal(t, "uploads", cfg.Storage.UploadsPrefix)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "0 */15 * * * *", cfg.Remnant.Schedule)
	assert.False(t, cfg.Remnant.SchedulerEnabled)
	assert.Equal(t, 300, cfg.Remnant.CacheTTLSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REMNANT_SCHEDULER_ENABLED", "true")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Remnant.SchedulerEnabled)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "REMNANT_SITES_FILE=/etc/apo/sites.yaml\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("REMNANT_SITES_FILE")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/etc/apo/sites.yaml", cfg.Remnant.SitesFile)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRemnantConfig_CacheTTL(t *testing.T) {
	assert.Zero(t, RemnantConfig{}.CacheTTL())
	assert.Zero(t, RemnantConfig{CacheTTLSeconds: -5}.CacheTTL())
	assert.Equal(t, 5*time.Minute, RemnantConfig{CacheTTLSeconds: 300}.CacheTTL())
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Server.Port = ""
	assert.ErrorContains(t, bad.Validate(), "server")

	bad = *cfg
	bad.Database.Driver = "postgres"
	assert.ErrorContains(t, bad.Validate(), "unsupported driver")

	bad = *cfg
	bad.Remnant.SchedulerEnabled = true
	bad.Remnant.Schedule = " "
	assert.ErrorContains(t, bad.Validate(), "without a schedule")
}
