package cmd

import (
	"fmt"

	"apo-analyzer/core/config"
	"apo-analyzer/core/database"
	"apo-analyzer/core/logger"
	"apo-analyzer/core/storage"
	"apo-analyzer/feature/remnant"
	"apo-analyzer/feature/remnant/sites"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env bundles what every command needs.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &env{cfg: cfg, log: l}, nil
}

// connectDB opens and migrates the database. When required is false a
// failure is logged and a nil db returned.
func (e *env) connectDB(required bool) (*gorm.DB, error) {
	db, err := database.Connect(e.cfg.Database)
	if err != nil {
		if required {
			return nil, err
		}
		e.log.Warn("Optional database connection failed", zap.Error(err))
		return nil, nil
	}
	return db, nil
}

// service builds the remnant service. sitesFile overrides the configured
// site table when set.
func (e *env) service(client storage.Client, db *gorm.DB, sitesFile string) (*remnant.Service, error) {
	if sitesFile == "" {
		sitesFile = e.cfg.Remnant.SitesFile
	}
	table, err := sites.Load(sitesFile)
	if err != nil {
		return nil, err
	}
	return remnant.NewService(client, e.cfg.Storage.Bucket, e.log, db, e.options(table)), nil
}

func (e *env) options(table map[string]string) remnant.Options {
	return remnant.Options{
		UploadsPrefix: e.cfg.Storage.UploadsPrefix,
		Sites:         table,
		CacheTTL:      e.cfg.Remnant.CacheTTL(),
	}
}
