// Package database handles database connections and schema checks.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. SQLite is meant for single-node installs and tests.
//
// # Connect
//
// Connect opens the configured driver, tunes the pool and pings the server
// within the configured timeout.
//
// # Schema
//
// Migrate runs GORM auto-migration for the given models. GetTableColumns and
// MissingColumns inspect a live table so callers can report drift on tables
// they do not own.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "analysis_runs", []string{"digest"})
package database
