// Package config provides configuration management for the analyzer.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key, body limit
//   - Storage: S3/MinIO credentials, bucket and uploads prefix
//   - Log: logging level and format
//   - Database: MySQL or SQLite connection details
//   - Remnant: site table file, scheduler and result cache
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
