package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, raw logs included.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
}

// BodyLimit returns the body limit in bytes, falling back to 64 MiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 64 << 20
	}
	return c.BodyLimitMB << 20
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("server port is empty")
	}
	if c.BodyLimitMB < 0 {
		return fmt.Errorf("body limit must not be negative: %d", c.BodyLimitMB)
	}
	return nil
}
