// Package config handles configuration for the API server: built-in
// defaults, an optional JSON file, environment variables and command-line
// flags, applied in that order.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the employeehub server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the REST API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects in-memory storage.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: fixed lifetime of an issued token.
//   - PasswordHashCost: bcrypt work factor.
//   - AllowedOrigins: CORS origins allowed to call the API with credentials.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint:
//     object storage for profile pictures. An empty bucket disables uploads.
//   - PictureURLValidityDuration: lifetime of presigned picture URLs.
type Config struct {
	EndpointAddrHTTP            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	PasswordHashCost            int
	AllowedOrigins              []string
	S3RootUser                  string
	S3RootPassword              string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
	PictureURLValidityDuration  time.Duration
}

// LoadDefaults populates Config with development defaults. The secret key is
// left empty so the server generates a random one at startup.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":4000"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.AccessTokenValidityDuration = time.Hour
	c.PasswordHashCost = 10
	c.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:5174", "http://localhost:5175"}
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "employee-profiles"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PictureURLValidityDuration = 15 * time.Minute
}

// LoadConfig builds a Config from defaults, then the JSON file, then the
// environment and finally command-line flags. An invalid result panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("access token validity must be positive, got %s", c.AccessTokenValidityDuration)
	}
	if c.PictureURLValidityDuration <= 0 {
		return fmt.Errorf("picture url validity must be positive, got %s", c.PictureURLValidityDuration)
	}
	return nil
}
