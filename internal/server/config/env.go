package config

import (
	"os"
	"strings"
)

// Environment variables understood by the server. JWT_SECRET and the DSN are
// the usual way secrets reach a container.
const (
	envListenAddr  = "LISTEN_ADDR"
	envDatabaseDSN = "DATABASE_DSN"
	envJWTSecret   = "JWT_SECRET"
	envOrigins     = "ALLOWED_ORIGINS"
)

func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(envListenAddr); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envJWTSecret); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(envOrigins); ok && v != "" {
		config.AllowedOrigins = splitList(v)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
