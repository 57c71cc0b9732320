package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "30", "-k", "12",
				"-o", "https://hr.example,https://it.example",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 30 * time.Minute,
				PasswordHashCost:            12,
				AllowedOrigins:              []string{"https://hr.example", "https://it.example"},
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "us-west-1",
				S3BaseEndpoint:              "http://endpoint",
			},
		},
		{
			name:        "non-numeric lifetime panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}

func TestParseFlags_KeepsUnsetValues(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-s", "only-secret"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "only-secret", c.SecretKey)
	assert.Equal(t, ":4000", c.EndpointAddrHTTP)
	assert.Equal(t, time.Hour, c.AccessTokenValidityDuration)
	assert.Len(t, c.AllowedOrigins, 3)
}

func TestParseFlags_SubMinuteLifetimeWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-a", ":9000"}

	c := Config{AccessTokenValidityDuration: 90 * time.Second, AllowedOrigins: []string{"https://hr.example"}}
	parseFlags(&c)

	assert.Equal(t, 90*time.Second, c.AccessTokenValidityDuration)
	assert.Equal(t, []string{"https://hr.example"}, c.AllowedOrigins)
}
