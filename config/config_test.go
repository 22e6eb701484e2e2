package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, vars map[string]string) *AppConfig {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}

	cfg := &AppConfig{}
	require.NoError(t, env.Parse(cfg))
	cfg.Sanitize()
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"UPSTREAM_BASE_URL": "https://settle.example.com",
	})

	assert.False(t, cfg.IsDev)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.Equal(t, "settle", cfg.Postgres.Name)
	assert.True(t, cfg.Postgres.Enabled)
	assert.Equal(t, "role", cfg.Auth.RoleClaim)
	assert.Equal(t, "credential:", cfg.Auth.CredentialPrefix)
	assert.Equal(t, "credential:logout", cfg.Auth.LogoutChannel)
	assert.Equal(t, "/login", cfg.Auth.LoginPath)
	assert.Equal(t, 60*time.Second, cfg.Upstream.Timeout)
}

func TestUpstreamBaseURLRequired(t *testing.T) {
	cfg := &AppConfig{}
	err := env.Parse(cfg)
	assert.Error(t, err)
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"UPSTREAM_BASE_URL": "https://settle.example.com",
		"UPSTREAM_TIMEOUT":  "0s",
		"AUTH_LOGIN_PATH":   "signin",
	})

	assert.Equal(t, 60*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "/signin", cfg.Auth.LoginPath)
}

func TestNodeEnvFallbackEnablesDevMode(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"UPSTREAM_BASE_URL": "https://settle.example.com",
		"NODE_ENV":          "development",
	})

	assert.True(t, cfg.IsDev)
}
