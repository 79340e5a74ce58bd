package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.InvalidateOnWrite)
	assert.Equal(t, CatalogOnErrorFallback, cfg.Catalog.OnError)
	assert.Equal(t, AuthModeRemote, cfg.Auth.Mode)
	assert.Equal(t, SessionDriverBlob, cfg.Session.Driver)
	assert.Equal(t, "mem://", cfg.Session.BucketURL)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.HTTP.AllowOrigins)
	require.NoError(t, cfg.validate())
}

func TestApplyDefaults_TrimsBaseURL(t *testing.T) {
	cfg := &Config{API: &APIConfig{BaseURL: "https://shop.example.com/api/"}}
	cfg.applyDefaults()

	assert.Equal(t, "https://shop.example.com/api", cfg.API.BaseURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown catalog policy",
			mutate:  func(c *Config) { c.Catalog.OnError = "ignore" },
			wantErr: "unknown catalog.onError policy",
		},
		{
			name:    "unknown auth mode",
			mutate:  func(c *Config) { c.Auth.Mode = "magic" },
			wantErr: "unknown auth.mode",
		},
		{
			name: "sqlite without path",
			mutate: func(c *Config) {
				c.Session.Driver = SessionDriverSQLite
				c.Session.SQLitePath = ""
			},
			wantErr: "session.sqlitePath is required",
		},
		{
			name:    "unknown session driver",
			mutate:  func(c *Config) { c.Session.Driver = "redis" },
			wantErr: "unknown session.driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  env: test
  serviceName: storefront
api:
  baseUrl: http://api.internal/api
  timeout: 3s
cache:
  ttl: 1m
  invalidateOnWrite: false
catalog:
  onError: propagate
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlContent), 0o600))

	t.Chdir(dir)
	t.Setenv("API_BASEURL", "http://override/api")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "http://override/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.InvalidateOnWrite)
	assert.Equal(t, CatalogOnErrorPropagate, cfg.Catalog.OnError)
	assert.Equal(t, "storefront", cfg.Env.ServiceName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
