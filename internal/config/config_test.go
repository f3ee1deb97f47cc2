package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "khit", cfg.Mongo.Database)
	assert.False(t, cfg.Mongo.Configured())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "khit-backend", cfg.Auth.JWTIssuer)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/config.yaml")
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	yaml := `
server:
  port: 9000
mongo:
  uri: mongodb://localhost:27017
data:
  source: mongo
auth:
  jwt_secret: ` + testSecret + `
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	// ENV beats YAML, YAML beats defaults.
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "mongo", cfg.Data.Source)
	assert.True(t, cfg.Mongo.Configured())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Auth: AuthConfig{
				JWTSecret:      testSecret,
				AccessTokenTTL: 15 * time.Minute,
				SessionTTL:     720 * time.Hour,
				BcryptCost:     10,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "short" },
			wantErr: "jwt secret",
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(c *Config) { c.Auth.BcryptCost = 40 },
			wantErr: "bcrypt cost",
		},
		{
			name:    "zero port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "port",
		},
		{
			name:    "unknown data source",
			mutate:  func(c *Config) { c.Data.Source = "postgres" },
			wantErr: "unknown source",
		},
		{
			name:    "negative session ttl",
			mutate:  func(c *Config) { c.Auth.SessionTTL = -time.Hour },
			wantErr: "session ttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAdminEmailList(t *testing.T) {
	c := AuthConfig{AdminEmails: " Admin@khit.store ,, staff@khit.store"}
	assert.Equal(t, []string{"admin@khit.store", "staff@khit.store"}, c.AdminEmailList())

	assert.Nil(t, AuthConfig{}.AdminEmailList())
}
