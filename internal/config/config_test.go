package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "orders_db", cfg.Mongo.Database)
	assert.Equal(t, "orders", cfg.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, PaymentModeMock, cfg.Payment.Mode)
	assert.False(t, cfg.Payment.ForceFail)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "orders_test")
	t.Setenv("PAYMENT_MODE", "real")
	t.Setenv("PAYMENT_FORCE_FAIL", "true")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "orders_test", cfg.Mongo.Database)
	assert.Equal(t, PaymentModeReal, cfg.Payment.Mode)
	assert.True(t, cfg.Payment.ForceFail)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 8181
mongo:
  database: from_file
payment:
  mode: mock
  force_fail: true
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "from_file", cfg.Mongo.Database)
	assert.True(t, cfg.Payment.ForceFail)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "orders", cfg.Mongo.Collection)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mongo:\n  database: from_file\n"), 0o600))
	t.Setenv("MONGO_DB", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Mongo.Database)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "orders_db", cfg.Mongo.Database)
}

func TestLoad_UnknownPaymentMode(t *testing.T) {
	t.Setenv("PAYMENT_MODE", "stripe")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown payment mode")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  ServerConfig{Port: 8000},
			Mongo:   MongoConfig{URI: "mongodb://mongo:27017", Database: "orders_db", Collection: "orders"},
			Payment: PaymentConfig{Mode: PaymentModeMock},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "empty uri", mutate: func(c *Config) { c.Mongo.URI = "" }, wantErr: true},
		{name: "empty database", mutate: func(c *Config) { c.Mongo.Database = "" }, wantErr: true},
		{name: "empty collection", mutate: func(c *Config) { c.Mongo.Collection = "" }, wantErr: true},
		{name: "real mode", mutate: func(c *Config) { c.Payment.Mode = PaymentModeReal }, wantErr: false},
		{name: "empty mode", mutate: func(c *Config) { c.Payment.Mode = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
