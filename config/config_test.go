package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "PORT", "STORAGE_DRIVER", "MONGO_URI", "MONGO_DATABASE",
	"JWT_SECRET", "TOKEN_TTL", "ALLOWED_ORIGINS", "LOG_LEVEL", "REQUEST_TIMEOUT",
	"CASCADE_IN_TRANSACTION", "DEBUG_ROUTES",
	"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET",
}

// clearEnv blanks every key; viper treats an empty variable as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMongo, cfg.StorageDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "catalog", cfg.MongoDatabase)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.CascadeInTransaction)
	assert.True(t, cfg.DebugRoutes)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com ,")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("CASCADE_IN_TRANSACTION", "true")
	t.Setenv("DEBUG_ROUTES", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.CascadeInTransaction)
	assert.False(t, cfg.DebugRoutes)
}

func TestLoad_DebugRoutesOffInProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.DebugRoutes)
}

func TestLoad_RejectsDebugRoutesInProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DEBUG_ROUTES", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEBUG_ROUTES")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			StorageDriver:  StorageMongo,
			JWTSecret:      "s3cret",
			TokenTTL:       time.Hour,
			AllowedOrigins: []string{"*"},
			RequestTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "postgres" }, wantErr: "STORAGE_DRIVER"},
		{name: "no origins", mutate: func(c *Config) { c.AllowedOrigins = nil }, wantErr: "ALLOWED_ORIGINS"},
		{name: "explicit origins", mutate: func(c *Config) {
			c.AllowedOrigins = []string{"http://localhost:3000", "https://shop.example.com"}
		}},
		{name: "origin without scheme", mutate: func(c *Config) { c.AllowedOrigins = []string{"localhost:3000"} }, wantErr: "http://"},
		{name: "wildcard mixed with origins", mutate: func(c *Config) {
			c.AllowedOrigins = []string{"*", "https://shop.example.com"}
		}, wantErr: "ALLOWED_ORIGINS"},
		{name: "debug routes in production", mutate: func(c *Config) {
			c.AppEnv = "production"
			c.DebugRoutes = true
		}, wantErr: "DEBUG_ROUTES"},
		{name: "debug routes in development", mutate: func(c *Config) { c.DebugRoutes = true }},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }, wantErr: "TOKEN_TTL"},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }, wantErr: "REQUEST_TIMEOUT"},
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

func TestRead_SkipsValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_DATABASE", "catalog_test")

	cfg := Read()
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, "catalog_test", cfg.MongoDatabase)
}
