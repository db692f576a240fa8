package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	AppEnv string
	Port   string

	StorageDriver string
	MongoURI      string
	MongoDatabase string

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigins []string
	LogLevel       string
	RequestTimeout time.Duration

	CascadeInTransaction bool
	DebugRoutes          bool

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// Load reads the configuration and validates it for the API server.
func Load() (*Config, error) {
	cfg := Read()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads .env when present, then the process environment, which wins.
// Nothing is validated, so tools that only need the database settings can
// run without a JWT secret.
func Read() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file loaded, using process environment")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	// /debug/token mints tokens for anyone; Validate refuses it in production.
	v.SetDefault("DEBUG_ROUTES", v.GetString("APP_ENV") != "production")

	return &Config{
		AppEnv:               v.GetString("APP_ENV"),
		Port:                 v.GetString("PORT"),
		StorageDriver:        strings.ToLower(v.GetString("STORAGE_DRIVER")),
		MongoURI:             v.GetString("MONGO_URI"),
		MongoDatabase:        v.GetString("MONGO_DATABASE"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		TokenTTL:             v.GetDuration("TOKEN_TTL"),
		AllowedOrigins:       splitList(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:             v.GetString("LOG_LEVEL"),
		RequestTimeout:       v.GetDuration("REQUEST_TIMEOUT"),
		CascadeInTransaction: v.GetBool("CASCADE_IN_TRANSACTION"),
		DebugRoutes:          v.GetBool("DEBUG_ROUTES"),
		CloudinaryCloudName:  v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:     v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:  v.GetString("CLOUDINARY_API_SECRET"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", StorageMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "catalog")
	v.SetDefault("TOKEN_TTL", "720h")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("CASCADE_IN_TRANSACTION", false)
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	switch c.StorageDriver {
	case StorageMongo, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("ALLOWED_ORIGINS must list at least one origin")
	}
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			if len(c.AllowedOrigins) > 1 {
				return errors.New("ALLOWED_ORIGINS must not mix * with explicit origins")
			}
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("ALLOWED_ORIGINS entry %q must start with http:// or https://, or be *", origin)
		}
	}
	if c.DebugRoutes && c.IsProduction() {
		return errors.New("DEBUG_ROUTES must be false when APP_ENV=production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
