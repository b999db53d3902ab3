package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session storage drivers.
const (
	StorageFile  = "file"
	StorageRedis = "redis"
	StorageMongo = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API      APIConfig
	Security SecurityConfig
	Session  SessionConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// APIConfig points the console at the cargo REST API.
type APIConfig struct {
	BaseURL string `env:"API_BASE_URL, default=http://127.0.0.1:8000"`
	// Timeout bounds one API request; 0 disables the bound.
	Timeout time.Duration `env:"API_TIMEOUT, default=30s"`
}

type SecurityConfig struct {
	CookieSecure bool `env:"COOKIE_SECURE, default=false"`
	CSRFEnabled  bool `env:"CSRF_ENABLED,  default=true"`
}

// SessionConfig selects where browser sessions are persisted.
type SessionConfig struct {
	Storage string `env:"SESSION_STORAGE, default=file"`
	Dir     string `env:"SESSION_DIR,     default=.sessions"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cargo_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Development reports whether the console runs with developer defaults.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	switch c.Session.Storage {
	case StorageFile, StorageRedis, StorageMongo:
	default:
		return fmt.Errorf("config: unknown SESSION_STORAGE %q", c.Session.Storage)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL is required")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("config: API_TIMEOUT must not be negative")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// LoadFrom reads configuration from l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
