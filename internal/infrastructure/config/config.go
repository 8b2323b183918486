package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is loaded once at process start and passed into every component
// constructor; nothing reads the environment after startup.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Auth  AuthConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_management"`
}

type RedisConfig struct {
	Addr            string `env:"REDIS_ADDR,              default=localhost:6379"`
	Password        string `env:"REDIS_PASSWORD"`
	DB              int    `env:"REDIS_DB,                default=0"`
	PingTimeoutSecs int    `env:"REDIS_PING_TIMEOUT_SECS, default=5"`
}

// PingTimeout returns how long to wait for the startup connectivity check.
func (r RedisConfig) PingTimeout() time.Duration {
	return time.Duration(r.PingTimeoutSecs) * time.Second
}

type AuthConfig struct {
	AccessSecret         string `env:"JWT_ACCESS_SECRET"`
	RefreshSecret        string `env:"JWT_REFRESH_SECRET"`
	Algorithm            string `env:"JWT_ALGORITHM,           default=HS256"`
	AccessTTLMins        int    `env:"ACCESS_TOKEN_TTL_MINS,   default=30"`
	RefreshTTLMins       int    `env:"REFRESH_TOKEN_TTL_MINS,  default=10080"`
	BcryptCost           int    `env:"BCRYPT_COST,             default=10"`
	HasherWorkers        int    `env:"HASHER_WORKERS,          default=0"`
	IdentityCacheTTLSecs int    `env:"IDENTITY_CACHE_TTL_SECS, default=60"`
}

// AccessTTL returns the access token lifetime as a duration.
func (a AuthConfig) AccessTTL() time.Duration {
	return time.Duration(a.AccessTTLMins) * time.Minute
}

// RefreshTTL returns the refresh token lifetime as a duration.
func (a AuthConfig) RefreshTTL() time.Duration {
	return time.Duration(a.RefreshTTLMins) * time.Minute
}

// IdentityCacheTTL returns the identity cache entry lifetime.
func (a AuthConfig) IdentityCacheTTL() time.Duration {
	return time.Duration(a.IdentityCacheTTLSecs) * time.Second
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.AccessSecret == "" || cfg.Auth.RefreshSecret == "" {
		return nil, fmt.Errorf("config: JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
	}
	// HS256 is the only signing algorithm the token service implements.
	if cfg.Auth.Algorithm != "HS256" {
		return nil, fmt.Errorf("config: unsupported JWT_ALGORITHM %q, only HS256 is supported", cfg.Auth.Algorithm)
	}
	return &cfg, nil
}
