// Package config loads the process configuration from the environment.
// The resulting Config is constructed once in main and passed by value to
// each component; nothing mutates it afterwards.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs and verifies bearer tokens. Required: a process
	// without a signing key must fail at boot, not per request.
	JWTSecret string `env:"JWT_SECRET, required"`

	// AllowedOrigins is the CORS allow-list for the browser client.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000"`

	// LoginThrottle toggles the Redis-backed login attempt limiter.
	LoginThrottle    bool `env:"LOGIN_THROTTLE,      default=true"`
	LoginMaxAttempts int  `env:"LOGIN_MAX_ATTEMPTS,  default=10"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the process runs in a development-style
// deployment (pretty logs, relaxed error detail).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
