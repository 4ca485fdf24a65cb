package tokenstore

import (
	"context"
	"fmt"
	"time"
)

// Driver names accepted by Config.Driver.
const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
	DriverNone   = "none"
)

// Config selects and configures the durable token storage.
type Config struct {
	Driver string `env:"TOKEN_STORE" envDefault:"file"`

	// Dir is used by the file driver. Empty means ~/.config/remindkit.
	Dir string `env:"TOKEN_STORE_DIR"`

	RedisURL            string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPrefix         string        `env:"TOKEN_STORE_REDIS_PREFIX" envDefault:"remindkit:"`
	RedisTTL            time.Duration `env:"TOKEN_STORE_REDIS_TTL" envDefault:"0s"`
	RedisRetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RedisRetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
	RedisConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns the file driver rooted at the default directory.
func DefaultConfig() Config {
	return Config{
		Driver:              DriverFile,
		RedisURL:            "redis://localhost:6379/0",
		RedisPrefix:         "remindkit:",
		RedisRetryAttempts:  3,
		RedisRetryInterval:  time.Second,
		RedisConnectTimeout: 10 * time.Second,
	}
}

// Open builds the Store described by cfg.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverFile, "":
		dir := cfg.Dir
		if dir == "" {
			d, err := DefaultDir()
			if err != nil {
				// No home directory: behave like an environment without storage.
				return Unavailable(), nil
			}
			dir = d
		}
		return NewFileStore(dir), nil
	case DriverRedis:
		client, err := ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, WithKeyPrefix(cfg.RedisPrefix), WithTTL(cfg.RedisTTL)), nil
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverNone:
		return Unavailable(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
