package authclient

import "time"

// Config holds client configuration.
type Config struct {
	// APIURL is the base URL of the remote API.
	APIURL string `env:"API_URL" envDefault:"http://localhost:8000"`

	// HTTPTimeout bounds every request. Zero disables the timeout.
	HTTPTimeout time.Duration `env:"AUTH_HTTP_TIMEOUT" envDefault:"10s"`

	// StorageKey is the durable storage key holding the token.
	StorageKey string `env:"AUTH_STORAGE_KEY" envDefault:"auth_token"`
}

// DefaultConfig returns the local development configuration.
func DefaultConfig() Config {
	return Config{
		APIURL:      "http://localhost:8000",
		HTTPTimeout: 10 * time.Second,
		StorageKey:  "auth_token",
	}
}
