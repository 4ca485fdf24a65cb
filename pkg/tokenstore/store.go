package tokenstore

import "context"

// DefaultKey is the storage key holding the raw session token.
const DefaultKey = "auth_token"

// Store is durable client-side key/value storage for credentials.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases underlying resources.
	Close() error
}

// IsAvailable reports whether s can persist anything at all.
func IsAvailable(s Store) bool {
	if s == nil {
		return false
	}
	_, unavailable := s.(unavailableStore)
	return !unavailable
}
