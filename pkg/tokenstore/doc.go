// Package tokenstore provides durable client-side storage for the session
// token.
//
// A Store is a small key/value interface. Shipped implementations:
//
//   - FileStore: one 0600 file per key under ~/.config/remindkit (default).
//   - RedisStore: keys in Redis, for clients sharing one session.
//   - MemoryStore: process memory, mostly for tests.
//   - Unavailable: environments with no durable storage; every call fails
//     with ErrUnavailable and consumers start tokenless.
//
// Open picks an implementation from Config, which can be loaded from the
// environment with pkg/config:
//
//	var cfg tokenstore.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	store, err := tokenstore.Open(ctx, cfg)
package tokenstore
