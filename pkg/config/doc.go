// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type
// is parsed once and cached for the life of the process; ResetCache clears
// the cache in tests.
//
//	var cfg authclient.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors wrap the sentinels in errors.go with errors.Join, so callers can
// match them with errors.Is.
package config
