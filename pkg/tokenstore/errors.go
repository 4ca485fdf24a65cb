package tokenstore

import "errors"

var (
	// ErrNotFound indicates no value is stored under the key
	ErrNotFound = errors.New("tokenstore.not_found")

	// ErrUnavailable indicates durable storage does not exist in this environment
	ErrUnavailable = errors.New("tokenstore.unavailable")

	// ErrInvalidKey indicates an empty or malformed key
	ErrInvalidKey = errors.New("tokenstore.invalid_key")

	// ErrUnknownDriver indicates the configured driver is not supported
	ErrUnknownDriver = errors.New("tokenstore.unknown_driver")

	// ErrRedisNotReady indicates the redis server did not answer within the retry budget
	ErrRedisNotReady = errors.New("tokenstore.redis_not_ready")

	// ErrFailedToParseRedisURL indicates the redis connection URL is invalid
	ErrFailedToParseRedisURL = errors.New("tokenstore.redis_url_invalid")
)
