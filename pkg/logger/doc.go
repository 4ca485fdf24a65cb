// Package logger builds the *slog.Logger shared by the session client, the
// auth state provider and the reminder banner.
//
// New creates a logger configured by Option functions: output format (text
// or json), level, static attributes and ContextExtractor callbacks that pull
// values such as the request id out of context.Context on every record.
//
// Failures that the rest of the kit deliberately swallows (session checks
// that degrade to "logged out", reminder acknowledgements that leave the item
// in place) are reported through this channel, so operators keep visibility
// without changing what the user sees.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "remindctl"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "session check failed",
//	    logger.Endpoint("/api/auth/me"),
//	    logger.StatusCode(401),
//	)
//
// Helpers such as Error and StatusCode return an empty slog.Attr for zero
// values, so they can be passed unconditionally.
package logger
