// Package requestid carries request correlation ids through context.Context.
//
// Every call the session client and the task API make to the remote server
// sends an X-Request-ID header. Ensure reuses the id already in the context
// or creates one, so the outgoing header and the log records written while
// handling the call agree:
//
//	ctx, id := requestid.Ensure(ctx)
//	req.Header.Set(requestid.Header, id)
//
// Middleware does the same for incoming HTTP requests, and LoggerExtractor
// plugs the id into pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
//
// Client-supplied ids that are empty, longer than 128 bytes or contain
// anything but letters, digits, '-' and '_' are replaced with a new UUID.
package requestid
