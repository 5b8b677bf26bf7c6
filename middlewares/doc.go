// Package middlewares provides HTTP middleware for webblocks applications.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. It checks
// incoming headers for an existing ID or generates a UUID.
//
//	app, err := webblocks.New(
//	    webblocks.WithLogger("web", middlewares.RequestIDExtractor()),
//	    webblocks.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// With RequestIDExtractor wired into the logger, every log entry carries a
// request_id attribute.
//
// # Recover
//
// Recover catches panics in handlers mounted next to the convention routes
// and converts them into a PanicError for the global ErrorHandler:
//
//	webblocks.WithMiddleware(
//	    middlewares.Recover(),
//	)
package middlewares
