package internal

// HandlerFunc is the signature for request handlers installed on the router.
// It receives a Context and returns an error. Returning a non-nil error
// triggers the application error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns. Middleware
// can inspect the request, short-circuit processing, or wrap the response.
//
// Example:
//
//	func Auth(next webblocks.HandlerFunc) webblocks.HandlerFunc {
//	    return func(c webblocks.Context) error {
//	        if !isAuthenticated(c) {
//	            return c.NoContent(http.StatusUnauthorized)
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers and middleware.
type ErrorHandler func(Context, error) error
