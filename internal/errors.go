package internal

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError represents an HTTP error with all data needed for rendering.
// It implements the error interface and provides structured data for
// error handlers.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to clients).
	Err error

	// Message is the user-facing error message.
	Message string

	// CorrelationID tracks a server-side failure across log and response.
	CorrelationID string

	// Code is the HTTP status code (e.g., 404, 500).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

func WithCorrelationID(id string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.CorrelationID = id
	}
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	e := NewHTTPError(http.StatusBadRequest, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	e := NewHTTPError(http.StatusNotFound, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	e := NewHTTPError(http.StatusInternalServerError, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsHTTPError reports whether err is or wraps an *HTTPError.
func IsHTTPError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}

// AsHTTPError extracts the HTTPError from an error chain if present.
// Returns nil if the error is not an HTTPError.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return nil
}

// Startup-fatal errors. These abort registry construction or configuration
// validation before the server accepts a single connection; they never reach
// a client.

// DuplicateRouteError reports two distinct route types computing the same path.
type DuplicateRouteError struct {
	Path   string
	First  string
	Second string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("duplicate route %q: computed by both %s and %s", e.Path, e.First, e.Second)
}

// ReservedPathError reports a route whose first path segment collides with a
// framework-reserved prefix it does not own.
type ReservedPathError struct {
	Path     string
	Prefix   string
	TypeName string
}

func (e *ReservedPathError) Error() string {
	return fmt.Sprintf("route %q of %s collides with reserved prefix %q", e.Path, e.TypeName, e.Prefix)
}

// MissingCapabilityError reports a registered type that implements none of
// the recognized route capabilities. This is an operator configuration
// mistake that must be fixed before the process will start.
type MissingCapabilityError struct {
	TypeName string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("type %s implements no recognized route capability (Page, API, or Block)", e.TypeName)
}

// NoFactoryError reports a registration without a constructor factory.
type NoFactoryError struct {
	TypeName string
}

func (e *NoFactoryError) Error() string {
	return fmt.Sprintf("registration for %s has no factory", e.TypeName)
}

// InvalidTimezoneError reports a local timezone name that does not resolve to
// an IANA location.
type InvalidTimezoneError struct {
	Zone string
	Err  error
}

func (e *InvalidTimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone %q: %v", e.Zone, e.Err)
}

func (e *InvalidTimezoneError) Unwrap() error {
	return e.Err
}

// Per-request, client-facing binding errors. These are expected user-input
// failures: they map to 400-class responses and are never logged with stacks.

// MissingParameterError reports a declared parameter absent from the request
// with no default to fall back to.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Name)
}

// TypeConversionError reports a raw parameter value that does not convert to
// the declared parameter type.
type TypeConversionError struct {
	Name string
	Raw  string
	Type ParamType
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("parameter %q: cannot convert %q to %s", e.Name, e.Raw, e.Type)
}

// bindErrorParameter returns the offending parameter name when err is a
// binding failure, and whether it was one.
func bindErrorParameter(err error) (string, bool) {
	var missing *MissingParameterError
	if errors.As(err, &missing) {
		return missing.Name, true
	}
	var conv *TypeConversionError
	if errors.As(err, &conv) {
		return conv.Name, true
	}
	return "", false
}
