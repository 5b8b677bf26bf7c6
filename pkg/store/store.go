package store

import (
	"context"
	"errors"
)

// Sentinel errors for the store package.
var (
	// ErrNotFound is returned when a key does not exist.
	ErrNotFound = errors.New("store: key not found")

	// ErrEmptyConnectionURL is returned when no connection URL is provided.
	ErrEmptyConnectionURL = errors.New("store: empty connection URL")

	// ErrFailedToParseURL is returned for malformed connection URLs.
	ErrFailedToParseURL = errors.New("store: failed to parse connection URL")

	// ErrConnectionFailed is returned when the backend cannot be reached.
	ErrConnectionFailed = errors.New("store: failed to establish connection")
)

// Store is the key-value collaborator handed to route handlers. Handlers
// receive it through constructor injection instead of reaching for globals,
// which keeps them testable with the in-memory implementation.
type Store interface {
	// Get retrieves a value by key. Returns ErrNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under the given key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Healthcheck validates backend connectivity for readiness probes.
	Healthcheck(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
