// Package internal provides the core types and implementation for the
// webblocks framework: route name resolution, the registry built from the
// application manifest, parameter binding, request dispatch, and the HTTP
// serving runtime.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/webblocks" instead, which re-exports the public API.
package internal
