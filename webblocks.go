package webblocks

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/webblocks/internal"
	"github.com/dmitrymomot/webblocks/pkg/health"
	"github.com/dmitrymomot/webblocks/pkg/logger"
	"github.com/dmitrymomot/webblocks/pkg/store"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It resolves the route manifest, serves HTTP, and manages graceful shutdown.
	App = internal.App

	// Config holds application-level settings.
	Config = internal.Config

	// Router is the interface for mounting extra handlers next to the
	// convention-resolved routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from mounted handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// BinderOption configures the parameter binder.
	BinderOption = internal.BinderOption

	// Registration declares one route type in the application manifest.
	Registration = internal.Registration

	// Factory constructs a fresh handler instance from bound arguments.
	Factory = internal.Factory

	// Param declares one route parameter: wire name, type, optional default.
	Param = internal.Param

	// ParamType identifies a parameter's Go type.
	ParamType = internal.ParamType

	// Args carries the bound, typed arguments of one request.
	Args = internal.Args

	// Page is the capability interface for HTML-rendering route types.
	Page = internal.Page

	// API is the capability interface for JSON-returning route types.
	API = internal.API

	// Block is the capability interface for embeddable page fragments.
	Block = internal.Block

	// BlockConfig declares a block's rendering budget.
	BlockConfig = internal.BlockConfig

	// ObserverSource is implemented by blocks that expose observer blocks.
	ObserverSource = internal.ObserverSource

	// BlockInstance pairs a constructed block with its mapping and arguments
	// for page assembly.
	BlockInstance = internal.BlockInstance

	// BlockEdge declares an observed-observer relationship between two
	// assembled block instances.
	BlockEdge = internal.BlockEdge

	// RouteKind identifies how a route was classified.
	RouteKind = internal.RouteKind

	// RouteMapping is one resolved route: URL path, kind, params, factory.
	RouteMapping = internal.RouteMapping

	// Registry holds the resolved route mappings.
	Registry = internal.Registry

	// Response lets an API handler take full control of status, headers,
	// and body instead of the default JSON envelope.
	Response = internal.Response

	// LogRecord is the per-request structured record handed to the sink.
	LogRecord = internal.LogRecord

	// ErrorDetail carries failure specifics inside a LogRecord.
	ErrorDetail = internal.ErrorDetail

	// RecordSink receives exactly one LogRecord per dispatched request.
	RecordSink = internal.RecordSink

	// SinkFunc adapts a function to the RecordSink interface.
	SinkFunc = internal.SinkFunc

	// HTTPError is an error with an associated HTTP status code.
	HTTPError = internal.HTTPError

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// ResponseWriter wraps http.ResponseWriter with status and size tracking.
	ResponseWriter = internal.ResponseWriter
)

// Route kinds.
const (
	KindPage     = internal.KindPage
	KindAPI      = internal.KindAPI
	KindBlock    = internal.KindBlock
	KindBlockAPI = internal.KindBlockAPI
)

// Parameter types.
const (
	TypeInt     = internal.TypeInt
	TypeInt64   = internal.TypeInt64
	TypeFloat64 = internal.TypeFloat64
	TypeFloat32 = internal.TypeFloat32
	TypeBool    = internal.TypeBool
	TypeString  = internal.TypeString
)

// DefaultBlockTimeout is the render budget applied when a block's
// BlockConfig leaves Timeout at zero.
const DefaultBlockTimeout = internal.DefaultBlockTimeout

// Constructors

// New creates a new application with the given options. The whole route
// manifest is resolved and validated here; a conflicting or malformed
// manifest fails before any listener exists.
//
// Example:
//
//	app, err := webblocks.New(
//	    webblocks.WithConfig(cfg),
//	    webblocks.WithRoutes(routes.All()...),
//	    webblocks.WithLogger("web"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = app.Run()
func New(opts ...Option) (*App, error) {
	return internal.New(opts...)
}

// ConfigFromFile loads a Config from a YAML file.
func ConfigFromFile(path string) (Config, error) {
	return internal.ConfigFromFile(path)
}

// AssembleBlocks renders a set of block instances with explicit observer
// edges, sharing one ID space so observer references resolve across the
// whole assembly.
func AssembleBlocks(ctx context.Context, instances []BlockInstance, edges []BlockEdge) (string, error) {
	return internal.AssembleBlocks(ctx, instances, edges)
}

// App options

// WithRoutes adds route registrations to the application manifest.
func WithRoutes(regs ...Registration) Option {
	return internal.WithRoutes(regs...)
}

// WithConfig sets the application configuration.
func WithConfig(cfg Config) Option {
	return internal.WithConfig(cfg)
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithRecordSink sets the destination for per-request log records.
func WithRecordSink(sink RecordSink) Option {
	return internal.WithRecordSink(sink)
}

// WithBinderOptions configures the parameter binder.
func WithBinderOptions(opts ...BinderOption) Option {
	return internal.WithBinderOptions(opts...)
}

// WithSanitizedStrings strips markup from bound string parameters.
func WithSanitizedStrings() BinderOption {
	return internal.WithSanitizedStrings()
}

// WithStore configures the storage collaborator.
func WithStore(s store.Store) Option {
	return internal.WithStore(s)
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled. Files are served with default cache headers.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	webblocks.New(
//	    webblocks.WithStaticFiles("/static/", assets, "public"),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets a custom error handler for mounted handler errors.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	webblocks.WithHealthChecks(
//	    webblocks.WithReadinessCheck("redis", st.Healthcheck),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health options

// WithLivenessPath sets a custom liveness endpoint path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Address overrides the listen address derived from the configured port.
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the runtime logger for startup and shutdown messages.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run after the listener is bound but
// before the server accepts requests.
func StartupHook(fn func(ctx context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(ctx context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

var _ http.Handler = (*App)(nil)
