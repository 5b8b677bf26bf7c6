package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/webblocks/pkg/health"
	"github.com/dmitrymomot/webblocks/pkg/logger"
	"github.com/dmitrymomot/webblocks/pkg/store"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App orchestrates the application lifecycle: it resolves the route manifest
// into URL paths at construction time, installs the resolved routes on a chi
// router, and manages serving and graceful shutdown.
// App is immutable after creation - all configuration is done via New().
type App struct {
	router          chi.Router
	config          Config
	registry        *Registry
	dispatcher      *Dispatcher
	local           *time.Location
	errorHandler    ErrorHandler
	notFoundHandler HandlerFunc
	healthConfig    *healthConfig
	logger          *slog.Logger
	sink            RecordSink
	store           store.Store
	registrations   []Registration
	binderOpts      []BinderOption
	middlewares     []Middleware
	staticRoutes    []staticRoute
}

// staticRoute represents a static file handler mount point.
type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates a new application with the given options. All route manifest
// validation happens here: duplicate or reserved paths, missing capabilities,
// nil factories, and config problems are reported before any listener exists.
//
// Example:
//
//	app, err := webblocks.New(
//	    webblocks.WithConfig(cfg),
//	    webblocks.WithRoutes(routes...),
//	)
func New(opts ...Option) (*App, error) {
	a := &App{
		router: chi.NewRouter(),
		config: DefaultConfig(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	local, err := a.config.Validate()
	if err != nil {
		return nil, err
	}
	a.local = local

	reg, err := BuildRegistry(a.config.RootNamespace, a.registrations)
	if err != nil {
		return nil, err
	}
	a.registry = reg

	if a.sink == nil {
		a.sink = NewSlogSink(a.logger)
	}
	a.dispatcher = NewDispatcher(NewBinder(a.binderOpts...), a.sink, a.local, a.config.PrettyHTML)

	a.setupRoutes()
	return a, nil
}

// Router returns the underlying chi.Router for the App.
func (a *App) Router() chi.Router {
	return a.router
}

// Registry returns the resolved route registry.
func (a *App) Registry() *Registry {
	return a.registry
}

// ServeHTTP makes the App usable anywhere an http.Handler is expected,
// httptest servers included.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Run starts the HTTP server and blocks until shutdown. The listen address
// defaults to the configured port. If a store is configured, its shutdown
// runs automatically during graceful shutdown.
//
// Example:
//
//	err := app.Run(webblocks.Logger(slog))
func (a *App) Run(opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	if cfg.address == "" {
		cfg.address = fmt.Sprintf(":%d", a.config.Port)
	}
	if cfg.logger == nil {
		cfg.logger = a.logger
	}

	shutdownHooks := cfg.shutdownHooks
	if a.store != nil {
		shutdownHooks = append(shutdownHooks, func(ctx context.Context) error {
			return a.store.Close()
		})
	}

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         cfg.address,
		logger:          cfg.logger,
		printStartup:    a.config.PrintStartup,
		shutdownTimeout: cfg.shutdownTimeout,
		startupHooks:    cfg.startupHooks,
		shutdownHooks:   shutdownHooks,
		baseCtx:         cfg.baseCtx,
	})
}

// setupRoutes installs middleware, static mounts, health endpoints, and the
// resolved convention routes on the chi router.
func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, health.LivenessHandler())
		a.router.Get(a.healthConfig.readinessPath, health.ReadinessHandler(a.healthConfig.checks))
	}

	// Every convention route answers GET and POST. Parameterized mappings
	// additionally answer on their placeholder variant, where path segments
	// supply the arguments.
	r := &routerAdapter{router: a.router, app: a}
	for _, m := range a.registry.Mappings() {
		h := a.dispatcher.HandlerFor(m)
		r.GET(m.Path, h)
		r.POST(m.Path, h)
		if m.PlaceholderPath != "" {
			r.GET(m.PlaceholderPath, h)
			r.POST(m.PlaceholderPath, h)
		}
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a.logger)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError handles errors from handlers using the configured error handler.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		_ = a.errorHandler(c, err)
	} else {
		http.Error(c.Response(), "Internal Server Error", http.StatusInternalServerError)
	}
}

// healthConfig holds health check endpoint configuration.
type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during readiness probe.
//
// Example:
//
//	webblocks.WithReadinessCheck("store", st.Healthcheck)
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if c.checks == nil {
			c.checks = make(health.Checks)
		}
		c.checks[name] = fn
	}
}
