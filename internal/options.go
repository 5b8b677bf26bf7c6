package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/webblocks/pkg/health"
	"github.com/dmitrymomot/webblocks/pkg/logger"
	"github.com/dmitrymomot/webblocks/pkg/store"
)

// Option configures the application.
type Option func(*App)

// WithRoutes adds route registrations to the application manifest.
// Each registration declares a route type, its package, and its parameters;
// paths are derived from those at construction time.
//
// Example:
//
//	webblocks.WithRoutes(
//	    webblocks.Registration{
//	        Prototype: (*pages.LandingPage)(nil),
//	        Package:   "example/views/pages/landing",
//	        New:       func(webblocks.Args) any { return &pages.LandingPage{} },
//	    },
//	)
func WithRoutes(regs ...Registration) Option {
	return func(a *App) {
		a.registrations = append(a.registrations, regs...)
	}
}

// WithConfig sets the application configuration.
// Validation happens in New, after all options are applied.
func WithConfig(cfg Config) Option {
	return func(a *App) {
		a.config = cfg
	}
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithRecordSink sets the destination for per-request log records.
// Defaults to a slog-backed sink using the app logger.
func WithRecordSink(sink RecordSink) Option {
	return func(a *App) {
		if sink != nil {
			a.sink = sink
		}
	}
}

// WithBinderOptions configures the parameter binder.
//
// Example:
//
//	webblocks.WithBinderOptions(webblocks.WithSanitizedStrings())
func WithBinderOptions(opts ...BinderOption) Option {
	return func(a *App) {
		a.binderOpts = append(a.binderOpts, opts...)
	}
}

// WithStore configures the storage collaborator. Its healthcheck is wired
// into readiness when health endpoints are enabled, and its Close runs
// during graceful shutdown.
//
// Example:
//
//	st := store.NewMemory()
//	webblocks.New(
//	    webblocks.WithStore(st),
//	)
func WithStore(s store.Store) Option {
	return func(a *App) {
		a.store = s
		if a.healthConfig != nil && s != nil {
			WithReadinessCheck("store", s.Healthcheck)(a.healthConfig)
		}
	}
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled. Files are served with default cache headers.
// The "/static/" prefix is reserved for this purpose and never collides with
// convention routes.
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
	return func(a *App) {
		subFS, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		fileServer := http.FileServerFS(subFS)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Block directory listings
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}

			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")

			fileServer.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler, pattern})
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a mounted handler returns a non-nil error. Convention routes
// report failures through the dispatcher instead and never reach this.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
//
// Example:
//
//	webblocks.WithNotFoundHandler(func(c webblocks.Context) error {
//	    return c.String(http.StatusNotFound, "Page not found")
//	})
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
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
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(health.Checks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
		if a.store != nil {
			WithReadinessCheck("store", a.store.Healthcheck)(cfg)
		}
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
//
// Example:
//
//	webblocks.New(
//	    webblocks.WithLogger("web", requestIDExtractor),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
//
// Example:
//
//	customLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	webblocks.New(
//	    webblocks.WithCustomLogger(customLogger),
//	)
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
