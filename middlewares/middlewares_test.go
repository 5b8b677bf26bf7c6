package middlewares_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks"
	"github.com/dmitrymomot/webblocks/middlewares"
	"github.com/dmitrymomot/webblocks/pkg/logger"
)

type PingPage struct{}

func (p *PingPage) Render(ctx context.Context) (string, error) {
	return "<p>pong</p>", nil
}

func newApp(t *testing.T, opts ...webblocks.Option) *webblocks.App {
	t.Helper()

	opts = append(opts,
		webblocks.WithConfig(webblocks.Config{
			RootNamespace: "test/views",
			Port:          8080,
		}),
		webblocks.WithRoutes(webblocks.Registration{
			Prototype: (*PingPage)(nil),
			Package:   "test/views/pages/landing",
			New:       func(webblocks.Args) any { return &PingPage{} },
		}),
	)

	app, err := webblocks.New(opts...)
	require.NoError(t, err)
	return app
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when absent", func(t *testing.T) {
		t.Parallel()
		app := newApp(t, webblocks.WithMiddleware(middlewares.RequestID()))

		rr := httptest.NewRecorder()
		app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		id := rr.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})

	t.Run("preserves upstream id", func(t *testing.T) {
		t.Parallel()
		app := newApp(t, webblocks.WithMiddleware(middlewares.RequestID()))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "upstream-42")
		rr := httptest.NewRecorder()
		app.ServeHTTP(rr, req)

		require.Equal(t, "upstream-42", rr.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator and response header", func(t *testing.T) {
		t.Parallel()
		app := newApp(t, webblocks.WithMiddleware(middlewares.RequestID(
			middlewares.WithRequestIDGenerator(func() string { return "fixed-id" }),
			middlewares.WithRequestIDResponseHeader("X-Trace-ID"),
		)))

		rr := httptest.NewRecorder()
		app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "fixed-id", rr.Header().Get("X-Trace-ID"))
		require.Empty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("extractor injects request_id into logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(
			slog.NewJSONHandler(&buf, nil),
			middlewares.RequestIDExtractor(),
		))

		logging := func(next webblocks.HandlerFunc) webblocks.HandlerFunc {
			return func(c webblocks.Context) error {
				c.LogInfo("handling", "path", c.Request().URL.Path)
				return next(c)
			}
		}

		app := newApp(t,
			webblocks.WithCustomLogger(log),
			webblocks.WithMiddleware(middlewares.RequestID(
				middlewares.WithRequestIDGenerator(func() string { return "req-7" }),
			), logging),
		)

		rr := httptest.NewRecorder()
		app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		require.Contains(t, buf.String(), `"request_id":"req-7"`)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers mounted handler panic", func(t *testing.T) {
		t.Parallel()
		app := newApp(t, webblocks.WithMiddleware(middlewares.Recover()))
		app.Router().Get("/explode", func(w http.ResponseWriter, r *http.Request) {
			panic("wiring fault")
		})

		rr := httptest.NewRecorder()
		require.NotPanics(t, func() {
			app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/explode", nil))
		})
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("error handler receives PanicError", func(t *testing.T) {
		t.Parallel()

		var caught error
		app := newApp(t,
			webblocks.WithMiddleware(middlewares.Recover()),
			webblocks.WithErrorHandler(func(c webblocks.Context, err error) error {
				caught = err
				return c.NoContent(http.StatusServiceUnavailable)
			}),
		)
		app.Router().Get("/explode", func(w http.ResponseWriter, r *http.Request) {
			panic("wiring fault")
		})

		rr := httptest.NewRecorder()
		app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/explode", nil))

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		require.True(t, middlewares.IsPanicError(caught))

		pe, ok := middlewares.AsPanicError(caught)
		require.True(t, ok)
		require.Equal(t, "wiring fault", pe.Value)
		require.NotEmpty(t, pe.Stack)
	})

	t.Run("stack capture can be disabled", func(t *testing.T) {
		t.Parallel()

		var caught error
		app := newApp(t,
			webblocks.WithMiddleware(middlewares.Recover(middlewares.WithRecoverDisablePrintStack())),
			webblocks.WithErrorHandler(func(c webblocks.Context, err error) error {
				caught = err
				return c.NoContent(http.StatusInternalServerError)
			}),
		)
		app.Router().Get("/explode", func(w http.ResponseWriter, r *http.Request) {
			panic("wiring fault")
		})

		rr := httptest.NewRecorder()
		app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/explode", nil))

		pe, ok := middlewares.AsPanicError(caught)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("wrapped detection", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("request failed: %w", &middlewares.PanicError{Value: "boom"})
		require.True(t, middlewares.IsPanicError(err))
		require.False(t, middlewares.IsPanicError(errors.New("plain")))
	})
}
