package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks/pkg/logger"
)

type ctxKey struct{}

func tenantExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("tenant", v), true
	}
	return slog.Attr{}, false
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	t.Run("injects extracted attribute", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), tenantExtractor))

		ctx := context.WithValue(context.Background(), ctxKey{}, "acme")
		log.InfoContext(ctx, "order placed", "amount", 42)

		entry := logLine(t, &buf)
		require.Equal(t, "order placed", entry["msg"])
		require.Equal(t, "acme", entry["tenant"])
		require.Equal(t, float64(42), entry["amount"])
	})

	t.Run("skips when context has no value", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), tenantExtractor))

		log.Info("order placed")

		entry := logLine(t, &buf)
		require.NotContains(t, entry, "tenant")
	})

	t.Run("nil extractors are ignored", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, tenantExtractor, nil))

		ctx := context.WithValue(context.Background(), ctxKey{}, "acme")
		require.NotPanics(t, func() {
			log.InfoContext(ctx, "still works")
		})
		require.Equal(t, "acme", logLine(t, &buf)["tenant"])
	})

	t.Run("extraction survives WithAttrs and WithGroup", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), tenantExtractor))
		log = log.With("component", "billing").WithGroup("req")

		ctx := context.WithValue(context.Background(), ctxKey{}, "acme")
		log.InfoContext(ctx, "charge", "id", "ch_1")

		entry := logLine(t, &buf)
		require.Equal(t, "billing", entry["component"])

		group, ok := entry["req"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "ch_1", group["id"])
		require.Equal(t, "acme", group["tenant"])
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	require.NotPanics(t, func() {
		log.Error("dropped", "key", "value")
	})
}
