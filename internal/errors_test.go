package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks/internal"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("constructors set codes", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, http.StatusBadRequest, internal.ErrBadRequest("bad input").Code)
		require.Equal(t, http.StatusNotFound, internal.ErrNotFound("no such thing").Code)
		require.Equal(t, http.StatusInternalServerError, internal.ErrInternal("boom").Code)
		require.Equal(t, http.StatusTeapot, internal.NewHTTPError(http.StatusTeapot, "short and stout").Code)
	})

	t.Run("message is the error string", func(t *testing.T) {
		t.Parallel()
		err := internal.ErrNotFound("user not found")
		require.EqualError(t, err, "user not found")
		require.Equal(t, http.StatusText(http.StatusNotFound), err.StatusText())
	})

	t.Run("options attach cause and correlation id", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("pg: connection refused")
		err := internal.ErrInternal("storage unavailable",
			internal.WithError(cause),
			internal.WithCorrelationID("abc-123"),
		)
		require.ErrorIs(t, err, cause)
		require.Equal(t, "abc-123", err.CorrelationID)
	})

	t.Run("detection through wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("handler failed: %w", internal.ErrBadRequest("bad input"))
		require.True(t, internal.IsHTTPError(wrapped))

		he := internal.AsHTTPError(wrapped)
		require.NotNil(t, he)
		require.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("plain errors are not http errors", func(t *testing.T) {
		t.Parallel()
		err := errors.New("plain")
		require.False(t, internal.IsHTTPError(err))
		require.Nil(t, internal.AsHTTPError(err))
	})
}

func TestStartupErrors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate route names both types", func(t *testing.T) {
		t.Parallel()
		err := &internal.DuplicateRouteError{Path: "/user-account", First: "AccountPage", Second: "UserAccountPage"}
		require.Contains(t, err.Error(), "/user-account")
		require.Contains(t, err.Error(), "AccountPage")
		require.Contains(t, err.Error(), "UserAccountPage")
	})

	t.Run("invalid timezone unwraps cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("unknown time zone")
		err := &internal.InvalidTimezoneError{Zone: "Atlantis/Capital", Err: cause}
		require.ErrorIs(t, err, cause)
		require.Contains(t, err.Error(), "Atlantis/Capital")
	})
}
