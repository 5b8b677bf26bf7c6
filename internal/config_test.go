package internal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks/internal"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		loc, err := internal.DefaultConfig().Validate()
		require.NoError(t, err)
		require.Equal(t, time.Local, loc)
	})

	t.Run("resolves IANA timezone", func(t *testing.T) {
		t.Parallel()
		cfg := internal.DefaultConfig()
		cfg.LocalTimezone = "America/New_York"
		loc, err := cfg.Validate()
		require.NoError(t, err)
		require.Equal(t, "America/New_York", loc.String())
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		t.Parallel()
		cfg := internal.DefaultConfig()
		cfg.LocalTimezone = "Atlantis/Capital"
		_, err := cfg.Validate()
		var tz *internal.InvalidTimezoneError
		require.ErrorAs(t, err, &tz)
		require.Equal(t, "Atlantis/Capital", tz.Zone)
	})

	t.Run("rejects out-of-range ports", func(t *testing.T) {
		t.Parallel()
		for _, port := range []int{0, -1, 65536} {
			cfg := internal.DefaultConfig()
			cfg.Port = port
			_, err := cfg.Validate()
			require.Error(t, err, "port %d", port)
		}
	})

	t.Run("accepts port bounds", func(t *testing.T) {
		t.Parallel()
		for _, port := range []int{1, 65535} {
			cfg := internal.DefaultConfig()
			cfg.Port = port
			_, err := cfg.Validate()
			require.NoError(t, err, "port %d", port)
		}
	})
}

func TestConfigFromFile(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"root_namespace: app/views\nport: 9000\nlocal_timezone: Europe/Kyiv\npretty_html: true\n"), 0o600))

		cfg, err := internal.ConfigFromFile(path)
		require.NoError(t, err)
		require.Equal(t, "app/views", cfg.RootNamespace)
		require.Equal(t, 9000, cfg.Port)
		require.Equal(t, "Europe/Kyiv", cfg.LocalTimezone)
		require.True(t, cfg.PrettyHTML)
		require.True(t, cfg.PrintStartup, "absent fields keep defaults")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := internal.ConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0o600))
		_, err := internal.ConfigFromFile(path)
		require.Error(t, err)
	})
}
