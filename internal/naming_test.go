package internal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks/internal"
)

func TestToKebabCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "pascal case", input: "MyClassName", expected: "my-class-name"},
		{name: "camel case", input: "myClassName", expected: "my-class-name"},
		{name: "single word", input: "Landing", expected: "landing"},
		{name: "acronym prefix", input: "HTTPServer", expected: "http-server"},
		{name: "trailing acronym", input: "ServeHTTP", expected: "serve-http"},
		{name: "acronym in middle", input: "MyHTTPServer", expected: "my-http-server"},
		{name: "digits attach to word", input: "Page2Block", expected: "page2-block"},
		{name: "underscores become hyphens", input: "user_account", expected: "user-account"},
		{name: "already kebab", input: "my-class-name", expected: "my-class-name"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, internal.ToKebabCase(tt.input))
		})
	}
}

func TestToKebabCaseIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"MyClassName", "HTTPServer", "ServeHTTP", "user_account"} {
		once := internal.ToKebabCase(input)
		require.Equal(t, once, internal.ToKebabCase(once), "not idempotent for %q", input)
	}
}

func TestStripSuffixes(t *testing.T) {
	t.Parallel()

	suffixes := []string{"Page", "Block", "Api", "Route", "Endpoint"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "page suffix", input: "LandingPage", expected: "Landing"},
		{name: "block suffix", input: "StatsBlock", expected: "Stats"},
		{name: "endpoint suffix", input: "GetPetsEndpoint", expected: "GetPets"},
		{name: "case-insensitive match", input: "GetPetsAPI", expected: "GetPets"},
		{name: "no suffix", input: "Dashboard", expected: "Dashboard"},
		{name: "only one suffix stripped", input: "MyPageBlock", expected: "MyPage"},
		{name: "name equal to suffix stays intact", input: "Page", expected: "Page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, internal.StripSuffixes(tt.input, suffixes))
		})
	}
}

func TestPackagePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		root     string
		full     string
		expected string
	}{
		{name: "strips root prefix", root: "example/views", full: "example/views/pages/landing", expected: "pages/landing"},
		{name: "underscores become hyphens", root: "example/views", full: "example/views/pages/user_account", expected: "pages/user-account"},
		{name: "equal to root", root: "example/views", full: "example/views", expected: ""},
		{name: "nested packages keep slashes", root: "app", full: "app/pages/admin/reports", expected: "pages/admin/reports"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, internal.PackagePath(tt.root, tt.full))
		})
	}
}
