package templates_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks/pkg/templates"
)

func writeTemplate(t *testing.T, root, namespace, name, content string) {
	t.Helper()
	dir := filepath.Join(root, namespace)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoaderContent(t *testing.T) {
	t.Parallel()

	t.Run("reads and caches", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeTemplate(t, root, "pages/landing", "landing.html", "<h1>${title}</h1>")

		l := templates.NewLoader(root)
		content, err := l.Content("pages/landing", "landing.html")
		require.NoError(t, err)
		require.Equal(t, "<h1>${title}</h1>", content)

		// Cached copy survives deletion of the backing file.
		require.NoError(t, os.Remove(filepath.Join(root, "pages/landing/landing.html")))
		content, err = l.Content("pages/landing", "landing.html")
		require.NoError(t, err)
		require.Equal(t, "<h1>${title}</h1>", content)
	})

	t.Run("missing file reports attempted path", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		l := templates.NewLoader(root)

		_, err := l.Content("pages/landing", "absent.html")
		var missing *templates.MissingTemplateError
		require.ErrorAs(t, err, &missing)
		require.True(t, filepath.IsAbs(missing.Path))
		require.Contains(t, missing.Path, filepath.Join("pages", "landing", "absent.html"))
		require.ErrorIs(t, missing.Err, os.ErrNotExist)
	})

	t.Run("invalidate forces re-read", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeTemplate(t, root, "pages/docs", "guide.html", "v1")

		l := templates.NewLoader(root)
		content, err := l.Content("pages/docs", "guide.html")
		require.NoError(t, err)
		require.Equal(t, "v1", content)

		writeTemplate(t, root, "pages/docs", "guide.html", "v2")
		l.Invalidate("pages/docs", "guide.html")

		content, err = l.Content("pages/docs", "guide.html")
		require.NoError(t, err)
		require.Equal(t, "v2", content)
	})
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		vars    map[string]string
		want    string
	}{
		{
			name:    "single marker",
			content: "<h1>${title}</h1>",
			vars:    map[string]string{"title": "Welcome"},
			want:    "<h1>Welcome</h1>",
		},
		{
			name:    "repeated marker",
			content: "${name} and ${name}",
			vars:    map[string]string{"name": "bob"},
			want:    "bob and bob",
		},
		{
			name:    "unknown marker left intact",
			content: "<p>${known} ${unknown}</p>",
			vars:    map[string]string{"known": "yes"},
			want:    "<p>yes ${unknown}</p>",
		},
		{
			name:    "no markers",
			content: "<p>plain</p>",
			vars:    map[string]string{"title": "unused"},
			want:    "<p>plain</p>",
		},
		{
			name:    "nil vars",
			content: "<p>${title}</p>",
			vars:    nil,
			want:    "<p>${title}</p>",
		},
		{
			name:    "unterminated marker",
			content: "<p>${title</p>",
			vars:    map[string]string{"title": "Welcome"},
			want:    "<p>${title</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, templates.Substitute(tt.content, tt.vars))
		})
	}
}
