// Package templates provides a file-content collaborator for HTML-rendering
// route handlers.
//
// A [Loader] is rooted at a directory and resolves files relative to a
// handler's namespace:
//
//	tpl := templates.NewLoader("example/views")
//
//	content, err := tpl.Content("pages/landing", "landing.html")
//
// Contents are cached after the first read, with singleflight deduplication
// of concurrent first reads. A missing file error carries the absolute path
// the loader attempted.
//
// [Substitute] performs ${key} replacement over loaded content:
//
//	html := templates.Substitute(content, map[string]string{"title": "Home"})
package templates
