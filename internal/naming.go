package internal

import (
	"strings"
	"unicode"
)

// StripSuffixes removes the first matching suffix from the ordered candidate
// list, case-insensitively. The name is returned unchanged when no suffix
// matches or when stripping would leave an empty name. Only one suffix is ever
// removed; stripping is not iterated.
func StripSuffixes(name string, suffixes []string) string {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if len(s) == 0 || len(s) >= len(name) {
			continue
		}
		if strings.HasSuffix(lower, strings.ToLower(s)) {
			return name[:len(name)-len(s)]
		}
	}
	return name
}

// ToKebabCase converts a PascalCase or camelCase identifier to lowercase
// hyphen-separated words: "MyClassName" becomes "my-class-name". A run of
// capitals followed by a lowercase letter breaks before the last capital, so
// "HTTPServer" becomes "http-server" and a trailing acronym stays a single
// word ("ServeHTTP" becomes "serve-http"). Underscores become hyphens. The
// function is idempotent on input that is already kebab-case.
func ToKebabCase(identifier string) string {
	runes := []rune(identifier)
	var b strings.Builder
	b.Grow(len(identifier) + 4)

	for i, r := range runes {
		if r == '_' {
			b.WriteRune('-')
			continue
		}
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteRune('-')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PackagePath converts a fully-qualified package path into a route path
// fragment relative to the root namespace: the root prefix and its trailing
// separator are stripped, slashes are preserved as path separators, and
// underscores become hyphens ("user_account" becomes "user-account").
// Returns an empty string when full equals root.
func PackagePath(root, full string) string {
	rel := strings.TrimPrefix(full, root)
	rel = strings.TrimPrefix(rel, "/")
	return strings.ReplaceAll(rel, "_", "-")
}

// stripSegmentPrefix removes a leading path segment when it matches prefix
// exactly: stripSegmentPrefix("pages/home", "pages") == "home".
func stripSegmentPrefix(path, prefix string) string {
	if path == prefix {
		return ""
	}
	return strings.TrimPrefix(path, prefix+"/")
}
