package internal

import "strings"

// RouteKind identifies which capability a route mapping was derived from.
// The kind determines the path derivation rule, the response serialization
// format, and which reserved path prefix (if any) the route legitimately owns.
type RouteKind int

const (
	// KindPage is a full HTML page, addressed by its package location.
	KindPage RouteKind = iota
	// KindAPI is a JSON endpoint under the api/ prefix.
	KindAPI
	// KindBlock is a server-rendered HTML fragment with observer metadata.
	KindBlock
	// KindBlockAPI is a JSON action endpoint scoped to a block, under page-api/.
	KindBlockAPI
)

func (k RouteKind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindAPI:
		return "api"
	case KindBlock:
		return "block"
	case KindBlockAPI:
		return "block-api"
	default:
		return "unknown"
	}
}

// Format is the response serialization format of a route.
type Format int

const (
	FormatHTML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "html"
}

// routeSuffixes is the ordered list of type-name suffixes stripped before
// kebab-casing. Only the first match is removed.
var routeSuffixes = []string{"Page", "Block", "Api", "Route", "Endpoint"}

// reservedPrefixes are first path segments owned by the framework. A computed
// path may only start with one of these when the prefix belongs to the
// route's own kind.
var reservedPrefixes = []string{"api", "static", "page-api", "page-block"}

// pagesNamespace is the conventional sub-package holding page and block types.
// It is stripped from page-flavored route paths.
const pagesNamespace = "pages"

// descriptor is the per-kind path policy. One descriptor exists per RouteKind;
// kind selection happens in the registry via capability detection, not here.
type descriptor struct {
	kind      RouteKind
	format    Format
	ownPrefix string // reserved first segment this kind owns, "" for none
}

var descriptors = map[RouteKind]descriptor{
	KindPage:     {kind: KindPage, format: FormatHTML},
	KindBlock:    {kind: KindBlock, format: FormatHTML},
	KindAPI:      {kind: KindAPI, format: FormatJSON, ownPrefix: "api"},
	KindBlockAPI: {kind: KindBlockAPI, format: FormatJSON, ownPrefix: "page-api"},
}

// routePath computes the canonical dispatch path for a route type. pkgRel is
// the namespace-relative package path (already hyphenated), typeName the
// declared type name. The returned path always starts with "/".
//
// Page and Block routes are addressed purely by package location with the
// "pages" segment stripped; the literal result "landing" rewrites to the site
// root. API and BlockAPI routes append the kebab-cased, suffix-stripped type
// name under their owned prefix.
func (d descriptor) routePath(pkgRel, typeName string) string {
	name := ToKebabCase(StripSuffixes(typeName, routeSuffixes))

	switch d.kind {
	case KindPage, KindBlock:
		p := stripSegmentPrefix(pkgRel, pagesNamespace)
		if p == "landing" {
			return "/"
		}
		return "/" + p
	case KindAPI:
		return joinPath("api", stripSegmentPrefix(pkgRel, "api"), name)
	case KindBlockAPI:
		return joinPath("page-api", stripSegmentPrefix(pkgRel, pagesNamespace), name)
	}
	return "/" + pkgRel
}

// joinPath joins non-empty segments with "/" and prepends the root slash.
func joinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return "/" + strings.Join(parts, "/")
}

// firstSegment returns the first path segment of a route path without the
// leading slash: firstSegment("/api/pets") == "api".
func firstSegment(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}
