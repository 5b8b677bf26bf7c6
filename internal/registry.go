package internal

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Page is the capability for HTML routes. A page type is constructed fresh
// per request from its bound arguments and renders a complete HTML document.
type Page interface {
	Render(ctx context.Context) (string, error)
}

// API is the capability for JSON routes. The returned value is wrapped in the
// standard success envelope unless it is a *Response, which is honored
// verbatim.
type API interface {
	Handle(ctx context.Context) (any, error)
}

// Block is the capability for server-rendered HTML fragments. A block renders
// like a page but is wrapped with refresh metadata and bounded by its
// declared render timeout. A block type that also implements API exposes a
// JSON side-channel under the page-api/ prefix.
type Block interface {
	Page
	BlockConfig() BlockConfig
}

// BlockConfig declares per-block render behavior.
type BlockConfig struct {
	// Timeout bounds how long a fragment render may block before it is
	// treated as a handler failure. Zero means DefaultBlockTimeout.
	Timeout time.Duration
}

// DefaultBlockTimeout is the render budget for blocks that do not declare one.
const DefaultBlockTimeout = time.Second

// ObserverSource is an optional capability: a block constructed with observer
// blocks exposes them here so the dispatcher can emit their identifiers in
// the wrapper metadata.
type ObserverSource interface {
	Observers() []Block
}

// Factory constructs one handler instance from bound arguments. A fresh
// instance is built per request; instances are never pooled or reused.
type Factory func(args Args) any

// Registration declares one route type in the startup manifest. The manifest
// replaces runtime classpath scanning: every routable type is listed
// explicitly and verified once, before the server binds its port.
type Registration struct {
	// Prototype is a typed zero value (usually a nil typed pointer) used for
	// capability detection and type-name derivation. It is never invoked.
	Prototype any

	// Package is the type's package path under the configured root namespace,
	// e.g. "example/routes/pages/user_account".
	Package string

	// Params is the ordered constructor parameter list.
	Params []Param

	// New builds a handler instance from bound arguments.
	New Factory
}

// RouteMapping is the derived, immutable dispatch record for one capability
// of one registered type. Path is the dispatch key; PlaceholderPath is the
// positional variant ("/p/{a}/{b}") present only for parameterized routes.
type RouteMapping struct {
	Path            string
	PlaceholderPath string
	Kind            RouteKind
	Format          Format
	TypeName        string
	Params          []Param

	factory Factory
	timeout time.Duration
}

// New constructs a fresh handler instance for this mapping.
func (m *RouteMapping) New(args Args) any {
	return m.factory(args)
}

// Timeout returns the render budget for block mappings, derived from the
// prototype's BlockConfig at build time.
func (m *RouteMapping) Timeout() time.Duration {
	return m.timeout
}

// Registry is the complete, validated route table for one root namespace.
// It is built once during startup and treated as immutable afterwards, so
// concurrent readers need no synchronization.
type Registry struct {
	root     string
	byPath   map[string]*RouteMapping
	mappings []*RouteMapping
}

// BuildRegistry derives and validates the full set of route mappings. It
// fails with a startup-fatal error on the first duplicate path, reserved
// prefix collision, capability-less registration, missing factory, or
// unconvertible parameter default. Validation covers the whole set; order of
// registrations does not affect which conflicts are found.
func BuildRegistry(root string, regs []Registration) (*Registry, error) {
	r := &Registry{
		root:   root,
		byPath: make(map[string]*RouteMapping),
	}

	for _, reg := range regs {
		typeName, err := prototypeName(reg.Prototype)
		if err != nil {
			return nil, err
		}
		if reg.New == nil {
			return nil, &NoFactoryError{TypeName: typeName}
		}
		if err := validateDefaults(typeName, reg.Params); err != nil {
			return nil, err
		}

		kinds := detectKinds(reg.Prototype)
		if len(kinds) == 0 {
			return nil, &MissingCapabilityError{TypeName: typeName}
		}

		pkgRel := PackagePath(root, reg.Package)
		for _, kind := range kinds {
			m := &RouteMapping{
				Path:     descriptors[kind].routePath(pkgRel, typeName),
				Kind:     kind,
				Format:   descriptors[kind].format,
				TypeName: typeName,
				Params:   reg.Params,
				factory:  reg.New,
			}
			if kind == KindBlock {
				m.timeout = blockTimeout(reg.Prototype)
			}
			if len(reg.Params) > 0 {
				m.PlaceholderPath = placeholderPath(m.Path, reg.Params)
			}
			if err := r.add(m); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// add records a mapping after per-route validation.
func (r *Registry) add(m *RouteMapping) error {
	if prefix := firstSegment(m.Path); isReserved(prefix) && prefix != descriptors[m.Kind].ownPrefix {
		return &ReservedPathError{Path: m.Path, Prefix: prefix, TypeName: m.TypeName}
	}
	for _, path := range []string{m.Path, m.PlaceholderPath} {
		if path == "" {
			continue
		}
		if existing, ok := r.byPath[path]; ok {
			return &DuplicateRouteError{Path: path, First: existing.TypeName, Second: m.TypeName}
		}
		r.byPath[path] = m
	}
	r.mappings = append(r.mappings, m)
	return nil
}

// Lookup resolves a mapping by exact, case-sensitive path match. Both the
// canonical path and the placeholder variant resolve to the same mapping.
func (r *Registry) Lookup(path string) (*RouteMapping, bool) {
	m, ok := r.byPath[path]
	return m, ok
}

// Mappings returns all route mappings in registration order.
func (r *Registry) Mappings() []*RouteMapping {
	return r.mappings
}

// Len returns the number of registered mappings.
func (r *Registry) Len() int {
	return len(r.mappings)
}

// detectKinds maps implemented capabilities to route kinds. Block wins over
// plain Page; API on a block-capable type becomes the page-api side-channel.
// A single type may legitimately own more than one mapping.
func detectKinds(prototype any) []RouteKind {
	var kinds []RouteKind

	_, isBlock := prototype.(Block)
	_, isPage := prototype.(Page)
	_, isAPI := prototype.(API)

	switch {
	case isBlock:
		kinds = append(kinds, KindBlock)
	case isPage:
		kinds = append(kinds, KindPage)
	}
	if isAPI {
		if isBlock {
			kinds = append(kinds, KindBlockAPI)
		} else {
			kinds = append(kinds, KindAPI)
		}
	}
	return kinds
}

// blockTimeout reads the declared render budget from the prototype, falling
// back to DefaultBlockTimeout. Calling BlockConfig on a typed nil pointer is
// safe as long as the method has a value receiver or does not dereference;
// a panicking prototype falls back to the default.
func blockTimeout(prototype any) (d time.Duration) {
	d = DefaultBlockTimeout
	b, ok := prototype.(Block)
	if !ok {
		return d
	}
	defer func() {
		if recover() != nil {
			d = DefaultBlockTimeout
		}
	}()
	if cfg := b.BlockConfig(); cfg.Timeout > 0 {
		d = cfg.Timeout
	}
	return d
}

// prototypeName derives the declared type name from a prototype value,
// unwrapping pointers.
func prototypeName(prototype any) (string, error) {
	t := reflect.TypeOf(prototype)
	if t == nil {
		return "", fmt.Errorf("registration has a nil prototype")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", fmt.Errorf("registration prototype %v is not a named type", t)
	}
	return t.Name(), nil
}

// validateDefaults converts every declared default once, so a bad default is
// a startup error instead of a per-request surprise.
func validateDefaults(typeName string, params []Param) error {
	for _, p := range params {
		if !p.HasDefault {
			continue
		}
		if _, err := convertParam(p, p.Default); err != nil {
			return fmt.Errorf("%s: invalid default for parameter %q: %w", typeName, p.Name, err)
		}
	}
	return nil
}

// placeholderPath builds the positional path variant in declared parameter
// order: "/users" with (id, tab) becomes "/users/{id}/{tab}".
func placeholderPath(path string, params []Param) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(path, "/"))
	for _, p := range params {
		b.WriteString("/{")
		b.WriteString(p.Name)
		b.WriteString("}")
	}
	return b.String()
}

func isReserved(segment string) bool {
	for _, p := range reservedPrefixes {
		if segment == p {
			return true
		}
	}
	return false
}
