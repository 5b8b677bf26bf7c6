// Package webblocks is a convention-over-configuration web framework where
// URL paths are derived from the names and package locations of route types
// instead of being declared by hand.
//
// # Route Manifest
//
// An application declares its route types in a manifest of Registrations.
// Each registration names a prototype, the package the type lives in, its
// parameters, and a factory that builds a fresh instance per request:
//
//	webblocks.Registration{
//	    Prototype: (*pages.MyPage)(nil),
//	    Package:   "example/views/pages/page_with_arguments",
//	    Params: []webblocks.Param{
//	        {Name: "my-int", Type: webblocks.TypeInt},
//	        {Name: "my-string", Type: webblocks.TypeString},
//	    },
//	    New: func(webblocks.Args) any { return &pages.MyPage{} },
//	}
//
// What a registration becomes is decided by the capability interfaces the
// prototype implements:
//
//   - Page: Render(ctx) (string, error) — an HTML route addressed by its
//     package's path
//   - API: Handle(ctx) (any, error) — a JSON route under /api/...
//   - Block: a Page that also declares a BlockConfig — an embeddable HTML
//     fragment with a render timeout and observer wiring
//
// A type that is both Block and API yields two routes: the block fragment
// route and a JSON endpoint under /page-api/... .
//
// # Paths
//
// Path derivation is mechanical. The root namespace and a leading "pages"
// segment are stripped from the package path; underscores become hyphens.
// Page and Block routes are addressed by package location alone. API routes
// append the type name, with suffixes (Page, Block, Api, Route, Endpoint)
// removed and the rest kebab-cased, under /api/ or /page-api/. A package
// resolving to exactly "landing" maps to "/". Every
// route answers both GET and POST; parameterized routes additionally answer
// a placeholder variant where path segments supply the arguments in
// declared order.
//
// # Lifecycle
//
// New resolves and validates the whole manifest up front: duplicate paths,
// reserved prefixes (api, static, page-api, page-block), missing
// capabilities, and nil factories all fail before a listener exists.
//
//	app, err := webblocks.New(
//	    webblocks.WithConfig(cfg),
//	    webblocks.WithRoutes(routes...),
//	    webblocks.WithLogger("web"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = app.Run()
//
// Run binds the listener first, runs startup hooks, and shuts down
// gracefully on SIGINT/SIGTERM.
//
// # Dispatch
//
// Each request binds declared parameters from URL placeholders, query, and
// form values (placeholders win), constructs a fresh handler via the
// factory, and invokes it with the request context. Binding failures return
// 400 with the offending parameter name; handler failures return a generic
// 500 carrying only a correlation ID, with the full error and a truncated
// stack going to the configured record sink. Exactly one LogRecord is
// emitted per request.
package webblocks
