package main

import (
	"log"
	"os"

	"github.com/dmitrymomot/webblocks"
	"github.com/dmitrymomot/webblocks/example/views/api"
	"github.com/dmitrymomot/webblocks/example/views/pages/dashboard"
	"github.com/dmitrymomot/webblocks/example/views/pages/dashboard/activity"
	"github.com/dmitrymomot/webblocks/example/views/pages/dashboard/stats"
	"github.com/dmitrymomot/webblocks/example/views/pages/docs"
	"github.com/dmitrymomot/webblocks/example/views/pages/landing"
	"github.com/dmitrymomot/webblocks/example/views/pages/page_with_arguments"
	"github.com/dmitrymomot/webblocks/example/views/pages/user_account"
	"github.com/dmitrymomot/webblocks/middlewares"
	"github.com/dmitrymomot/webblocks/pkg/store"
	"github.com/dmitrymomot/webblocks/pkg/templates"
)

func main() {
	cfg, err := webblocks.ConfigFromFile("example/config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	st := store.NewMemoryWith(map[string]string{
		"pets":               `["rex","whiskers"]`,
		"user:guest:name":    "Guest",
		"dashboard:activity": "page deployed",
	})
	tpl := templates.NewLoader("example/views")

	// The dashboard page resolves its blocks' mappings through the registry,
	// which exists only after New. The indirection breaks the cycle.
	var lookup dashboard.Lookup

	app, err := webblocks.New(
		webblocks.WithConfig(cfg),
		webblocks.WithLogger("example", middlewares.RequestIDExtractor()),
		webblocks.WithMiddleware(middlewares.RequestID()),
		webblocks.WithStore(st),
		webblocks.WithHealthChecks(),
		webblocks.WithRoutes(routes(st, tpl, func(path string) (*webblocks.RouteMapping, bool) {
			return lookup(path)
		})...),
	)
	if err != nil {
		log.Fatal(err)
	}
	lookup = app.Registry().Lookup

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}

// routes is the application manifest: every routable type, declared once.
func routes(st store.Store, tpl *templates.Loader, lookup dashboard.Lookup) []webblocks.Registration {
	return []webblocks.Registration{
		{
			Prototype: (*landing.LandingPage)(nil),
			Package:   "example/views/pages/landing",
			New: func(webblocks.Args) any {
				return &landing.LandingPage{Templates: tpl}
			},
		},
		{
			Prototype: (*page_with_arguments.MyPage)(nil),
			Package:   "example/views/pages/page_with_arguments",
			Params: []webblocks.Param{
				{Name: "my-int", Type: webblocks.TypeInt},
				{Name: "my-string", Type: webblocks.TypeString},
				webblocks.Param{Name: "my-boolean", Type: webblocks.TypeBool}.Optional("false"),
			},
			New: func(args webblocks.Args) any {
				return &page_with_arguments.MyPage{
					MyInt:     args.Int("my-int"),
					MyString:  args.String("my-string"),
					MyBoolean: args.Bool("my-boolean"),
				}
			},
		},
		{
			Prototype: (*user_account.AccountPage)(nil),
			Package:   "example/views/pages/user_account",
			Params: []webblocks.Param{
				webblocks.Param{Name: "user", Type: webblocks.TypeString}.Optional("guest"),
			},
			New: func(args webblocks.Args) any {
				return &user_account.AccountPage{User: args.String("user"), Store: st}
			},
		},
		{
			Prototype: (*docs.DocsPage)(nil),
			Package:   "example/views/pages/docs",
			New: func(webblocks.Args) any {
				return &docs.DocsPage{Templates: tpl}
			},
		},
		{
			Prototype: (*dashboard.DashboardPage)(nil),
			Package:   "example/views/pages/dashboard",
			New: func(webblocks.Args) any {
				return &dashboard.DashboardPage{Store: st, Routes: lookup}
			},
		},
		{
			Prototype: (*stats.StatsBlock)(nil),
			Package:   "example/views/pages/dashboard/stats",
			New: func(webblocks.Args) any {
				return &stats.StatsBlock{Store: st}
			},
		},
		{
			Prototype: (*activity.ActivityBlock)(nil),
			Package:   "example/views/pages/dashboard/activity",
			New: func(webblocks.Args) any {
				return &activity.ActivityBlock{Store: st}
			},
		},
		{
			Prototype: (*api.GetPetsEndpoint)(nil),
			Package:   "example/views/api",
			New: func(webblocks.Args) any {
				return &api.GetPetsEndpoint{Store: st}
			},
		},
		{
			Prototype: (*api.AddPetEndpoint)(nil),
			Package:   "example/views/api",
			Params: []webblocks.Param{
				{Name: "name", Type: webblocks.TypeString},
			},
			New: func(args webblocks.Args) any {
				return &api.AddPetEndpoint{Name: args.String("name"), Store: st}
			},
		},
	}
}
