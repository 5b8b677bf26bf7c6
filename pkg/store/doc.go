// Package store provides the key-value storage collaborator injected into
// route handlers.
//
// Two implementations ship with the package: [Memory], a mutex-guarded map
// for development and tests, and [Redis], backed by a Redis server with
// connection retry and a readiness healthcheck.
//
//	st, err := store.OpenRedis(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app, err := webblocks.New(
//	    webblocks.WithStore(st),
//	    webblocks.WithHealthChecks(),
//	)
//
// Handlers depend on the [Store] interface, never a concrete backend, so
// tests can swap in a Memory store without a running server.
package store
