// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] is an always-OK endpoint for process liveness.
// [ReadinessHandler] executes a set of named [Checks] in parallel with a
// shared timeout and reports aggregated service readiness.
//
// Handlers respond with plain text by default for probe compatibility.
// JSON is returned when the client sends Accept: application/json or
// ?format=json:
//
//	{
//	  "status": "healthy",
//	  "checks": {
//	    "store": {"status": "healthy"},
//	    "redis": {"status": "unhealthy", "error": "connection refused"}
//	  }
//	}
//
// Register endpoints on any router that accepts http.HandlerFunc:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "store": st.Healthcheck,
//	}, health.WithTimeout(3*time.Second)))
package health
