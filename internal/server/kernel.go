package server

import (
	"net/http"
	"time"

	"github.com/sweetdelights/bakery/pkg/metrics"
	"github.com/sweetdelights/bakery/pkg/middleware"
	"github.com/sweetdelights/bakery/pkg/reqid"
	"github.com/sweetdelights/bakery/pkg/response"
	"github.com/sweetdelights/bakery/pkg/router"
)

// BuildHandler assembles the router with the global middleware stack and
// calls the given route-registration callbacks.
//
// Stack, outermost to innermost:
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS
//  6. Rate limiter
func BuildHandler(registerFns ...func(*router.Router)) http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus scrape endpoint — outside /api, no auth.
	r.HandleFunc("/metrics", metrics.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Endpoint not found")
	})

	for _, fn := range registerFns {
		fn(r)
	}
	return r.Handler()
}
