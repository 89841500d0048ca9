/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /api/loans/*          Schedule, payment and savings computation
  /api/calculations/*   Stored computation history
  /api/scenarios/*      Built-in demo loans
  /metrics              Prometheus metrics

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/loans", func(r chi.Router) {
			r.Post("/schedule", h.ComputeSchedule)
			r.Post("/payment", h.QuotePayment)
			r.Post("/savings", h.CompareSavings)
		})

		r.Route("/calculations", func(r chi.Router) {
			r.Get("/", h.ListCalculations)
			r.Get("/{id}", h.GetCalculation)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/{id}/run", h.RunScenario)
		})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Minimal index for humans hitting the root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Loan Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Loan Engine API</h1>
<ul>
<li>POST /api/loans/schedule - amortization schedule</li>
<li>POST /api/loans/payment - level-payment quote</li>
<li>POST /api/loans/savings - prepayment savings</li>
<li><a href="/api/calculations">/api/calculations</a> - history</li>
<li><a href="/api/scenarios">/api/scenarios</a> - demo loans</li>
<li><a href="/metrics">/metrics</a> - prometheus metrics</li>
</ul>
</body>
</html>`))
	})

	return r
}
