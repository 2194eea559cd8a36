package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finbridge/cardproc/internal/adapter/http/handler"
	"github.com/finbridge/cardproc/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CardHandler   *handler.CardHandler
	SignupHandler *handler.SignupHandler
	StatusHandler *handler.StatusHandler
	HealthHandler *handler.HealthHandler
	Logger        zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Service endpoints
	r.Get("/", cfg.HealthHandler.Root)
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Handle("/metrics", promhttp.Handler())

	// API (paths match the original service, no version prefix)
	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", cfg.CardHandler.Validate)
		r.Post("/calculate-interest", cfg.CardHandler.CalculateInterest)
		r.Post("/generate-statement", cfg.CardHandler.GenerateStatement)
		r.Get("/cards", cfg.CardHandler.List)
		r.Post("/signup", cfg.SignupHandler.Signup)
		r.Get("/cobol-status", cfg.StatusHandler.Status)
	})

	return r
}
