package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"microcat/internal/handlers/api"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Categorizer api.Categorizer
	Store       api.Pinger
	Gatherer    prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	categorizeHandler := api.NewCategorizeHandler(deps.Categorizer)
	probeHandler := api.NewProbeHandler(deps.Store)

	s.App.Post("/categorize", categorizeHandler.Categorize)

	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}
