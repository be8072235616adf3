package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amal-alexander/autocomplete-keyword-engine/internal/handlers"
	"github.com/amal-alexander/autocomplete-keyword-engine/internal/keywords"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc *keywords.Service, store *keywords.Store) {
	// Initialize handlers
	keywordHandler := handlers.NewKeywordHandler(svc, store, s.Cfg)
	healthHandler := handlers.NewHealthHandler()

	// Keyword generation flow
	s.App.Get("/", keywordHandler.Index)
	s.App.Post("/generate", keywordHandler.Generate)
	s.App.Get("/export/:id", keywordHandler.Export)

	// Operational endpoints
	s.App.Get("/healthz", healthHandler.Live)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
