package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/face-verify/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	faceHandler := handlers.NewFaceHandler(s.service)

	// Health check (reports process liveness only, never fails)
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/embed", faceHandler.Embed)
		r.Post("/verify", faceHandler.Verify)
	})
}
