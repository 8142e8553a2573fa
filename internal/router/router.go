package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusai-backend/internal/handlers"
	"campusai-backend/internal/middleware"
)

func New(
	aiHandler *handlers.AIHandler,
	documentHandler *handlers.DocumentHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))
	r.Use(middleware.Metrics)

	// Health check
	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		// ──── AI Routes ────
		r.Route("/ai", func(r chi.Router) {
			r.Post("/generate", aiHandler.Generate)
			r.Post("/summarize", aiHandler.Summarize)
			r.Post("/viva", aiHandler.Viva)
			r.Post("/grade", aiHandler.Grade)
			r.Post("/simplify", aiHandler.Simplify)
			r.Post("/chat", aiHandler.Chat)
		})

		// ──── Document Routes ────
		r.Route("/documents", func(r chi.Router) {
			r.Post("/extract", documentHandler.Extract)
		})
	})

	return r
}
