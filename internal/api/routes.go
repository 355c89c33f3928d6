package api

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the HTTP routes and middleware stack.
func NewRouter(h *Handler, health *HealthHandler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/health", health.Health)
	r.Post("/chat", h.Chat)
	r.Post("/quiz", h.Quiz)

	return r
}
