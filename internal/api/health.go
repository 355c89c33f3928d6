package api

import (
	"context"
	"net/http"
)

// Pinger reports storage liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports service and storage health.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a HealthHandler over the given database.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			JSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
