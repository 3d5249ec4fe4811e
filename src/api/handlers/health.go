package handlers

import (
	"context"
	"net/http"
	"time"

	"cotas/src/schemas"
)

// Healthcheck reports backend connectivity and cache occupancy.
// GET /health
func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	backendOK := h.Controller.BackendAlive(ctx)

	status := "healthy"
	code := http.StatusOK
	if !backendOK {
		status = "degraded"
		code = http.StatusInternalServerError
	}

	h.respond(w, r, schemas.HealthResponse{
		Status:           status,
		BackendConnected: backendOK,
		Timestamp:        time.Now().Format(time.RFC3339),
		CacheSize:        h.Controller.CacheSize(),
	}, code)
}
