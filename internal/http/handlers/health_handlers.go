package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if dbPinger == nil {
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	if err := dbPinger.PingContext(ctx); err != nil {
		logger.Error("health check failed", slog.Any("error", err))
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
