package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger indica si el storage responde.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health responde 200 si el storage responde y 503 si no. Con pinger nil
// (storage en memoria) siempre está sano.
// @Summary Healthcheck
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down", "error": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
