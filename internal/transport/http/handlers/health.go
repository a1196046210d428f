package http_handlers

import (
	"context"
	"net/http"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/response"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, healthStatus{Status: "ok"})
}

// Readyz handles GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			response.WriteJSON(w, http.StatusServiceUnavailable, healthStatus{
				Status: "unavailable",
				Error:  "database unavailable",
			})
			return
		}
	}

	response.WriteJSON(w, http.StatusOK, healthStatus{Status: "ready"})
}
