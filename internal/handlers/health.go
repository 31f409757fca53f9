package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthHandler reports process liveness and the active environment
type HealthHandler struct {
	environment string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{
		environment: environment,
	}
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// ServeHTTP handles the health check request
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{
		Status:      "ok",
		Environment: h.environment,
	})
}
