package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/novamente1/Intel-Mng-for-legal-and-real-estate/internal/config"
)

// StatusHandler reports service identity and the loaded configuration
type StatusHandler struct {
	service string
	version string
	config  *config.Config
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service, version string, cfg *config.Config) *StatusHandler {
	return &StatusHandler{
		service: service,
		version: version,
		config:  cfg,
	}
}

// StatusResponse represents the status payload
type StatusResponse struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Port        int    `json:"port"`
}

// ServeHTTP handles the status request
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StatusResponse{
		Service:     h.service,
		Version:     h.version,
		Environment: h.config.Environment,
		Port:        h.config.Port,
	})
}
