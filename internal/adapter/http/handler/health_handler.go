package handler

import (
	"net/http"
	"time"

	"github.com/finbridge/cardproc/internal/adapter/http/dto"
)

// ServiceVersion is reported by the root descriptor endpoint.
const ServiceVersion = "1.0.0"

// HealthHandler handles health check requests.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness returns 200 if the service is alive. The service has no external
// readiness dependencies: the batch program being absent is a degraded mode,
// not an outage.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// Root returns the service descriptor.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ServiceInfoResponse{
		Message: "Credit Card Processing API",
		Version: ServiceVersion,
	})
}
