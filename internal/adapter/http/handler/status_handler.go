package handler

import (
	"context"
	"net/http"

	"github.com/finbridge/cardproc/internal/adapter/http/dto"
	"github.com/finbridge/cardproc/internal/domain"
)

// StatusService defines the behavior needed by StatusHandler.
type StatusService interface {
	Status(ctx context.Context) domain.ProgramStatus
}

// StatusHandler reports external program availability.
type StatusHandler struct {
	statusUC StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusUC StatusService) *StatusHandler {
	return &StatusHandler{statusUC: statusUC}
}

// Status probes the batch program and reports file diagnostics.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.statusUC.Status(r.Context())
	writeJSON(w, http.StatusOK, dto.StatusFromDomain(status))
}
