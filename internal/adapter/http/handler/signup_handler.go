package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finbridge/cardproc/internal/adapter/http/dto"
	"github.com/finbridge/cardproc/internal/usecase"
)

// SignupService defines the behavior needed by SignupHandler.
type SignupService interface {
	Signup(ctx context.Context, input usecase.SignupInput) (usecase.SignupOutput, error)
}

// SignupHandler handles customer signup requests.
type SignupHandler struct {
	signupUC SignupService
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(signupUC SignupService) *SignupHandler {
	return &SignupHandler{signupUC: signupUC}
}

// Signup registers a customer and puts their card on file.
func (h *SignupHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields", "MISSING_FIELDS")
		return
	}

	out, err := h.signupUC.Signup(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.SignupResponse{
		Success:    true,
		CustomerID: out.CustomerID,
		CardOnFile: out.CardOnFile,
		Message:    "Signup successful",
	})
}
