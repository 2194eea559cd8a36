package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/adapter/http/dto"
	"github.com/finbridge/cardproc/internal/usecase"
)

// ValidateService defines the behavior needed for card validation.
type ValidateService interface {
	ValidateCard(ctx context.Context, number string) (usecase.ValidateResult, error)
}

// InterestService defines the behavior needed for interest calculation.
type InterestService interface {
	CalculateInterest(ctx context.Context, number string, customBalance *decimal.Decimal) (usecase.InterestOutput, error)
}

// StatementService defines the behavior needed for statement generation.
type StatementService interface {
	GenerateStatement(ctx context.Context, number, format string) (usecase.StatementOutput, error)
}

// ListService defines the behavior needed for card listing.
type ListService interface {
	ListCards(ctx context.Context) (usecase.ListOutput, error)
}

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	validateUC  ValidateService
	interestUC  InterestService
	statementUC StatementService
	listUC      ListService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(validateUC ValidateService, interestUC InterestService, statementUC StatementService, listUC ListService) *CardHandler {
	return &CardHandler{
		validateUC:  validateUC,
		interestUC:  interestUC,
		statementUC: statementUC,
		listUC:      listUC,
	}
}

// Validate validates a card number.
func (h *CardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid card number format", "INVALID_FORMAT")
		return
	}

	result, err := h.validateUC.ValidateCard(r.Context(), req.CardNumber)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ValidateFromUseCase(result))
}

// CalculateInterest computes one month of interest for a card.
func (h *CardHandler) CalculateInterest(w http.ResponseWriter, r *http.Request) {
	var req dto.InterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid card number format", "INVALID_FORMAT")
		return
	}

	out, err := h.interestUC.CalculateInterest(r.Context(), req.CardNumber, req.CustomBalance)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.InterestFromUseCase(out))
}

// GenerateStatement generates a statement. The text format returns the raw
// statement body as text/plain; the json format returns the structured
// statement.
func (h *CardHandler) GenerateStatement(w http.ResponseWriter, r *http.Request) {
	var req dto.StatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid card number format", "INVALID_FORMAT")
		return
	}

	out, err := h.statementUC.GenerateStatement(r.Context(), req.CardNumber, req.Format)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if out.Statement == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Generation-Method", out.Method)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(out.Text))
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(out.Statement, out.Method))
}

// List lists all cards on file with masked numbers.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.listUC.ListCards(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListFromUseCase(out))
}
