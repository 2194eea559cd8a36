package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finbridge/cardproc/internal/adapter/http/dto"
	"github.com/finbridge/cardproc/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with a stable machine-readable code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeDomainError maps a domain error to its HTTP status, message, and code.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCardNumber):
		writeError(w, http.StatusBadRequest, "Invalid card number format", "INVALID_FORMAT")
	case errors.Is(err, domain.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, "Invalid statement format", "INVALID_FORMAT")
	case errors.Is(err, domain.ErrCardFailsLuhn):
		writeError(w, http.StatusBadRequest, "Invalid card number", "INVALID_CARD")
	case errors.Is(err, domain.ErrInvalidExpiry):
		writeError(w, http.StatusBadRequest, "Invalid expiry date format", "INVALID_EXPIRY")
	case errors.Is(err, domain.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields", "MISSING_FIELDS")
	case errors.Is(err, domain.ErrCardExists):
		writeError(w, http.StatusBadRequest, "Card already on file", "CARD_EXISTS")
	case errors.Is(err, domain.ErrCardNotFound):
		writeError(w, http.StatusNotFound, "Card not found", "CARD_NOT_FOUND")
	case errors.Is(err, domain.ErrExternalProcess),
		errors.Is(err, domain.ErrExternalTimeout),
		errors.Is(err, domain.ErrUnexpectedOutput):
		writeError(w, http.StatusInternalServerError, "COBOL processing failed", "COBOL_ERROR")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error", "SERVER_ERROR")
	}
}
