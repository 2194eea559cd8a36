package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/usecase"
)

// ValidateRequest represents a card validation request.
type ValidateRequest struct {
	CardNumber string `json:"cardNumber"`
}

// InterestRequest represents an interest calculation request. CustomBalance
// overrides the stored balance when present.
type InterestRequest struct {
	CardNumber    string           `json:"cardNumber"`
	CustomBalance *decimal.Decimal `json:"customBalance,omitempty"`
}

// StatementRequest represents a statement generation request. Format is
// "json" or "text"; empty means json.
type StatementRequest struct {
	CardNumber string `json:"cardNumber"`
	Format     string `json:"format,omitempty"`
}

// SignupRequest represents a customer signup request.
type SignupRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	CardNumber      string `json:"cardNumber"`
	ExpiryDate      string `json:"expiryDate"`
	CVV             string `json:"cvv"`
	PropertyDetails string `json:"propertyDetails,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SignupRequest) ToUseCaseInput() usecase.SignupInput {
	return usecase.SignupInput{
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		CardNumber:      r.CardNumber,
		ExpiryDate:      r.ExpiryDate,
		CVV:             r.CVV,
		PropertyDetails: r.PropertyDetails,
	}
}
