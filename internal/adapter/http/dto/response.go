package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/domain"
	"github.com/finbridge/cardproc/internal/usecase"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidateResponse represents a card validation result.
type ValidateResponse struct {
	Valid            bool   `json:"valid"`
	CardNumber       string `json:"cardNumber"`
	CardType         string `json:"cardType"`
	ValidationMethod string `json:"validationMethod"`
}

// ValidateFromUseCase converts a validation result to a response.
func ValidateFromUseCase(result usecase.ValidateResult) ValidateResponse {
	return ValidateResponse{
		Valid:            result.Valid,
		CardNumber:       result.MaskedNumber,
		CardType:         string(result.CardType),
		ValidationMethod: result.Method,
	}
}

// InterestResponse represents an interest calculation result.
type InterestResponse struct {
	CurrentBalance    decimal.Decimal `json:"currentBalance"`
	APR               decimal.Decimal `json:"apr"`
	MonthlyRate       decimal.Decimal `json:"monthlyRate"`
	InterestCharge    decimal.Decimal `json:"interestCharge"`
	NewBalance        decimal.Decimal `json:"newBalance"`
	CalculationMethod string          `json:"calculationMethod"`
}

// InterestFromUseCase converts an interest computation to a response.
func InterestFromUseCase(out usecase.InterestOutput) InterestResponse {
	return InterestResponse{
		CurrentBalance:    out.CurrentBalance,
		APR:               out.APR,
		MonthlyRate:       out.MonthlyRate,
		InterestCharge:    out.InterestCharge,
		NewBalance:        out.NewBalance,
		CalculationMethod: out.Method,
	}
}

// StatementResponse represents a statement in JSON form.
type StatementResponse struct {
	StatementDate    string          `json:"statementDate"`
	CardNumber       string          `json:"cardNumber"`
	CardholderName   string          `json:"cardholderName"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	CreditLimit      decimal.Decimal `json:"creditLimit"`
	AvailableCredit  decimal.Decimal `json:"availableCredit"`
	APR              decimal.Decimal `json:"apr"`
	MinimumPayment   decimal.Decimal `json:"minimumPayment"`
	DueDate          string          `json:"dueDate"`
	GenerationMethod string          `json:"generationMethod"`
}

// StatementFromDomain converts a statement to a response.
func StatementFromDomain(s *domain.Statement, method string) StatementResponse {
	return StatementResponse{
		StatementDate:    s.StatementDate,
		CardNumber:       s.CardNumber,
		CardholderName:   s.CardholderName,
		CurrentBalance:   s.CurrentBalance,
		CreditLimit:      s.CreditLimit,
		AvailableCredit:  s.AvailableCredit,
		APR:              s.APR,
		MinimumPayment:   s.MinimumPayment,
		DueDate:          s.DueDate,
		GenerationMethod: method,
	}
}

// CardSummaryResponse represents one card in a listing. CreditLimit is
// omitted when the source of the listing does not report it.
type CardSummaryResponse struct {
	CardNumber     string           `json:"cardNumber"`
	CardholderName string           `json:"cardholderName"`
	Balance        decimal.Decimal  `json:"balance"`
	CreditLimit    *decimal.Decimal `json:"creditLimit,omitempty"`
}

// ListCardsResponse represents the card listing.
type ListCardsResponse struct {
	Cards           []CardSummaryResponse `json:"cards"`
	RetrievalMethod string                `json:"retrievalMethod"`
}

// ListFromUseCase converts a card listing to a response.
func ListFromUseCase(out usecase.ListOutput) ListCardsResponse {
	cards := make([]CardSummaryResponse, len(out.Cards))
	for i, c := range out.Cards {
		cards[i] = CardSummaryResponse{
			CardNumber:     c.CardNumber,
			CardholderName: c.CardholderName,
			Balance:        c.Balance,
			CreditLimit:    c.CreditLimit,
		}
	}
	return ListCardsResponse{Cards: cards, RetrievalMethod: out.Method}
}

// SignupResponse represents a successful signup.
type SignupResponse struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customerId"`
	CardOnFile string `json:"cardOnFile"`
	Message    string `json:"message"`
}

// FileStatResponse represents file diagnostics in the status response.
type FileStatResponse struct {
	Path       string     `json:"path"`
	Exists     bool       `json:"exists"`
	SizeBytes  int64      `json:"sizeBytes"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
}

// StatusResponse represents external program availability diagnostics.
type StatusResponse struct {
	Available  bool             `json:"available"`
	Executable FileStatResponse `json:"executable"`
	DataFile   FileStatResponse `json:"dataFile"`
	CheckedAt  time.Time        `json:"checkedAt"`
}

// StatusFromDomain converts program status to a response.
func StatusFromDomain(s domain.ProgramStatus) StatusResponse {
	return StatusResponse{
		Available:  s.Available,
		Executable: fileStatFromDomain(s.Executable),
		DataFile:   fileStatFromDomain(s.DataFile),
		CheckedAt:  s.CheckedAt,
	}
}

func fileStatFromDomain(fs domain.FileStat) FileStatResponse {
	resp := FileStatResponse{
		Path:      fs.Path,
		Exists:    fs.Exists,
		SizeBytes: fs.SizeBytes,
	}
	if fs.Exists {
		mod := fs.ModifiedAt
		resp.ModifiedAt = &mod
	}
	return resp
}

// HealthResponse represents the liveness check body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ServiceInfoResponse represents the root service descriptor.
type ServiceInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
