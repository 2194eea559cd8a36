package usecase

import (
	"context"

	"github.com/finbridge/cardproc/internal/domain"
)

// CardStore defines data access for the fixed-width card record file.
type CardStore interface {
	List(ctx context.Context) ([]domain.Card, error)
	FindByNumber(ctx context.Context, number string) (domain.Card, error)
	Exists(ctx context.Context, number string) (bool, error)
	Append(ctx context.Context, card domain.Card) error
}

// CustomerLog defines append access to the customer profile log.
type CustomerLog interface {
	Append(ctx context.Context, profile domain.CustomerProfile) error
}

// IDGenerator generates unique customer IDs.
type IDGenerator interface {
	Generate() string
}

// ExternalDriver is the strategy backed by the legacy batch program. Its
// availability must be probed before every attempt and never cached.
type ExternalDriver interface {
	Available() bool
	ValidateCard(ctx context.Context, number string) (bool, error)
	CalculateInterest(ctx context.Context, number string) (domain.InterestResult, error)
	GenerateStatement(ctx context.Context, number string) (string, error)
	ListCards(ctx context.Context) ([]domain.CardSummary, error)
	Status() domain.ProgramStatus
}

// Method tags identify which strategy produced a result.
const (
	MethodCobol    = "cobol"
	MethodInternal = "internal"
	// MethodFallback marks results computed in-process after the external
	// path was attempted and failed.
	MethodFallback = "internal-fallback"
)
