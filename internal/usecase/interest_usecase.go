package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/domain"
)

// InterestUseCase computes one month of interest for a card.
type InterestUseCase struct {
	driver ExternalDriver
	cards  CardStore
	logger zerolog.Logger
}

// NewInterestUseCase creates an InterestUseCase.
func NewInterestUseCase(driver ExternalDriver, cards CardStore, logger zerolog.Logger) *InterestUseCase {
	return &InterestUseCase{driver: driver, cards: cards, logger: logger}
}

// InterestOutput is the normalized interest computation plus the strategy
// that produced it.
type InterestOutput struct {
	domain.InterestResult

	Method string
}

// CalculateInterest computes interest for a card. Once the batch program is
// deemed available its errors are surfaced, not papered over: a not-found
// stays not-found and anything else is an external failure. A custom balance
// forces the in-process path because the program only reads the stored
// balance.
func (uc *InterestUseCase) CalculateInterest(ctx context.Context, number string, customBalance *decimal.Decimal) (InterestOutput, error) {
	if err := domain.ValidateCardNumber(number); err != nil {
		return InterestOutput{}, err
	}

	if customBalance == nil && uc.driver.Available() {
		result, err := uc.driver.CalculateInterest(ctx, number)
		if err != nil {
			return InterestOutput{}, err
		}
		return InterestOutput{InterestResult: result, Method: MethodCobol}, nil
	}

	card, err := uc.cards.FindByNumber(ctx, number)
	if err != nil {
		return InterestOutput{}, err
	}

	return InterestOutput{
		InterestResult: domain.CalculateInterest(card, customBalance),
		Method:         MethodInternal,
	}, nil
}
