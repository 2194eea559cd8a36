package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finbridge/cardproc/internal/domain"
	"github.com/finbridge/cardproc/internal/infrastructure/metrics"
)

// ListUseCase lists all cards on file with masked numbers.
type ListUseCase struct {
	driver ExternalDriver
	cards  CardStore
	logger zerolog.Logger
}

// NewListUseCase creates a ListUseCase.
func NewListUseCase(driver ExternalDriver, cards CardStore, logger zerolog.Logger) *ListUseCase {
	return &ListUseCase{driver: driver, cards: cards, logger: logger}
}

// ListOutput is the card listing plus the strategy that produced it.
type ListOutput struct {
	Cards  []domain.CardSummary
	Method string
}

// ListCards lists every card. Both strategies read the same file, so a
// driver failure degrades silently to the in-process read.
func (uc *ListUseCase) ListCards(ctx context.Context) (ListOutput, error) {
	method := MethodInternal

	if uc.driver.Available() {
		cards, err := uc.driver.ListCards(ctx)
		if err == nil {
			return ListOutput{Cards: cards, Method: MethodCobol}, nil
		}

		uc.logger.Warn().Err(err).Msg("external card listing failed, reading store directly")
		metrics.RecordFallback("list")
		method = MethodFallback
	}

	records, err := uc.cards.List(ctx)
	if err != nil {
		return ListOutput{}, err
	}

	cards := make([]domain.CardSummary, len(records))
	for i, record := range records {
		limit := record.CreditLimit
		cards[i] = domain.CardSummary{
			CardNumber:     domain.Mask(record.Number),
			CardholderName: record.CardholderName,
			Balance:        record.Balance,
			CreditLimit:    &limit,
		}
	}

	return ListOutput{Cards: cards, Method: method}, nil
}
