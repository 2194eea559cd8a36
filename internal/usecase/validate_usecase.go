package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finbridge/cardproc/internal/domain"
	"github.com/finbridge/cardproc/internal/infrastructure/metrics"
)

// ValidateUseCase checks card numbers, preferring the batch program and
// silently falling back to the in-process Luhn check.
type ValidateUseCase struct {
	driver ExternalDriver
	logger zerolog.Logger
}

// NewValidateUseCase creates a ValidateUseCase.
func NewValidateUseCase(driver ExternalDriver, logger zerolog.Logger) *ValidateUseCase {
	return &ValidateUseCase{driver: driver, logger: logger}
}

// ValidateResult is the normalized validation outcome; Method records which
// strategy produced it.
type ValidateResult struct {
	Valid        bool
	MaskedNumber string
	CardType     domain.CardType
	Method       string
}

// ValidateCard validates a card number. Both strategies implement the same
// Luhn semantics, so a driver failure degrades to the in-process check
// rather than surfacing an error.
func (uc *ValidateUseCase) ValidateCard(ctx context.Context, number string) (ValidateResult, error) {
	if err := domain.ValidateCardNumber(number); err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{
		MaskedNumber: domain.Mask(number),
		CardType:     domain.Classify(number),
	}

	if uc.driver.Available() {
		valid, err := uc.driver.ValidateCard(ctx, number)
		if err == nil {
			result.Valid = valid
			result.Method = MethodCobol
			return result, nil
		}

		uc.logger.Warn().Err(err).Msg("external validation failed, using in-process check")
		metrics.RecordFallback("validate")
		result.Valid = domain.IsValidLuhn(number)
		result.Method = MethodFallback
		return result, nil
	}

	result.Valid = domain.IsValidLuhn(number)
	result.Method = MethodInternal
	return result, nil
}
