package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/domain"
	"github.com/finbridge/cardproc/internal/infrastructure/metrics"
)

// SignupUseCase registers a new customer and puts their card on file. This
// path is in-process only: the batch program has no card-creation menu
// option.
type SignupUseCase struct {
	cards     CardStore
	customers CustomerLog
	idGen     IDGenerator
	now       func() time.Time
	logger    zerolog.Logger
}

// NewSignupUseCase creates a SignupUseCase. now is injectable for tests;
// pass nil for time.Now.
func NewSignupUseCase(cards CardStore, customers CustomerLog, idGen IDGenerator, now func() time.Time, logger zerolog.Logger) *SignupUseCase {
	if now == nil {
		now = time.Now
	}
	return &SignupUseCase{cards: cards, customers: customers, idGen: idGen, now: now, logger: logger}
}

// SignupInput is the signup request payload.
type SignupInput struct {
	FullName        string
	Email           string
	Phone           string
	Address         string
	CardNumber      string
	ExpiryDate      string
	CVV             string
	PropertyDetails string
}

// SignupOutput is the successful signup result.
type SignupOutput struct {
	CustomerID string
	CardOnFile string
}

// Signup validates the input, appends a card record with zeroed balance and
// default limit/APR, and appends the customer profile to the audit log.
// Validation happens before any I/O; the duplicate check never mutates the
// store.
func (uc *SignupUseCase) Signup(ctx context.Context, input SignupInput) (SignupOutput, error) {
	if input.FullName == "" || input.Email == "" || input.CardNumber == "" ||
		input.ExpiryDate == "" || input.CVV == "" {
		return SignupOutput{}, domain.ErrMissingFields
	}
	if err := domain.ValidateCardNumber(input.CardNumber); err != nil {
		return SignupOutput{}, err
	}
	if !domain.IsValidLuhn(input.CardNumber) {
		return SignupOutput{}, domain.ErrCardFailsLuhn
	}
	if err := domain.ValidateExpiry(input.ExpiryDate); err != nil {
		return SignupOutput{}, err
	}

	exists, err := uc.cards.Exists(ctx, input.CardNumber)
	if err != nil {
		return SignupOutput{}, err
	}
	if exists {
		return SignupOutput{}, domain.ErrCardExists
	}

	card := domain.Card{
		Number:         input.CardNumber,
		CardholderName: truncateName(input.FullName),
		Balance:        decimal.Zero,
		CreditLimit:    domain.DefaultCreditLimit,
		APR:            domain.DefaultAPR,
	}
	if err := uc.cards.Append(ctx, card); err != nil {
		return SignupOutput{}, err
	}

	masked := domain.Mask(input.CardNumber)
	profile := domain.CustomerProfile{
		CustomerID:      uc.idGen.Generate(),
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		CardOnFile:      masked,
		ExpiryDate:      input.ExpiryDate,
		PropertyDetails: input.PropertyDetails,
		CreatedAt:       uc.now().UTC(),
	}
	if err := uc.customers.Append(ctx, profile); err != nil {
		return SignupOutput{}, err
	}

	metrics.RecordCardCreated()
	uc.logger.Info().Str("customer_id", profile.CustomerID).Str("card", masked).Msg("card created")

	return SignupOutput{CustomerID: profile.CustomerID, CardOnFile: masked}, nil
}

// truncateName fits a name into the record's 30-byte name field without
// splitting a multi-byte rune at the boundary.
func truncateName(name string) string {
	if len(name) <= domain.MaxCardholderNameLength {
		return name
	}

	cut := domain.MaxCardholderNameLength
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
