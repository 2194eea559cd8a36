package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/finbridge/cardproc/internal/domain"
)

// Statement formats accepted by GenerateStatement.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// StatementUseCase generates card statements.
type StatementUseCase struct {
	driver ExternalDriver
	cards  CardStore
	now    func() time.Time
	logger zerolog.Logger
}

// NewStatementUseCase creates a StatementUseCase. now is injectable for
// deterministic statement dates in tests; pass nil for time.Now.
func NewStatementUseCase(driver ExternalDriver, cards CardStore, now func() time.Time, logger zerolog.Logger) *StatementUseCase {
	if now == nil {
		now = time.Now
	}
	return &StatementUseCase{driver: driver, cards: cards, now: now, logger: logger}
}

// StatementOutput carries either the structured statement (json format) or
// the raw text body (text format), plus the strategy that produced it.
type StatementOutput struct {
	Statement *domain.Statement
	Text      string
	Method    string
}

// GenerateStatement produces a statement for a card. The json format is
// always computed in-process; the text format goes through the batch
// program's artifact when the program is available and is rendered
// in-process otherwise.
func (uc *StatementUseCase) GenerateStatement(ctx context.Context, number, format string) (StatementOutput, error) {
	if err := domain.ValidateCardNumber(number); err != nil {
		return StatementOutput{}, err
	}

	switch format {
	case "":
		format = FormatJSON
	case FormatJSON, FormatText:
	default:
		return StatementOutput{}, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, format)
	}

	if format == FormatText && uc.driver.Available() {
		body, err := uc.driver.GenerateStatement(ctx, number)
		if err != nil {
			return StatementOutput{}, err
		}
		return StatementOutput{Text: body, Method: MethodCobol}, nil
	}

	card, err := uc.cards.FindByNumber(ctx, number)
	if err != nil {
		return StatementOutput{}, err
	}

	statement := domain.BuildStatement(card, uc.now())
	if format == FormatText {
		return StatementOutput{Text: statement.RenderText(), Method: MethodInternal}, nil
	}
	return StatementOutput{Statement: &statement, Method: MethodInternal}, nil
}
