package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/finbridge/cardproc/internal/domain"
)

type driverStub struct {
	available   bool
	validateFn  func(ctx context.Context, number string) (bool, error)
	interestFn  func(ctx context.Context, number string) (domain.InterestResult, error)
	statementFn func(ctx context.Context, number string) (string, error)
	listFn      func(ctx context.Context) ([]domain.CardSummary, error)
	status      domain.ProgramStatus

	calls int
}

func (d *driverStub) Available() bool { return d.available }

func (d *driverStub) ValidateCard(ctx context.Context, number string) (bool, error) {
	d.calls++
	if d.validateFn == nil {
		return false, errors.New("validateFn not set")
	}
	return d.validateFn(ctx, number)
}

func (d *driverStub) CalculateInterest(ctx context.Context, number string) (domain.InterestResult, error) {
	d.calls++
	if d.interestFn == nil {
		return domain.InterestResult{}, errors.New("interestFn not set")
	}
	return d.interestFn(ctx, number)
}

func (d *driverStub) GenerateStatement(ctx context.Context, number string) (string, error) {
	d.calls++
	if d.statementFn == nil {
		return "", errors.New("statementFn not set")
	}
	return d.statementFn(ctx, number)
}

func (d *driverStub) ListCards(ctx context.Context) ([]domain.CardSummary, error) {
	d.calls++
	if d.listFn == nil {
		return nil, errors.New("listFn not set")
	}
	return d.listFn(ctx)
}

func (d *driverStub) Status() domain.ProgramStatus { return d.status }

type storeStub struct {
	cards    []domain.Card
	appends  []domain.Card
	listErr  error
	writeErr error
}

func (s *storeStub) List(ctx context.Context) ([]domain.Card, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.cards, nil
}

func (s *storeStub) FindByNumber(ctx context.Context, number string) (domain.Card, error) {
	if s.listErr != nil {
		return domain.Card{}, s.listErr
	}
	for _, card := range s.cards {
		if card.Number == number {
			return card, nil
		}
	}
	return domain.Card{}, domain.ErrCardNotFound
}

func (s *storeStub) Exists(ctx context.Context, number string) (bool, error) {
	if s.listErr != nil {
		return false, s.listErr
	}
	for _, card := range s.cards {
		if card.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (s *storeStub) Append(ctx context.Context, card domain.Card) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.appends = append(s.appends, card)
	s.cards = append(s.cards, card)
	return nil
}

type customerLogStub struct {
	profiles []domain.CustomerProfile
	err      error
}

func (l *customerLogStub) Append(ctx context.Context, profile domain.CustomerProfile) error {
	if l.err != nil {
		return l.err
	}
	l.profiles = append(l.profiles, profile)
	return nil
}

type idGenStub struct {
	id string
}

func (g *idGenStub) Generate() string { return g.id }

func nopLogger() zerolog.Logger { return zerolog.Nop() }
