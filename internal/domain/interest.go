package domain

import "github.com/shopspring/decimal"

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// InterestResult is one month of interest computed on a card balance.
// Computed fresh per request, never persisted.
type InterestResult struct {
	CurrentBalance decimal.Decimal
	APR            decimal.Decimal
	MonthlyRate    decimal.Decimal
	InterestCharge decimal.Decimal
	NewBalance     decimal.Decimal
}

// CalculateInterest computes one month of interest on a card. A non-nil
// customBalance replaces the record balance; the APR always comes from the
// record. The charge is derived from the unrounded monthly rate; rounding to
// two decimals happens only on the presented fields, matching the batch
// program.
func CalculateInterest(card Card, customBalance *decimal.Decimal) InterestResult {
	balance := card.Balance
	if customBalance != nil {
		balance = *customBalance
	}

	monthlyRate := card.APR.Div(twelve)
	charge := balance.Mul(monthlyRate).Div(hundred).Round(2)

	return InterestResult{
		CurrentBalance: balance.Round(2),
		APR:            card.APR,
		MonthlyRate:    monthlyRate.Round(2),
		InterestCharge: charge,
		NewBalance:     balance.Add(charge).Round(2),
	}
}
