package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	minimumPaymentFloor = decimal.NewFromInt(25)
	minimumPaymentRate  = decimal.RequireFromString("0.03")
)

const (
	statementDateLayout = "2006-01-02"
	paymentTermDays     = 25
)

// Statement is the derived read-only billing view of a card. Never persisted;
// the batch program's text artifact is a side effect outside this type.
type Statement struct {
	StatementDate   string
	CardNumber      string
	CardholderName  string
	CurrentBalance  decimal.Decimal
	CreditLimit     decimal.Decimal
	AvailableCredit decimal.Decimal
	APR             decimal.Decimal
	MinimumPayment  decimal.Decimal
	DueDate         string
}

// BuildStatement derives the statement for a card as of now. The minimum
// payment is 3% of the balance with a $25 floor; payment is due 25 days out.
func BuildStatement(card Card, now time.Time) Statement {
	minimum := card.Balance.Mul(minimumPaymentRate).Round(2)
	if minimum.LessThan(minimumPaymentFloor) {
		minimum = minimumPaymentFloor
	}

	return Statement{
		StatementDate:   now.Format(statementDateLayout),
		CardNumber:      Mask(card.Number),
		CardholderName:  card.CardholderName,
		CurrentBalance:  card.Balance,
		CreditLimit:     card.CreditLimit,
		AvailableCredit: card.CreditLimit.Sub(card.Balance),
		APR:             card.APR,
		MinimumPayment:  minimum,
		DueDate:         now.AddDate(0, 0, paymentTermDays).Format(statementDateLayout),
	}
}

// RenderText formats the statement in the labeled layout of the batch
// program's artifact file.
func (s Statement) RenderText() string {
	var b strings.Builder
	rule := strings.Repeat("=", 42)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "          CREDIT CARD STATEMENT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Statement Date:    %s\n", s.StatementDate)
	fmt.Fprintf(&b, "Card Number:       %s\n", s.CardNumber)
	fmt.Fprintf(&b, "Cardholder:        %s\n", s.CardholderName)
	fmt.Fprintln(&b, strings.Repeat("-", 42))
	fmt.Fprintf(&b, "Current Balance:   $%s\n", s.CurrentBalance.StringFixed(2))
	fmt.Fprintf(&b, "Credit Limit:      $%s\n", s.CreditLimit.StringFixed(2))
	fmt.Fprintf(&b, "Available Credit:  $%s\n", s.AvailableCredit.StringFixed(2))
	fmt.Fprintf(&b, "APR:               %s%%\n", s.APR.StringFixed(2))
	fmt.Fprintf(&b, "Minimum Payment:   $%s\n", s.MinimumPayment.StringFixed(2))
	fmt.Fprintf(&b, "Payment Due Date:  %s\n", s.DueDate)
	fmt.Fprintln(&b, rule)

	return b.String()
}
