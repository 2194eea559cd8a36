package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// CardType is the card network inferred from the number prefix.
type CardType string

const (
	CardTypeVisa       CardType = "VISA"
	CardTypeMastercard CardType = "MASTERCARD"
	CardTypeAmex       CardType = "AMEX"
	CardTypeDiscover   CardType = "DISCOVER"
	CardTypeUnknown    CardType = "UNKNOWN"
)

// Defaults applied to cards created through signup.
var (
	DefaultCreditLimit = decimal.NewFromInt(5000)
	DefaultAPR         = decimal.RequireFromString("18.99")
)

// MaxCardholderNameLength is the width of the name field in a card record.
const MaxCardholderNameLength = 30

// Card is one record from the card data file.
type Card struct {
	Number         string
	CardholderName string
	Balance        decimal.Decimal
	CreditLimit    decimal.Decimal
	APR            decimal.Decimal
}

// CardSummary is the listing view of a card. CreditLimit is nil when the
// source of the listing does not report it.
type CardSummary struct {
	CardNumber     string
	CardholderName string
	Balance        decimal.Decimal
	CreditLimit    *decimal.Decimal
}

// CustomerProfile is the signup payload retained in the customer log.
type CustomerProfile struct {
	CustomerID      string    `json:"customerId"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	CardOnFile      string    `json:"cardOnFile"`
	ExpiryDate      string    `json:"expiryDate"`
	PropertyDetails string    `json:"propertyDetails,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Classify infers the card network from the number prefix. Mastercard uses
// the numeric prefix range [51,55]; for digit strings this agrees with the
// lexicographic two-character comparison on every 16-digit input.
func Classify(number string) CardType {
	if len(number) < 2 {
		return CardTypeUnknown
	}
	if number[0] == '4' {
		return CardTypeVisa
	}

	prefix, err := strconv.Atoi(number[:2])
	if err != nil {
		return CardTypeUnknown
	}

	switch {
	case prefix >= 51 && prefix <= 55:
		return CardTypeMastercard
	case prefix == 34 || prefix == 37:
		return CardTypeAmex
	case prefix == 60 || prefix == 65:
		return CardTypeDiscover
	default:
		return CardTypeUnknown
	}
}

// Mask renders a 16-digit card number as FFFF-****-****-LLLL. Input of any
// other length is returned unchanged.
func Mask(number string) string {
	if len(number) != 16 {
		return number
	}
	return number[:4] + "-****-****-" + number[12:]
}
