package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/domain"
)

// Field byte offsets within one card record. The layout is fixed by the
// batch program's copybook and must round-trip byte for byte.
const (
	numberEnd  = 16
	nameEnd    = 46
	balanceEnd = 55
	limitEnd   = 64
	aprEnd     = 69

	// RecordLength is the width of one card record, excluding the newline.
	RecordLength = aprEnd

	amountDigits = 9
	aprDigits    = 5
)

// DecodeRecord parses one fixed-width line from the card data file. Currency
// and APR fields are zero-padded integers with two implied decimals.
func DecodeRecord(line string) (domain.Card, error) {
	if len(line) < RecordLength {
		return domain.Card{}, fmt.Errorf("record too short: %d bytes, want %d", len(line), RecordLength)
	}

	number := line[:numberEnd]
	if !isDigits(number) {
		return domain.Card{}, fmt.Errorf("card number field is not numeric: %q", number)
	}

	balance, err := decodeScaled(line[nameEnd:balanceEnd], "balance")
	if err != nil {
		return domain.Card{}, err
	}
	limit, err := decodeScaled(line[balanceEnd:limitEnd], "credit limit")
	if err != nil {
		return domain.Card{}, err
	}
	apr, err := decodeScaled(line[limitEnd:aprEnd], "apr")
	if err != nil {
		return domain.Card{}, err
	}

	return domain.Card{
		Number:         number,
		CardholderName: strings.TrimSpace(line[numberEnd:nameEnd]),
		Balance:        balance,
		CreditLimit:    limit,
		APR:            apr,
	}, nil
}

// EncodeRecord renders a card as one fixed-width line. For any card this
// function accepts, DecodeRecord(EncodeRecord(card)) returns an equal card.
func EncodeRecord(card domain.Card) (string, error) {
	if len(card.Number) != numberEnd || !isDigits(card.Number) {
		return "", fmt.Errorf("card number must be %d digits: %q", numberEnd, card.Number)
	}
	if len(card.CardholderName) > domain.MaxCardholderNameLength {
		return "", fmt.Errorf("cardholder name exceeds %d bytes", domain.MaxCardholderNameLength)
	}

	balance, err := encodeScaled(card.Balance, amountDigits, "balance")
	if err != nil {
		return "", err
	}
	limit, err := encodeScaled(card.CreditLimit, amountDigits, "credit limit")
	if err != nil {
		return "", err
	}
	apr, err := encodeScaled(card.APR, aprDigits, "apr")
	if err != nil {
		return "", err
	}

	// Pad the name by bytes, not runes: field offsets are byte positions, so
	// a multi-byte name padded by rune count would shift every later field.
	name := card.CardholderName + strings.Repeat(" ", domain.MaxCardholderNameLength-len(card.CardholderName))

	return card.Number + name + balance + limit + apr, nil
}

// decodeScaled parses a zero-padded integer field with two implied decimals.
func decodeScaled(field, name string) (decimal.Decimal, error) {
	value, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s field is not numeric: %q", name, field)
	}
	return decimal.New(value, -2), nil
}

// encodeScaled renders a decimal as a zero-padded integer of width digits
// with two implied decimals.
func encodeScaled(value decimal.Decimal, digits int, name string) (string, error) {
	scaled := value.Shift(2)
	if !scaled.Equal(scaled.Truncate(0)) {
		return "", fmt.Errorf("%s has more than two decimal places: %s", name, value)
	}
	if scaled.IsNegative() {
		return "", fmt.Errorf("%s is negative: %s", name, value)
	}

	cents := scaled.IntPart()
	rendered := strconv.FormatInt(cents, 10)
	if len(rendered) > digits {
		return "", fmt.Errorf("%s overflows %d digits: %s", name, digits, value)
	}

	return fmt.Sprintf("%0*d", digits, cents), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
