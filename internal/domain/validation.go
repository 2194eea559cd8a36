package domain

import (
	"fmt"
	"regexp"
)

var (
	cardNumberRegex = regexp.MustCompile(`^[0-9]{16}$`)
	expiryRegex     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

// ValidateCardNumber checks the card number shape only; checksum validity is
// a separate concern (IsValidLuhn).
func ValidateCardNumber(number string) error {
	if !cardNumberRegex.MatchString(number) {
		return fmt.Errorf("%w: expected 16 digits", ErrInvalidCardNumber)
	}
	return nil
}

// ValidateExpiry checks an MM/YY expiry string. The month must be 01-12; no
// in-the-future check is performed.
func ValidateExpiry(expiry string) error {
	if !expiryRegex.MatchString(expiry) {
		return fmt.Errorf("%w: expected MM/YY", ErrInvalidExpiry)
	}
	return nil
}
