package domain

// IsValidLuhn reports whether a 16-digit card number passes the Luhn
// checksum. Anything that is not exactly 16 ASCII digits is invalid, not an
// error.
func IsValidLuhn(number string) bool {
	if ValidateCardNumber(number) != nil {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
