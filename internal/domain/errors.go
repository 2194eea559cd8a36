package domain

import "errors"

var (
	// Card errors
	ErrCardNotFound      = errors.New("card not found")
	ErrCardExists        = errors.New("card already on file")
	ErrInvalidCardNumber = errors.New("invalid card number format")
	ErrCardFailsLuhn     = errors.New("card number fails checksum")
	ErrInvalidExpiry     = errors.New("invalid expiry date")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidFormat     = errors.New("unsupported statement format")

	// External program errors
	ErrExternalProcess  = errors.New("external program failure")
	ErrExternalTimeout  = errors.New("external program session timed out")
	ErrUnexpectedOutput = errors.New("unexpected external program output")

	// Store errors
	ErrStoreIO = errors.New("card store I/O failure")
)
