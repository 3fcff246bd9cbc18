package locale

import "errors"

var (
	// ErrInvalidDecimal is returned when a string is not a decimal number in the requested format.
	ErrInvalidDecimal = errors.New("invalid decimal number")

	// ErrDecimalOutOfRange is returned when a decimal number cannot be represented as float64.
	ErrDecimalOutOfRange = errors.New("decimal number out of range")
)
