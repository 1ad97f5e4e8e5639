package codec

import (
	"errors"
)

var (
	// ErrMalformedEscape is returned when a percent sign is not followed by two
	// hexadecimal digits, including when the input ends early.
	ErrMalformedEscape = errors.New("malformed percent escape")

	// ErrInvalidHexDigit is returned when converting a character that is not one
	// of 0-9, A-F, a-f, or a value outside 0-15.
	ErrInvalidHexDigit = errors.New("invalid hexadecimal digit")
)
