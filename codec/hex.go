package codec

import (
	"fmt"
)

// IsHexDigit returns whether c is one of 0-9, A-F or a-f.
func IsHexDigit(c byte) bool {
	return c >= ZeroChar && c <= NineChar || c >= UpperAChar && c <= UpperFChar || c >= LowerAChar && c <= LowerFChar
}

// HexDigitToInt returns the value 0-15 of hexadecimal digit c. Upper and lower
// case are accepted. Any other character results in an error wrapping
// ErrInvalidHexDigit.
func HexDigitToInt(c byte) (int, error) {
	if !IsHexDigit(c) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHexDigit, c)
	}
	return hexval(c), nil
}

// IntToHexDigit returns the uppercase hexadecimal digit for v, which must be
// in the range 0-15.
func IntToHexDigit(v int) (byte, error) {
	if v < 0 || v >= len(HexDigits) {
		return 0, fmt.Errorf("%w: value %d out of range", ErrInvalidHexDigit, v)
	}
	return HexDigits[v], nil
}

// hexval does not check its input, callers must have verified c with
// IsHexDigit.
func hexval(c byte) int {
	switch {
	case c <= NineChar:
		return int(c - ZeroChar)
	case c >= LowerAChar:
		return int(c-LowerAChar) + 10
	default:
		return int(c-UpperAChar) + 10
	}
}
