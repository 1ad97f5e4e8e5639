package codec

import (
	"strings"

	"github.com/mailcodec/mailcodec/metrics"
)

// EscapeString returns s with a backslash inserted before every character
// that occurs in escapingChars. Both are treated as bytes, escapingChars is
// meant to hold ASCII characters. With an empty escapingChars, s is returned
// unchanged.
//
// Escaping is not idempotent when escapingChars includes the backslash: each
// call escapes the backslashes added by the previous call, so `a"` becomes
// `a\"` and then `a\\\"`.
//
// Calls are counted in the mailcodec_escape_total metric.
func EscapeString(s, escapingChars string) string {
	metrics.CodecEscapeInc("escape")
	return escape(s, escapingChars)
}

func escape(s, escapingChars string) string {
	if escapingChars == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(escapingChars, c) >= 0 {
			b.WriteByte(BackslashChar)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// SurroundString returns s with surround prepended and appended. Occurrences
// of surround within s are not escaped, use EscapeString first, or Quote.
// Calls are counted in the mailcodec_escape_total metric.
func SurroundString(s string, surround byte) string {
	metrics.CodecEscapeInc("surround")
	return surroundWith(s, surround)
}

func surroundWith(s string, c byte) string {
	b := make([]byte, 0, len(s)+2)
	b = append(b, c)
	b = append(b, s...)
	b = append(b, c)
	return string(b)
}

// Quote returns s as a quoted-string: double quotes and backslashes are
// escaped, and the result is surrounded by double quotes, as in RFC 5322
// section 3.2.4.
// Each call is counted once in the mailcodec_escape_total metric.
func Quote(s string) string {
	metrics.CodecEscapeInc("quote")
	return surroundWith(escape(s, QuoteStr+`\`), QuoteChar)
}
