package codec

import (
	"fmt"

	"github.com/mailcodec/mailcodec/metrics"
	"github.com/mailcodec/mailcodec/mlog"
)

var xlog = mlog.New("codec")

// DecodePercent replaces each %XX escape in s by the byte it encodes. Other
// characters are copied as is. Hexadecimal digits may be upper or lower case.
//
// A percent sign that is not followed by two hexadecimal digits, e.g. "100%"
// or "10%GZ", results in an error wrapping ErrMalformedEscape and an empty
// string: decoding cannot continue without knowing the intended byte.
func DecodePercent(s string) (string, error) {
	buf, err := DecodePercentBytes(make([]byte, 0, len(s)), []byte(s))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// DecodePercentBytes is like DecodePercent, appending the decoded form of src
// to dst. On error, dst is returned without any decoded data appended.
func DecodePercentBytes(dst, src []byte) ([]byte, error) {
	orig := len(dst)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != PercentChar {
			dst = append(dst, c)
			continue
		}
		if i+2 >= len(src) {
			return dst[:orig], decodeError(fmt.Errorf("%w: truncated escape at offset %d", ErrMalformedEscape, i), i)
		}
		hi, lo := src[i+1], src[i+2]
		if !IsHexDigit(hi) || !IsHexDigit(lo) {
			return dst[:orig], decodeError(fmt.Errorf("%w: non-hexadecimal %q at offset %d", ErrMalformedEscape, src[i:i+3], i), i)
		}
		dst = append(dst, byte(hexval(hi)<<4|hexval(lo)))
		i += 2
	}
	metrics.CodecDecodeInc("percent", "ok")
	return dst, nil
}

func decodeError(err error, offset int) error {
	metrics.CodecDecodeInc("percent", "malformed")
	xlog.Debugx("rejecting percent-encoded text", err, mlog.Field("offset", offset))
	return err
}
