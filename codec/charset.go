package codec

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/mailcodec/mailcodec/metrics"
	"github.com/mailcodec/mailcodec/mlog"
)

func lookupCharset(name string) encoding.Encoding {
	enc, _ := ianaindex.MIME.Encoding(name)
	if enc == nil {
		enc, _ = ianaindex.IANA.Encoding(name)
	}
	return enc
}

func isPassthroughCharset(name string) bool {
	switch strings.ToLower(name) {
	case "", "ascii", "us-ascii", "utf-8", "utf8":
		return true
	}
	return false
}

// KnownCharset returns whether name is a charset that DecodeCharset can
// convert, or one that needs no conversion, like CharsetASCII and CharsetUTF8.
func KnownCharset(name string) bool {
	return isPassthroughCharset(name) || lookupCharset(name) != nil
}

// DecodeCharset returns buf, in charset, converted to UTF-8. For an empty
// charset, ASCII and UTF-8, buf is returned as is. An unknown charset is not
// an error, buf is returned as is, like for mail with unknown charsets that
// must still be shown.
func DecodeCharset(charset string, buf []byte) (string, error) {
	if isPassthroughCharset(charset) {
		return string(buf), nil
	}
	enc := lookupCharset(charset)
	if enc == nil {
		xlog.Debug("unknown charset, not decoding", mlog.Field("charset", charset))
		return string(buf), nil
	}
	out, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		metrics.CodecDecodeInc("charset", "error")
		return "", fmt.Errorf("decoding from charset %q: %w", charset, err)
	}
	metrics.CodecDecodeInc("charset", "ok")
	return string(out), nil
}
