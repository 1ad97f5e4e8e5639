package codec

import (
	"errors"
	"strings"
	"testing"
)

func FuzzDecodePercent(f *testing.F) {
	f.Add("")
	f.Add("Hello%20World")
	f.Add("100%")
	f.Add("10%GZ")
	f.Add("%e2%82%ac")
	f.Add("caf\xe9")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := DecodePercent(s)
		if err != nil {
			if !errors.Is(err, ErrMalformedEscape) {
				t.Fatalf("decode %q: error %v does not wrap ErrMalformedEscape", s, err)
			}
			if r != "" {
				t.Fatalf("decode %q: partial output %q with error", s, r)
			}
		} else if len(r) > len(s) {
			t.Fatalf("decode %q: output %q longer than input", s, r)
		}
		if !strings.Contains(s, PercentStr) && (err != nil || r != s) {
			t.Fatalf("decode %q without escapes: got %q, %v", s, r, err)
		}

		// Escape every byte and decode it back.
		var b strings.Builder
		for i := 0; i < len(s); i++ {
			b.WriteByte(PercentChar)
			b.WriteByte(HexDigits[s[i]>>4])
			b.WriteByte(HexDigits[s[i]&0xf])
		}
		r, err = DecodePercent(b.String())
		if err != nil || r != s {
			t.Fatalf("decode of fully escaped %q: got %q, %v", s, r, err)
		}
	})
}

func FuzzEscapeString(f *testing.F) {
	f.Add("a,b;c", ",;")
	f.Add(`a"\`, `"\`)
	f.Add("", "")
	f.Fuzz(func(t *testing.T, s, chars string) {
		r := EscapeString(s, chars)
		if len(r) < len(s) {
			t.Fatalf("escape %q with %q: output %q shorter than input", s, chars, r)
		}
		if r := EscapeString(s, ""); r != s {
			t.Fatalf("escape %q without chars: got %q", s, r)
		}
	})
}
