package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mailcodec/mailcodec/codec"
	"github.com/mailcodec/mailcodec/config"
)

func tcompare(t *testing.T, got, expect any) {
	t.Helper()
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("got:\n%v\nexpected:\n%v", got, expect)
	}
}

func TestCommandUsage(t *testing.T) {
	// Gathering runs each command up to its Parse call, which must come before any
	// other work.
	for _, c := range cmds {
		c.gather()
		usage := c.makeUsage()
		if !strings.HasPrefix(strings.TrimSpace(usage), "usage: mailcodec "+strings.Join(c.words, " ")) {
			t.Fatalf("bad usage for %v: %q", c.words, usage)
		}
		if c.help == "" {
			t.Fatalf("missing help for %v", c.words)
		}
	}
}

func TestInputs(t *testing.T) {
	l, err := inputs([]string{"a", "b"}, strings.NewReader("ignored\n"))
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	tcompare(t, l, []string{"a", "b"})

	l, err = inputs(nil, strings.NewReader("Hello%20World\r\nsecond\nlast"))
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	tcompare(t, l, []string{"Hello%20World", "second", "last"})
}

func TestClassify(t *testing.T) {
	tcompare(t, classify("plain", codec.CharsetUTF8), "7bit ASCII")
	tcompare(t, classify("naïve", codec.CharsetUTF8), "8bit UTF-8")
	tcompare(t, classify("na\xefve", "iso-8859-1"), "8bit iso-8859-1")
	tcompare(t, classify("plain", "iso-8859-1"), "7bit ASCII")
}

func TestCharsetArg(t *testing.T) {
	const conf = `LogLevel: error
Codec:
	EncoderLinePolicy: recommended
	DecoderLinePolicy: mandatory
	Charset: iso-8859-1
`
	c, errs := config.Parse(strings.NewReader(conf))
	if len(errs) > 0 {
		t.Fatalf("parse config: %v", errs)
	}
	tcompare(t, charsetArg(nil, c), "iso-8859-1")
	tcompare(t, charsetArg([]string{"koi8-r"}, c), "koi8-r")

	// Without a configured charset, input is taken as UTF-8.
	c.Codec.Charset = ""
	tcompare(t, charsetArg(nil, c), codec.CharsetUTF8)

	s, err := codec.DecodeCharset(charsetArg(nil, &config.Static{Codec: config.Codec{Charset: "iso-8859-1"}}), []byte("caf\xe9"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	tcompare(t, s, "café")
}

func TestQuoteWith(t *testing.T) {
	tcompare(t, quoteWith(`a"b`, '"'), `"a\"b"`)
	tcompare(t, quoteWith(`it's \ ok`, '\''), `'it\'s \\ ok'`)
	tcompare(t, quoteWith(`x"y`, '\''), `'x"y'`)
}
