package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mjl-/sconf"

	"github.com/mailcodec/mailcodec/codec"
	"github.com/mailcodec/mailcodec/mlog"
)

func tcompare(t *testing.T, got, expect any) {
	t.Helper()
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("got:\n%v\nexpected:\n%v", got, expect)
	}
}

const exampleConf = `LogLevel: info
PackageLogLevels:
	codec: debug
Codec:
	EncoderLinePolicy: recommended
	DecoderLinePolicy: mandatory
	Strict: true
	Charset: iso-8859-1
`

func TestParse(t *testing.T) {
	c, errs := Parse(strings.NewReader(exampleConf))
	if len(errs) > 0 {
		t.Fatalf("parse: %v", errs)
	}
	tcompare(t, c.Codec.EncoderPolicy, codec.LinePolicyRecommended)
	tcompare(t, c.Codec.DecoderPolicy, codec.LinePolicyMandatory)
	tcompare(t, c.InputCharset(), "iso-8859-1")
	tcompare(t, c.LogConfig(), map[string]mlog.Level{"": mlog.LevelInfo, "codec": mlog.LevelDebug})

	cc := c.CodecConfig()
	tcompare(t, cc.EncoderLinePolicy(), codec.LinePolicyRecommended)
	tcompare(t, cc.DecoderLinePolicy(), codec.LinePolicyMandatory)
	tcompare(t, cc.Strict(), true)

	// Each call returns an independent instance.
	cc.SetStrict(false)
	tcompare(t, c.CodecConfig().Strict(), true)
}

func TestParseMinimal(t *testing.T) {
	const conf = `LogLevel: error
Codec:
	EncoderLinePolicy: none
	DecoderLinePolicy: verylarge
`
	c, errs := Parse(strings.NewReader(conf))
	if len(errs) > 0 {
		t.Fatalf("parse: %v", errs)
	}
	tcompare(t, c.CodecConfig().Strict(), false)
	tcompare(t, c.InputCharset(), codec.CharsetUTF8)
	tcompare(t, c.Codec.DecoderPolicy.MaxLineLen(), 16384)
}

func TestParseErrors(t *testing.T) {
	const conf = `LogLevel: loud
PackageLogLevels:
	codec: verbose
Codec:
	EncoderLinePolicy: short
	DecoderLinePolicy: mandatory
	Charset: no-such-charset
`
	_, errs := Parse(strings.NewReader(conf))
	if len(errs) != 4 {
		t.Fatalf("got %d errors, expected 4: %v", len(errs), errs)
	}

	// Missing required field is a syntax error from sconf.
	_, errs = Parse(strings.NewReader("LogLevel: info\n"))
	if len(errs) != 1 {
		t.Fatalf("got %v, expected single error for missing Codec", errs)
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mailcodec.conf")
	err := os.WriteFile(p, []byte(exampleConf), 0660)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, errs := Load(p)
	if len(errs) > 0 {
		t.Fatalf("load: %v", errs)
	}
	tcompare(t, c.Codec.Strict, true)

	_, errs = Load(filepath.Join(t.TempDir(), "missing.conf"))
	if len(errs) != 1 {
		t.Fatalf("got %v, expected error for missing file", errs)
	}
}

func TestDescribe(t *testing.T) {
	var b bytes.Buffer
	err := sconf.Describe(&b, &Static{})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	for _, s := range []string{"LogLevel:", "EncoderLinePolicy:", "DecoderLinePolicy:"} {
		if !strings.Contains(b.String(), s) {
			t.Fatalf("describe output misses %q:\n%s", s, b.String())
		}
	}
	if strings.Contains(b.String(), "EncoderPolicy:") {
		t.Fatalf("describe output has ignored field:\n%s", b.String())
	}
}
