package codec_test

import (
	"errors"
	"fmt"

	"github.com/mailcodec/mailcodec/codec"
)

func ExampleDecodePercent() {
	s, err := codec.DecodePercent("Hello%20World%21")
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println(s)

	_, err = codec.DecodePercent("100%")
	fmt.Println(errors.Is(err, codec.ErrMalformedEscape))

	_, err = codec.DecodePercent("10%GZ")
	fmt.Println(err)

	// Output:
	// Hello World!
	// true
	// malformed percent escape: non-hexadecimal "%GZ" at offset 2
}

func ExampleEscapeString() {
	s := codec.EscapeString("a,b;c", codec.CommaStr+codec.SemicolonStr)
	fmt.Println(s)
	fmt.Println(codec.SurroundString(codec.EscapeString(`say "hi"`, codec.QuoteStr), codec.QuoteChar))

	// Output:
	// a\,b\;c
	// "say \"hi\""
}

func ExampleConfig() {
	c := codec.NewConfig(codec.LinePolicyRecommended, codec.LinePolicyMandatory)
	fmt.Println(c.Strict(), c.EncoderLinePolicy().MaxLineLen(), c.DecoderLinePolicy().MaxLineLen())
	c.SetStrict(true)
	fmt.Println(c)

	// Output:
	// false 78 998
	// encoder=recommended decoder=mandatory strict=true
}
