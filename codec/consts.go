package codec

// Single characters used as delimiters and markers in mail text.
const (
	AsteriskChar     byte = '*'
	EqualChar        byte = '='
	SpaceChar        byte = ' '
	DotChar          byte = '.'
	CommaChar        byte = ','
	ColonChar        byte = ':'
	SemicolonChar    byte = ';'
	QuoteChar        byte = '"'
	LessThanChar     byte = '<'
	GreaterThanChar  byte = '>'
	PercentChar      byte = '%'
	BackslashChar    byte = '\\'
	CRChar           byte = '\r'
	LFChar           byte = '\n'
	ZeroChar         byte = '0'
	NineChar         byte = '9'
	UpperAChar       byte = 'A'
	UpperFChar       byte = 'F'
	LowerAChar       byte = 'a'
	LowerFChar       byte = 'f'
	HighestASCIIChar byte = 0x7f
)

// HexDigits is the alphabet for hexadecimal output, uppercase.
const HexDigits = "0123456789ABCDEF"

// String forms of the single characters. The values are part of the API and
// never change.
const (
	AsteriskStr    = string(AsteriskChar)
	EqualStr       = string(EqualChar)
	SpaceStr       = string(SpaceChar)
	DotStr         = string(DotChar)
	CommaStr       = string(CommaChar)
	ColonStr       = string(ColonChar)
	SemicolonStr   = string(SemicolonChar)
	QuoteStr       = string(QuoteChar)
	LessThanStr    = string(LessThanChar)
	GreaterThanStr = string(GreaterThanChar)
	PercentStr     = string(PercentChar)
)

const (
	// EndOfLine terminates every line of a message, RFC 5322 section 2.1.
	EndOfLine = "\r\n"

	// EndOfMessage is the line that ends message data in SMTP, RFC 5321
	// section 4.1.1.4.
	EndOfMessage = "."
)

// Charset names for text without and with 8bit characters.
const (
	CharsetASCII = "ASCII"
	CharsetUTF8  = "UTF-8"
)
