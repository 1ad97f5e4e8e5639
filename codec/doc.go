// Package codec provides the text primitives shared by the mail encoders and
// decoders: hexadecimal digit conversion, 7bit/8bit classification, percent
// decoding, backslash escaping and quoting, plus the configuration state
// (line-length policies and a strict mode flag) that concrete codecs consult.
//
// All functions are pure and safe for concurrent use. A *Config is not: it is
// owned by a single encoder or decoder, use Clone to hand out copies.
//
// Decoding failures are reported with errors wrapping ErrMalformedEscape or
// ErrInvalidHexDigit, test for them with errors.Is. No partial output is
// returned on failure.
package codec
