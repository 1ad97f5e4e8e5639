/*
Package config holds the configuration file definitions.

The configuration file, mailcodec.conf, sets log levels and the defaults for
encoders and decoders: the line-length policies and whether strict mode is
enabled.

# sconf

The config file is in "sconf" format. Properties of sconf files:

  - Indentation with tabs only.
  - "#" as first non-whitespace character makes the line a comment. Lines with a
    value cannot also have a comment.
  - Values don't have syntax indicating their type. For example, strings are
    not quoted/escaped and can never span multiple lines.
  - Fields that are optional can be left out completely. But the value of an
    optional field may itself have required fields.

See https://pkg.go.dev/github.com/mjl-/sconf for details.

# Example

	LogLevel: info
	PackageLogLevels:
		codec: debug
	Codec:
		EncoderLinePolicy: recommended
		DecoderLinePolicy: mandatory
		Strict: true
		Charset: iso-8859-1

Use "mailcodec config describe" for an annotated empty configuration.
*/
package config
