package config

import (
	"github.com/mailcodec/mailcodec/codec"
)

// Static is the parsed form of the mailcodec.conf configuration file.
type Static struct {
	LogLevel         string            `sconf-doc:"NOTE: This config file is in 'sconf' format. Indent with tabs. Comments must be on their own line, they don't end a line. Do not escape or quote strings. Details: https://pkg.go.dev/github.com/mjl-/sconf.\n\n\nDefault log level, one of: error, info, debug, trace."`
	PackageLogLevels map[string]string `sconf:"optional" sconf-doc:"Overrides of log level per package (e.g. codec, config)."`
	Codec            Codec             `sconf-doc:"Defaults for encoders and decoders."`
}

// Codec holds the settings from which a codec.Config is made.
type Codec struct {
	EncoderLinePolicy string `sconf-doc:"Maximum line length of encoded output, one of: none, recommended (78 characters), mandatory (998 characters), verylarge (16384 characters)."`
	DecoderLinePolicy string `sconf-doc:"Maximum line length expected in input while decoding, same values as EncoderLinePolicy."`
	Strict            bool   `sconf:"optional" sconf-doc:"If enabled, input that violates the standards is rejected instead of accepted with workarounds."`
	Charset           string `sconf:"optional" sconf-doc:"Charset of 8bit input without a declared charset, e.g. iso-8859-1. Default: UTF-8."`

	EncoderPolicy codec.LinePolicy `sconf:"-" json:"-"` // Parsed form of EncoderLinePolicy.
	DecoderPolicy codec.LinePolicy `sconf:"-" json:"-"` // Parsed form of DecoderLinePolicy.
}
