package config

import (
	"fmt"
	"io"
	"os"

	"github.com/mjl-/sconf"

	"github.com/mailcodec/mailcodec/codec"
	"github.com/mailcodec/mailcodec/mlog"
)

var xlog = mlog.New("config")

// Load parses and validates the configuration file at path p. All validation
// errors are returned, not only the first.
func Load(p string) (*Static, []error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, []error{fmt.Errorf("open config file: %v", err)}
	}
	defer f.Close()
	c, errs := Parse(f)
	if len(errs) > 0 {
		for i := range errs {
			errs[i] = fmt.Errorf("%s: %w", p, errs[i])
		}
		return nil, errs
	}
	xlog.Debug("config loaded", mlog.Field("path", p), mlog.Field("codec", c.CodecConfig()))
	return c, nil
}

// Parse reads a configuration in sconf format from r and validates it.
func Parse(r io.Reader) (*Static, []error) {
	var c Static
	if err := sconf.Parse(r, &c); err != nil {
		return nil, []error{fmt.Errorf("parsing config: %v", err)}
	}
	if errs := c.prepare(); len(errs) > 0 {
		return nil, errs
	}
	return &c, nil
}

// prepare checks the values and sets the parsed fields.
func (c *Static) prepare() (errs []error) {
	addErrorf := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, ok := mlog.Levels[c.LogLevel]; !ok {
		addErrorf("unknown log level %q", c.LogLevel)
	}
	for pkg, s := range c.PackageLogLevels {
		if _, ok := mlog.Levels[s]; !ok {
			addErrorf("unknown log level %q for package %q", s, pkg)
		}
	}

	var err error
	c.Codec.EncoderPolicy, err = codec.ParseLinePolicy(c.Codec.EncoderLinePolicy)
	if err != nil {
		addErrorf("encoder line policy: %v", err)
	}
	c.Codec.DecoderPolicy, err = codec.ParseLinePolicy(c.Codec.DecoderLinePolicy)
	if err != nil {
		addErrorf("decoder line policy: %v", err)
	}
	if c.Codec.Charset != "" && !codec.KnownCharset(c.Codec.Charset) {
		addErrorf("unknown charset %q", c.Codec.Charset)
	}
	return errs
}

// CodecConfig returns a new codec configuration with the configured policies
// and strict mode. Each call returns a new instance.
func (c *Static) CodecConfig() *codec.Config {
	cc := codec.NewConfig(c.Codec.EncoderPolicy, c.Codec.DecoderPolicy)
	cc.SetStrict(c.Codec.Strict)
	return cc
}

// LogConfig returns the log levels for use with mlog.SetConfig. Levels must
// have been validated, as Parse and Load do.
func (c *Static) LogConfig() map[string]mlog.Level {
	m := map[string]mlog.Level{"": mlog.Levels[c.LogLevel]}
	for pkg, s := range c.PackageLogLevels {
		m[pkg] = mlog.Levels[s]
	}
	return m
}

// InputCharset returns the configured charset for undeclared 8bit input,
// codec.CharsetUTF8 if none is configured.
func (c *Static) InputCharset() string {
	if c.Codec.Charset == "" {
		return codec.CharsetUTF8
	}
	return c.Codec.Charset
}
