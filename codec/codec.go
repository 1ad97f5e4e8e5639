package codec

import (
	"fmt"
)

// Codec is implemented by encoders and decoders that are configured with
// line-length policies and a strict mode flag. Concrete codecs typically embed
// a *Config to implement it.
type Codec interface {
	EncoderLinePolicy() LinePolicy
	DecoderLinePolicy() LinePolicy
	Strict() bool
	SetStrict(strict bool)
}

// Config holds the configuration shared by all codecs. The line policies are
// fixed at construction. Strict mode is off by default and can be toggled.
//
// What strict mode means is up to the codec: typically input that would
// otherwise be accepted with a workaround is rejected with an error.
//
// A Config is not safe for concurrent modification.
type Config struct {
	encoderPolicy LinePolicy
	decoderPolicy LinePolicy
	strict        bool
}

var _ Codec = (*Config)(nil)

// NewConfig returns a configuration with the line policy for encoding and the
// line policy expected while decoding. Strict mode is off.
func NewConfig(encoderPolicy, decoderPolicy LinePolicy) *Config {
	return &Config{encoderPolicy: encoderPolicy, decoderPolicy: decoderPolicy}
}

// EncoderLinePolicy returns the policy for wrapping encoded output.
func (c *Config) EncoderLinePolicy() LinePolicy {
	return c.encoderPolicy
}

// DecoderLinePolicy returns the policy decoded input is expected to follow.
func (c *Config) DecoderLinePolicy() LinePolicy {
	return c.decoderPolicy
}

func (c *Config) Strict() bool {
	return c.strict
}

func (c *Config) SetStrict(strict bool) {
	c.strict = strict
}

// Clone returns a copy, e.g. for use by another goroutine.
func (c *Config) Clone() *Config {
	nc := *c
	return &nc
}

func (c *Config) String() string {
	return fmt.Sprintf("encoder=%s decoder=%s strict=%v", c.encoderPolicy, c.decoderPolicy, c.strict)
}
