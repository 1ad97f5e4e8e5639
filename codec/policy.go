package codec

import (
	"fmt"
	"strings"
)

// LinePolicy describes how long encoded lines may be. An encoder wraps its
// output to stay within the limit, a decoder uses it as the limit it expects
// its input to honor.
//
// The set of policies and their limits are defined by this package. The 78
// and 998 character limits are from RFC 5322 section 2.1.1, LinePolicyNone
// means no limit at all.
type LinePolicy int

const (
	LinePolicyNone        LinePolicy = iota // No limit.
	LinePolicyRecommended                   // 78 characters, excluding CRLF.
	LinePolicyMandatory                     // 998 characters, excluding CRLF.
	LinePolicyVeryLarge                     // 16384 characters, for transports that accept long lines.
)

var linePolicies = []struct {
	policy LinePolicy
	name   string
	max    int
}{
	{LinePolicyNone, "none", 0},
	{LinePolicyRecommended, "recommended", 78},
	{LinePolicyMandatory, "mandatory", 998},
	{LinePolicyVeryLarge, "verylarge", 16384},
}

// LinePolicies returns all known line policies, in order of increasing limit
// with LinePolicyNone first.
func LinePolicies() []LinePolicy {
	l := make([]LinePolicy, len(linePolicies))
	for i, lp := range linePolicies {
		l[i] = lp.policy
	}
	return l
}

// Valid returns whether p is one of the known policies.
func (p LinePolicy) Valid() bool {
	return p >= LinePolicyNone && int(p) < len(linePolicies)
}

// MaxLineLen returns the maximum number of characters on a line, not
// including the line ending. Zero means no limit.
func (p LinePolicy) MaxLineLen() int {
	if !p.Valid() {
		return 0
	}
	return linePolicies[p].max
}

func (p LinePolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("linepolicy(%d)", int(p))
	}
	return linePolicies[p].name
}

// ParseLinePolicy parses a policy name as returned by LinePolicy.String,
// case-insensitively.
func ParseLinePolicy(s string) (LinePolicy, error) {
	for _, lp := range linePolicies {
		if strings.EqualFold(s, lp.name) {
			return lp.policy, nil
		}
	}
	return 0, fmt.Errorf("unknown line policy %q", s)
}

func (p LinePolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown line policy %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *LinePolicy) UnmarshalText(buf []byte) error {
	np, err := ParseLinePolicy(string(buf))
	if err != nil {
		return err
	}
	*p = np
	return nil
}
