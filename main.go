package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/mjl-/sconf"

	"github.com/mailcodec/mailcodec/codec"
	"github.com/mailcodec/mailcodec/codecvar"
	"github.com/mailcodec/mailcodec/config"
	"github.com/mailcodec/mailcodec/mlog"
)

func envString(k, def string) string {
	s := os.Getenv(k)
	if s == "" {
		return def
	}
	return s
}

var commands = []struct {
	cmd string
	fn  func(c *cmd)
}{
	{"hex", cmdHex},
	{"tohex", cmdTohex},
	{"classify", cmdClassify},
	{"decodepercent", cmdDecodepercent},
	{"escape", cmdEscape},
	{"quote", cmdQuote},
	{"charset decode", cmdCharsetDecode},
	{"policies", cmdPolicies},
	{"config describe", cmdConfigDescribe},
	{"config test", cmdConfigTest},
	{"version", cmdVersion},
	{"help", cmdHelp},
}

var cmds []cmd

func init() {
	for _, xc := range commands {
		c := cmd{words: strings.Split(xc.cmd, " "), fn: xc.fn}
		cmds = append(cmds, c)
	}
}

type cmd struct {
	words []string
	fn    func(c *cmd)

	// Set before calling command.
	flag     *flag.FlagSet
	flagArgs []string
	_gather  bool // Set when using Parse to gather usage for a command.

	// Set by invoked command or Parse.
	params string // Arguments to command. Multiple lines possible.
	help   string // Additional explanation. First line is synopsis, the rest is only printed for an explicit help/usage for that command.
	args   []string

	log *mlog.Log
}

func (c *cmd) Parse() []string {
	// To gather params and usage information, we just run the command but cause this
	// panic after the command has registered its flags and set its params and help
	// information. This is then caught and that info printed.
	if c._gather {
		panic("gather")
	}

	c.flag.Usage = c.Usage
	c.flag.Parse(c.flagArgs)
	c.args = c.flag.Args()
	return c.args
}

func (c *cmd) gather() {
	c.flag = flag.NewFlagSet("mailcodec "+strings.Join(c.words, " "), flag.ExitOnError)
	c._gather = true
	defer func() {
		x := recover()
		// panic generated by Parse.
		if x != "gather" {
			panic(x)
		}
	}()
	c.fn(c)
}

func (c *cmd) makeUsage() string {
	var r strings.Builder
	cs := "mailcodec " + strings.Join(c.words, " ")
	for i, line := range strings.Split(strings.TrimSpace(c.params), "\n") {
		s := ""
		if i == 0 {
			s = "usage:"
		}
		if line != "" {
			line = " " + line
		}
		fmt.Fprintf(&r, "%6s %s%s\n", s, cs, line)
	}
	c.flag.SetOutput(&r)
	c.flag.PrintDefaults()
	return r.String()
}

func (c *cmd) Usage() {
	fmt.Fprint(os.Stderr, c.makeUsage())
	if c.help != "" {
		fmt.Fprint(os.Stderr, "\n"+c.help+"\n")
	}
	os.Exit(2)
}

func cmdHelp(c *cmd) {
	c.params = "[command ...]"
	c.help = `Prints help about matching commands.

If multiple commands match, they are listed along with the first line of their help text.
If a single command matches, its usage and full help text is printed.
`
	args := c.Parse()
	if len(args) == 0 {
		c.Usage()
	}

	var partial []cmd
	for _, c := range cmds {
		if slices.Equal(c.words, args) {
			c.gather()
			fmt.Print(c.makeUsage())
			if c.help != "" {
				fmt.Print("\n" + c.help + "\n")
			}
			return
		} else if len(args) <= len(c.words) && slices.Equal(args, c.words[:len(args)]) {
			partial = append(partial, c)
		}
	}
	if len(partial) == 0 {
		fmt.Fprintf(os.Stderr, "%s: unknown command\n", strings.Join(args, " "))
		os.Exit(2)
	}
	for _, c := range partial {
		c.gather()
		fmt.Printf("mailcodec %s\n", strings.Join(c.words, " "))
		if c.help != "" {
			fmt.Printf("\t%s\n", strings.Split(c.help, "\n")[0])
		}
	}
}

func usage(l []cmd) {
	lines := []string{"mailcodec [-config mailcodec.conf] [-loglevel level] [-strict] ..."}
	for _, c := range l {
		c.gather()
		for _, line := range strings.Split(c.params, "\n") {
			x := append([]string{"mailcodec"}, c.words...)
			if line != "" {
				x = append(x, line)
			}
			lines = append(lines, strings.Join(x, " "))
		}
	}
	for i, line := range lines {
		pre := "       "
		if i == 0 {
			pre = "usage: "
		}
		fmt.Fprintln(os.Stderr, pre+line)
	}
	os.Exit(2)
}

var (
	configPath    string
	configFlagSet bool // Whether -config or $MAILCODECCONF was set, making the file required.
	loglevel      string
	strict        bool
)

// loadConfig returns the configuration file, or defaults if the default config
// file does not exist. Log levels from the command-line override those from the
// file.
func loadConfig() *config.Static {
	conf := &config.Static{
		LogLevel: "error",
		Codec: config.Codec{
			EncoderLinePolicy: codec.LinePolicyRecommended.String(),
			DecoderLinePolicy: codec.LinePolicyMandatory.String(),
			EncoderPolicy:     codec.LinePolicyRecommended,
			DecoderPolicy:     codec.LinePolicyMandatory,
		},
	}
	if _, err := os.Stat(configPath); err == nil || configFlagSet || !errors.Is(err, fs.ErrNotExist) {
		c, errs := config.Load(configPath)
		if len(errs) > 0 {
			for _, err := range errs {
				log.Printf("%s", err)
			}
			os.Exit(1)
		}
		conf = c
	}

	lc := conf.LogConfig()
	if loglevel != "" {
		lc[""] = mlog.Levels[loglevel]
	}
	mlog.SetConfig(lc)
	if strict {
		conf.Codec.Strict = true
	}
	return conf
}

func main() {
	log.SetFlags(0)

	configPath = envString("MAILCODECCONF", "mailcodec.conf")
	configFlagSet = os.Getenv("MAILCODECCONF") != ""
	flag.Func("config", "configuration file, defaults to $MAILCODECCONF with a fallback to mailcodec.conf, which is only required to exist when set explicitly", func(s string) error {
		configPath = s
		configFlagSet = true
		return nil
	})
	levels := maps.Keys(mlog.Levels)
	slices.Sort(levels)
	flag.StringVar(&loglevel, "loglevel", "", "if non-empty, overrides the log level from the config file, one of: "+strings.Join(levels, ", "))
	flag.BoolVar(&strict, "strict", false, "reject input that violates the standards instead of working around it")
	flag.BoolVar(&mlog.Logfmt, "logfmt", false, "write log lines in logfmt")

	flag.Usage = func() { usage(cmds) }
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage(cmds)
	}
	if _, ok := mlog.Levels[loglevel]; loglevel != "" && !ok {
		log.Fatalf("unknown loglevel %q", loglevel)
	} else if ok {
		// Commands that load the config file apply its levels, with this one as default.
		mlog.SetConfig(map[string]mlog.Level{"": mlog.Levels[loglevel]})
	}

	var partial []cmd
next:
	for _, c := range cmds {
		for i, w := range c.words {
			if i >= len(args) || w != args[i] {
				if i > 0 {
					partial = append(partial, c)
				}
				continue next
			}
		}
		c.flag = flag.NewFlagSet("mailcodec "+strings.Join(c.words, " "), flag.ExitOnError)
		c.flagArgs = args[len(c.words):]
		c.log = mlog.New(strings.Join(c.words, ""))
		c.fn(&c)
		return
	}
	if len(partial) > 0 {
		usage(partial)
	}
	usage(cmds)
}

func xcheckf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Fatalf("%s: %s", msg, err)
}

// inputs returns args, or if there are none, the lines read from r without
// line endings.
func inputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var l []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1024*1024)
	for scanner.Scan() {
		l = append(l, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return l, scanner.Err()
}

func xinputs(c *cmd) []string {
	l, err := inputs(c.args, os.Stdin)
	xcheckf(err, "reading input")
	return l
}

func cmdHex(c *cmd) {
	c.params = "[digit ...]"
	c.help = `Prints the value of hexadecimal digits.

Upper and lower case digits are accepted. Without arguments, digits are read
from standard input, one per line.
`
	c.Parse()
	for _, s := range xinputs(c) {
		if len(s) != 1 {
			log.Fatalf("%q: %v", s, codec.ErrInvalidHexDigit)
		}
		v, err := codec.HexDigitToInt(s[0])
		xcheckf(err, "converting digit")
		fmt.Println(v)
	}
}

func cmdTohex(c *cmd) {
	c.params = "[value ...]"
	c.help = `Prints the uppercase hexadecimal digit for values 0-15.`
	c.Parse()
	for _, s := range xinputs(c) {
		v, err := strconv.Atoi(s)
		xcheckf(err, "parsing value")
		d, err := codec.IntToHexDigit(v)
		xcheckf(err, "converting value")
		fmt.Printf("%c\n", d)
	}
}

// classify returns whether s is 7bit or 8bit, and its charset. 8bit text is
// assumed to be in inputCharset, the configured charset for undeclared input.
func classify(s, inputCharset string) string {
	if !codec.IsUTF8String(s) {
		return "7bit " + codec.CharsetASCII
	}
	return "8bit " + inputCharset
}

func cmdClassify(c *cmd) {
	c.params = "[text ...]"
	c.help = `Prints whether text is 7bit or 8bit, and the charset to declare for it.

Each argument, or each line from standard input, is classified separately.
Only byte values are checked, not whether the text is valid UTF-8. The charset
of 8bit text is the Charset from the config file, UTF-8 by default.
`
	c.Parse()
	inputCharset := loadConfig().InputCharset()
	for _, s := range xinputs(c) {
		fmt.Println(classify(s, inputCharset))
	}
}

func cmdDecodepercent(c *cmd) {
	c.params = "[text ...]"
	c.help = `Decodes percent-encoded text, e.g. Hello%20World.

A percent sign not followed by two hexadecimal digits is an error, and nothing
is printed for that text.
`
	c.Parse()
	for _, s := range xinputs(c) {
		r, err := codec.DecodePercent(s)
		xcheckf(err, "decoding %q", s)
		fmt.Println(r)
	}
}

func cmdEscape(c *cmd) {
	c.params = "chars [text ...]"
	c.help = `Escapes each character of text that occurs in chars with a backslash.`
	args := c.Parse()
	if len(args) == 0 {
		c.Usage()
	}
	l, err := inputs(args[1:], os.Stdin)
	xcheckf(err, "reading input")
	for _, s := range l {
		fmt.Println(codec.EscapeString(s, args[0]))
	}
}

// quoteWith escapes q and backslashes in s, and surrounds the result with q.
func quoteWith(s string, q byte) string {
	if q == codec.QuoteChar {
		return codec.Quote(s)
	}
	return codec.SurroundString(codec.EscapeString(s, string(q)+`\`), q)
}

func cmdQuote(c *cmd) {
	c.params = "[-char c] [text ...]"
	c.help = `Quotes text: escapes the quote character and backslash, and surrounds with the quote character.`
	var char string
	c.flag.StringVar(&char, "char", codec.QuoteStr, "quote character, a single ASCII character")
	c.Parse()
	if len(char) != 1 || codec.Is8BitChar(char[0]) {
		c.Usage()
	}
	for _, s := range xinputs(c) {
		fmt.Println(quoteWith(s, char[0]))
	}
}

// charsetArg returns the charset from the command-line arguments, or the
// configured input charset if none was given.
func charsetArg(args []string, conf *config.Static) string {
	if len(args) > 0 {
		return args[0]
	}
	return conf.InputCharset()
}

func cmdCharsetDecode(c *cmd) {
	c.params = "[charset] <text"
	c.help = `Converts text in charset from standard input to UTF-8.

Without charset, the Charset from the config file is used, UTF-8 by default.
Unknown charsets are passed through as is, unless strict mode is enabled,
through the -strict flag or the config file.
`
	args := c.Parse()
	if len(args) > 1 {
		c.Usage()
	}
	conf := loadConfig()
	cc := conf.CodecConfig()
	charset := charsetArg(args, conf)
	if !codec.KnownCharset(charset) {
		if cc.Strict() {
			log.Fatalf("unknown charset %q", charset)
		}
		c.log.Info("unknown charset, passing text through", mlog.Field("charset", charset))
	}
	buf, err := io.ReadAll(os.Stdin)
	xcheckf(err, "reading input")
	s, err := codec.DecodeCharset(charset, buf)
	xcheckf(err, "decoding")
	fmt.Print(s)
}

func cmdPolicies(c *cmd) {
	c.help = `Lists the line-length policies and their maximum line lengths.

The configured encoder and decoder policies are marked.
`
	if len(c.Parse()) != 0 {
		c.Usage()
	}
	cc := loadConfig().CodecConfig()
	c.log.Debug("codec config", mlog.Field("config", cc))
	for _, p := range codec.LinePolicies() {
		var marks []string
		if p == cc.EncoderLinePolicy() {
			marks = append(marks, "encoder")
		}
		if p == cc.DecoderLinePolicy() {
			marks = append(marks, "decoder")
		}
		limit := "unlimited"
		if n := p.MaxLineLen(); n > 0 {
			limit = strconv.Itoa(n)
		}
		fmt.Printf("%-12s %9s %s\n", p, limit, strings.Join(marks, ","))
	}
}

func cmdConfigDescribe(c *cmd) {
	c.params = ">mailcodec.conf"
	c.help = `Prints an annotated empty configuration for use as mailcodec.conf.`
	if len(c.Parse()) != 0 {
		c.Usage()
	}

	var sc config.Static
	err := sconf.Describe(os.Stdout, &sc)
	xcheckf(err, "describing config")
}

func cmdConfigTest(c *cmd) {
	c.help = `Parses and validates the configuration file.

If valid, the command exits with status 0. If not valid, all errors encountered
are printed.
`
	if len(c.Parse()) != 0 {
		c.Usage()
	}

	_, errs := config.Load(configPath)
	if len(errs) > 1 {
		log.Printf("multiple errors:")
		for _, err := range errs {
			log.Printf("%s", err)
		}
		os.Exit(1)
	} else if len(errs) == 1 {
		log.Fatalf("%s", errs[0])
	}
	fmt.Println("config OK")
}

func cmdVersion(c *cmd) {
	c.help = "Prints this mailcodec version."
	if len(c.Parse()) != 0 {
		c.Usage()
	}
	fmt.Println(codecvar.Version)
	fmt.Printf("%s/%s\n", runtime.GOOS, runtime.GOARCH)
}
