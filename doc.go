/*
Command mailcodec exposes the text primitives of package codec for use from
the shell: hexadecimal digits, 7bit/8bit classification, percent decoding,
escaping and quoting, charset conversion and the line-length policies.

Most commands take their input as arguments, or if there are none, as lines
from standard input.

# Commands

	mailcodec [-config mailcodec.conf] [-loglevel level] [-strict] ...
	mailcodec hex [digit ...]
	mailcodec tohex [value ...]
	mailcodec classify [text ...]
	mailcodec decodepercent [text ...]
	mailcodec escape chars [text ...]
	mailcodec quote [-char c] [text ...]
	mailcodec charset decode [charset] <text
	mailcodec policies
	mailcodec config describe >mailcodec.conf
	mailcodec config test
	mailcodec version
	mailcodec help [command ...]

Use "mailcodec help command" for details about a command.
*/
package main
