/*
minilexer is a console utility to check grammar files and run them against text.
Usage is

	minilexer check -g <file> [-s <name>]
	minilexer describe -g <file> [-s <name>] [-m <pattern>]
	minilexer regex -g <file> [-s <name>]
	minilexer match -g <file> [-s <name>] [--full] [-t <text> | <file>]
	minilexer tokens -g <file> -k <name> [-k <name> ...] [-f text|json|yaml|table] [-t <text> | <file>]

-g <file> defines grammar file parsable by langdef.Parse();

-s <name> defines start production, default is the first production in grammar file;

-t <text> defines input text, default is the content of <file> or standard input;

-m <pattern> selects productions with names matching glob pattern, e.g. "{List,Item}" or "[a-z]*";

-f <format> defines token output format, default is text;

--log-level and --log-file control diagnostic output, records are written to standard error
and (in JSON format) to log file if provided.

Flags missing from command line are taken from MINILEXER_<FLAG> environment variables,
e.g. MINILEXER_GRAMMAR, MINILEXER_START, or MINILEXER_LOG_LEVEL.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if e := execute(newRootCmd()); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}
