package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "calculator 1.0.0"

const usage = `calculator evaluates arithmetic on exact fractions.

Usage:
  calculator [options] [--] [EXPRESSION...]
  calculator -h | --help
  calculator --version

Arguments:
  EXPRESSION  Expression to evaluate. Multiple words are joined into one
              expression. Use -- before an expression that starts with -.

Options:
  -f, --fmt=VERB      Format of each result, e.g. %v or %.3f. By default a
                      result prints as its fraction and decimal value.
  -i, --in=FILE       Read expressions, one per line, from FILE ("-" for stdin).
  -e, --echo          Print the tokens of each expression before its result.
  --no-color          Disable colored output.
  --history=FILE      History file for interactive mode [default: ~/.calculator_history].
  -h, --help          Display this help.
  --version           Print the version.

Supported operations are + - * / and brackets. Numbers may be written as
'-5', '0,5' or '0.5'; '1/2' is a division. With no expression and no input
file, and stdin a terminal, calculator starts an interactive session.
`

type options struct {
	// expr is the expression given on the command line, or empty.
	expr string
	// in is the input file name, or empty.
	in string
	// verb formats results. If it is empty, results print as Display does.
	verb    string
	echo    bool
	color   bool
	history string
	// interactive is set when there is nothing to evaluate and stdin is a
	// terminal.
	interactive bool
}

// parseOptions parses command-line arguments. help is called for --help,
// --version, and usage errors.
func parseOptions(argv []string, help func(error, string)) (*options, error) {
	p := docopt.Parser{HelpHandler: help}
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}

	o := options{}
	words, _ := opts["EXPRESSION"].([]string)
	o.expr = strings.Join(words, "")
	o.in, _ = opts.String("--in")
	o.verb, _ = opts.String("--fmt")
	o.echo, _ = opts.Bool("--echo")
	nocolor, _ := opts.Bool("--no-color")
	o.color = !nocolor && isatty.IsTerminal(os.Stdout.Fd())
	o.history, _ = opts.String("--history")
	o.history = expandHome(o.history)

	o.interactive = strings.TrimSpace(o.expr) == "" && o.in == "" && isatty.IsTerminal(os.Stdin.Fd())
	return &o, nil
}

// expandHome replaces a leading ~ in path with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
