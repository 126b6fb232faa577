package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strings"

	"github.com/peterh/liner"

	"github.com/utlark/calculator"
)

const help = `Supported operations: + - * / ( )
Supported numbers: '-5', '1/2', '0,5', '0.5'
Examples: '2+2*2', '(2+2)*2', '1/2*-2', '1,2*1.5'
Enter "i" or "help" to show this message, "q" or Ctrl-D to quit.`

// ANSI SGR sequences for results and errors.
const (
	green = "\x1b[32m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

// command is what the user asked for with one line of input.
type command int

const (
	cmdEval command = iota
	cmdSkip
	cmdHelp
	cmdQuit
)

func classify(line string) command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return cmdSkip
	case "i", "help", "?":
		return cmdHelp
	case "q", "n", "quit", "exit":
		return cmdQuit
	default:
		return cmdEval
	}
}

// answer evaluates an expression and formats the response. The second result
// is false if the expression failed.
func answer(line string, echo bool) (string, bool) {
	e, err := calculator.ParseString(line)
	if err != nil {
		return err.Error(), false
	}
	r, err := e.Eval()
	if err != nil {
		return err.Error(), false
	}
	if echo {
		return e.String() + " : Answer: " + r.Display(), true
	}
	return "Answer: " + r.Display(), true
}

// paint wraps s in the color for a result or an error.
func paint(s string, ok, color bool) string {
	if !color {
		return s
	}
	if ok {
		return green + s + reset
	}
	return red + s + reset
}

// respond handles one line of interactive input, writing the response to w.
// It returns false when the session should end.
func respond(w io.Writer, line string, o *options) bool {
	switch classify(line) {
	case cmdSkip:
	case cmdHelp:
		fmt.Fprintln(w, help)
	case cmdQuit:
		return false
	default:
		s, ok := answer(line, o.echo)
		fmt.Fprintln(w, paint(s, ok, o.color))
	}
	return true
}

// interact runs the interactive session until the user quits.
func interact(w io.Writer, o *options) {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	if err := loadHistory(o.history, cli.ReadHistory); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Print(err)
	}

	fmt.Fprintln(w, `Enter an expression, "i" for help, or "q" to quit.`)
loop:
	for {
		line, err := cli.Prompt("> ")
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)
			break loop
		default:
			log.Print(err)
			break loop
		}
		if classify(line) != cmdSkip {
			cli.AppendHistory(line)
		}
		if !respond(w, line, o) {
			break
		}
	}

	if err := saveHistory(o.history, cli.WriteHistory); err != nil {
		log.Print(err)
	}
}
