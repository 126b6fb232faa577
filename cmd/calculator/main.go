package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"

	"github.com/utlark/calculator"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calculator: ")
	o, err := parseOptions(os.Args[1:], docopt.PrintHelpAndExit)
	if err != nil {
		log.Fatal(err)
	}

	if o.interactive {
		interact(os.Stdout, o)
		return
	}

	var ins []io.Reader
	f, err := infile(o.in, o.expr == "")
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		ins = append(ins, f)
	}
	if o.expr != "" {
		ins = append(ins, strings.NewReader(o.expr))
	}

	failed := false
	for _, in := range ins {
		ok, err := batch(os.Stdout, in, o)
		if err != nil {
			log.Fatal(err)
		}
		failed = failed || !ok
	}
	if failed {
		os.Exit(1)
	}
}

// batch evaluates each non-blank line of in and writes the results to w. The
// first result is false if any expression failed. The error is from reading
// in or writing w.
func batch(w io.Writer, in io.Reader, o *options) (bool, error) {
	ok := true
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := calculator.ParseString(line)
		if err == nil && o.echo {
			if _, err := fmt.Fprintf(w, "%v : ", e); err != nil {
				return false, err
			}
		}
		var r calculator.Rational
		if err == nil {
			r, err = e.Eval()
		}
		if err != nil {
			ok = false
			if _, err := fmt.Fprintln(w, err); err != nil {
				return false, err
			}
			continue
		}
		if o.verb == "" {
			_, err = fmt.Fprintln(w, r.Display())
		} else {
			_, err = fmt.Fprintf(w, o.verb+"\n", r)
		}
		if err != nil {
			return false, err
		}
	}
	return ok, sc.Err()
}

// infile opens the named input file. The name "-", or an empty name when std
// is true, selects stdin. The result is nil if there is no input file.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
