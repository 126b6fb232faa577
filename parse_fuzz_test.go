//go:build go1.18
// +build go1.18

package calculator_test

import (
	"strings"
	"testing"

	"github.com/utlark/calculator"
)

func FuzzParse(f *testing.F) {
	f.Add("2+2*2")
	f.Add("-(1,5)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := calculator.Parse(strings.NewReader(s))
		if err != nil {
			if _, ok := err.(calculator.InputError); !ok {
				t.Errorf("%q: non-input error %#v", s, err)
			}
			return
		}
		if len(e.Tokens()) == 0 {
			t.Errorf("%q parsed with no tokens", s)
		}
	})
}
