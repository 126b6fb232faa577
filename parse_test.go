package calculator

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		k := delimiter(r)
		if k == TokenNone {
			t.Errorf("no token for %c", r)
			continue
		}
		if p := (Token{Kind: k}).Precedence(); p < 2 {
			t.Errorf("operator %c has precedence %d, not above brackets", r, p)
		}
	}
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		kind TokenKind
		prec int
	}{
		{TokenNone, 0},
		{TokenNum, 0},
		{TokenAdd, 2},
		{TokenSub, 2},
		{TokenMul, 3},
		{TokenDiv, 3},
		{TokenOpen, 1},
		{TokenClose, 1},
		{TokenNegOpen, 1},
		{TokenPosOpen, 1},
	}
	for _, c := range cases {
		if p := (Token{Kind: c.kind}).Precedence(); p != c.prec {
			t.Errorf("%v: want precedence %d, got %d", c.kind, c.prec, p)
		}
	}
}

func TestParseTokens(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []Token
	}{
		{"num", "42", []Token{{TokenNum, "42", 1}}},
		{"spaced", " 4 2 ", []Token{{TokenNum, "42", 2}}},
		{"binary", "1 - 2", []Token{{TokenNum, "1", 1}, {TokenSub, "-", 3}, {TokenNum, "2", 5}}},
		{"unary", "1 - -2", []Token{{TokenNum, "1", 1}, {TokenSub, "-", 3}, {TokenNum, "-2", 5}}},
		{"neg-open", "-(1)", []Token{{TokenNegOpen, "-(", 1}, {TokenNum, "1", 3}, {TokenClose, ")", 4}}},
		{"equals", "1 =", []Token{{TokenNum, "1", 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if got := e.Tokens(); !reflect.DeepEqual(got, c.want) {
				t.Errorf("parsing %q:\n\twant %v\n\tgot  %v", c.src, c.want, got)
			}
		})
	}
}

func TestTokensCopy(t *testing.T) {
	e, err := ParseString("1+2")
	if err != nil {
		t.Fatal(err)
	}
	toks := e.Tokens()
	toks[0].Text = "7"
	toks[1].Kind = TokenMul
	if e.toks[0].Text != "1" || e.toks[1].Kind != TokenAdd {
		t.Errorf("modifying Tokens result changed the expression: %v", e.toks)
	}
	r, err := e.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if r != Int(3) {
		t.Errorf("want 3, got %v", r)
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "1+2", "1 + 2"},
		{"decimal", "1,5 × 2", "1.5 * 2"},
		{"unary", "1--1", "1 - -1"},
		{"neg-open", "2*-(3+4)", "2 * -( 3 + 4 )"},
		{"pos-open", "+(3)", "+( 3 )"},
		{"equals", "2+2=", "2 + 2"},
		{"glyphs", "8∶4÷2−1", "8 / 4 / 2 - 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			s := a.String()
			if s != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, s)
			}
			// The string form parses to the same value.
			b, err := ParseString(s)
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", c.src, s, err)
			}
			x, err := a.Eval()
			if err != nil {
				t.Fatal(err)
			}
			y, err := b.Eval()
			if err != nil {
				t.Fatal(err)
			}
			if x != y {
				t.Errorf("%q evaluates to %v but %q evaluates to %v", c.src, x, s, y)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		res  []string
	}{
		{"empty", "", new(EmptyExpressionError), []string{`(?i)\bempty\b.*\bexpression\b`}},
		{"only-equals", "=", new(EmptyExpressionError), []string{`(?i)\bempty\b`}},
		{"char", "2 + x", new(CharacterError), []string{`^5: `, `'x'`}},
		{"number", "12a", new(NumberError), []string{`^3: `, `"12a"`}},
		{"equals", "1=1", new(EqualsError), []string{`^2: `, `=`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v with no error", c.src, e)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("%q: want %T, got %#v", c.src, c.err, err)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("%q: message %q doesn't match %s", c.src, msg, re)
				}
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"short", "2+2*2"},
		{"brackets", "((1+2)*(3+4))/7"},
		{"decimals", "1,2*1.5 - 0.125/3.75"},
		{"unary", "-(1/2 * -3) + +(4)"},
		{"glyphs", "3 × 4 ÷ 6 − 1"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var src strings.Reader
			for i := 0; i < b.N; i++ {
				src.Reset(c.src)
				Parse(&src)
			}
		})
	}
}
