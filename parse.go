package calculator

import (
	"io"
	"strings"
)

// Expr is a tokenized expression. An Expr is immutable once parsed, so it is
// safe to evaluate it any number of times, including concurrently.
type Expr struct {
	// toks is the token queue in input order.
	toks []Token
	// end is the position just past the end of the input.
	end int
}

// Parse normalizes and tokenizes an expression read from src until EOF.
// Errors in the input are reported as InputErrors; any other error is from
// reading src.
func Parse(src io.RuneScanner) (*Expr, error) {
	l, err := lex(src)
	if err != nil {
		return nil, err
	}
	toks, err := l.tokens()
	if err != nil {
		return nil, err
	}
	return &Expr{toks: toks, end: l.end}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// Tokens returns a copy of the expression's tokens in input order.
func (e *Expr) Tokens() []Token {
	return append([]Token(nil), e.toks...)
}

// String returns the normalized tokens of the expression separated by spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Precedence returns the binding strength of the token. Higher binds tighter.
// Brackets bind loosest so that operators never reduce across them.
func (t Token) Precedence() int {
	switch t.Kind {
	case TokenMul, TokenDiv:
		return 3
	case TokenAdd, TokenSub:
		return 2
	case TokenOpen, TokenClose, TokenNegOpen, TokenPosOpen:
		return 1
	default:
		return 0
	}
}

// opens reports whether the token is one of the open bracket forms.
func (t Token) opens() bool {
	switch t.Kind {
	case TokenOpen, TokenNegOpen, TokenPosOpen:
		return true
	default:
		return false
	}
}
