package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Text is the token text after normalization. Numbers include a fused
	// unary sign, e.g. "-5".
	Text string
	// Col is the rune position of the start of the token in the input,
	// counting from 1. Whitespace and substituted glyphs count as they appear
	// in the input.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a decimal number with an optional sign.
	TokenNum
	// TokenAdd, TokenSub, TokenMul, and TokenDiv are binary operators.
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	// TokenOpen is an open bracket.
	TokenOpen
	// TokenClose is a close bracket.
	TokenClose
	// TokenNegOpen is a unary minus fused with an open bracket, as in -(x).
	// The bracketed value is negated when the bracket closes.
	TokenNegOpen
	// TokenPosOpen is a unary plus fused with an open bracket, as in +(x).
	TokenPosOpen
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Operators contains the runes which are binary operators, or unary operators
// where they precede a number or an open bracket.
const Operators = "+-*/"

// OpenBracket and CloseBracket are the runes which group expressions.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

// substitutions maps the runes which are accepted as synonyms for operators or
// the decimal point to their ASCII forms.
var substitutions = map[rune]rune{
	'·': '*',
	'×': '*',
	'⋅': '*',
	'∙': '*',
	'∗': '*',
	'∶': '/',
	':': '/',
	'÷': '/',
	'∕': '/',
	'⁄': '/',
	'＋': '+',
	'−': '-',
	'－': '-',
	',': '.',
}

// normalizeRune maps r to the rune the tokenizer sees. The second result is
// false if r is dropped entirely.
func normalizeRune(r rune) (rune, bool) {
	if unicode.IsSpace(r) {
		return 0, false
	}
	if s, ok := substitutions[r]; ok {
		return s, true
	}
	return r, true
}

// Normalize rewrites s the way the tokenizer sees it: operator glyphs become
// their ASCII forms, decimal commas become points, and whitespace is removed.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if n, ok := normalizeRune(r); ok {
			b.WriteRune(n)
		}
	}
	return b.String()
}

// char is a normalized rune and its position in the input.
type char struct {
	r   rune
	col int
}

type lexer struct {
	src []char
	// end is the position just past the end of the input.
	end int
}

// lex reads and normalizes all of src.
func lex(src io.RuneScanner) (*lexer, error) {
	l := lexer{}
	col := 0
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		col++
		if n, ok := normalizeRune(r); ok {
			l.src = append(l.src, char{r: n, col: col})
		}
	}
	l.end = col + 1
	return &l, nil
}

// tokens scans the normalized input into tokens in a single pass.
func (l *lexer) tokens() ([]Token, error) {
	s := l.src
	if len(s) == 0 {
		return nil, &EmptyExpressionError{Col: l.end}
	}
	var toks []Token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case l.unary(i):
			if s[i+1].r == OpenBracket {
				kind := TokenPosOpen
				if c.r == '-' {
					kind = TokenNegOpen
				}
				toks = append(toks, Token{Kind: kind, Text: string(c.r) + "(", Col: c.col})
				i += 2
				continue
			}
			j, err := l.scanNum(i, i+1)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: TokenNum, Text: l.text(i, j), Col: c.col})
			i = j
		case isDigit(c.r):
			j, err := l.scanNum(i, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: TokenNum, Text: l.text(i, j), Col: c.col})
			i = j
		case c.r == '=':
			// A trailing = is an optional request to evaluate.
			if i != len(s)-1 {
				return nil, &EqualsError{Col: c.col}
			}
			i++
		default:
			kind := delimiter(c.r)
			if kind == TokenNone {
				return nil, &CharacterError{Col: c.col, Char: c.r}
			}
			toks = append(toks, Token{Kind: kind, Text: string(c.r), Col: c.col})
			i++
		}
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: l.end}
	}
	return toks, nil
}

// unary reports whether the rune at i is a sign which applies to the number
// or bracket that follows it. That is the case at the start of the input or
// after an operator or open bracket.
func (l *lexer) unary(i int) bool {
	s := l.src
	if s[i].r != '+' && s[i].r != '-' || i+1 >= len(s) {
		return false
	}
	if next := s[i+1].r; !isDigit(next) && next != OpenBracket {
		return false
	}
	if i == 0 {
		return true
	}
	prev := s[i-1].r
	return prev == OpenBracket || strings.ContainsRune(Operators, prev)
}

// scanNum scans a number whose token starts at start and whose digits start
// at i. It returns the index just past the number. A number ends at an
// operator, a bracket, or an equals sign.
func (l *lexer) scanNum(start, i int) (int, error) {
	s := l.src
	for ; i < len(s); i++ {
		r := s[i].r
		switch {
		case delimiter(r) != TokenNone, r == '=':
			return i, nil
		case isDigit(r):
		case r == '.' && s[i-1].r != '.':
		default:
			return i, &NumberError{Col: s[i].col, Text: l.text(start, i+1)}
		}
	}
	return i, nil
}

// text returns the normalized input from i up to but not including j.
func (l *lexer) text(i, j int) string {
	var b strings.Builder
	for _, c := range l.src[i:j] {
		b.WriteRune(c.r)
	}
	return b.String()
}

// delimiter returns the token kind of an operator or bracket rune, or
// TokenNone if r is neither.
func delimiter(r rune) TokenKind {
	switch r {
	case '+':
		return TokenAdd
	case '-':
		return TokenSub
	case '*':
		return TokenMul
	case '/':
		return TokenDiv
	case OpenBracket:
		return TokenOpen
	case CloseBracket:
		return TokenClose
	default:
		return TokenNone
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
