package calculator

import "strconv"

// EmptyExpressionError is an error indicating an input with nothing to
// evaluate. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// CharacterError is an error indicating a character that cannot appear in an
// expression. It implements InputError.
type CharacterError struct {
	// Col is the position of the character.
	Col int
	// Char is the unexpected character, after normalization.
	Char rune
}

func (err *CharacterError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *CharacterError) Pos() int {
	return err.Col
}

// NumberError indicates an invalid character inside a number. It implements
// InputError.
type NumberError struct {
	// Col is the position of the invalid character.
	Col int
	// Text is the number scanned so far, plus the invalid character.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// EqualsError indicates an equals sign anywhere other than at the end of the
// input. It implements InputError.
type EqualsError struct {
	// Col is the position of the equals sign.
	Col int
}

func (err *EqualsError) Error() string {
	return errpos(err.Col, `"=" is only allowed at the end of an expression`)
}

func (err *EqualsError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched bracket in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the open bracket which was never closed, if that is the error.
	Left string
	// Right is the close bracket with no open bracket, if that is the error.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// Unmatched returns the bracket that was left unmatched.
func (err *BracketError) Unmatched() string {
	if err.Left != "" {
		return err.Left
	}
	return err.Right
}

// OperandError indicates that the operators and operands of an expression do
// not pair up, as in "2+" or "()". It implements InputError.
type OperandError struct {
	// Col is the position of the operator that lacked operands, or of the end
	// of the input if the expression had operands left over.
	Col int
	// Operator is the operator that lacked operands, if any.
	Operator string
}

func (err *OperandError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "mismatched operators and operands")
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division by zero. When it comes
// from evaluating an expression, it implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator, or 0 if the division did
	// not come from an expression.
	Col int
	// X is the dividend.
	X Rational
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division of "+err.X.String()+" by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// LiteralError indicates a number token which is not a valid decimal literal,
// e.g. "1.2.3". It implements InputError.
type LiteralError struct {
	// Col is the position of the literal, or 0 if it was not part of an
	// expression.
	Col int
	// Text is the literal.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// OverflowError indicates that an exact result did not fit in 64 bits. It
// implements InputError.
type OverflowError struct {
	// Col is the position of the operator or literal, or 0 if the operation
	// was not part of an expression.
	Col int
	// Op is the operator or the literal that overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "arithmetic overflow at "+strconv.Quote(err.Op))
}

func (err *OverflowError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position. Positions
// less than 1 are omitted.
func errpos(pos int, msg string) string {
	if pos < 1 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// setpos fills in the position of errors returned from Rational arithmetic.
func setpos(err error, col int) error {
	switch err := err.(type) {
	case *DivisionByZeroError:
		err.Col = col
	case *LiteralError:
		err.Col = col
	case *OverflowError:
		err.Col = col
	}
	return err
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*CharacterError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*EqualsError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*OverflowError)(nil)
)
