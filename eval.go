package calculator

import (
	"io"
	"strings"
)

// pending is an operator waiting on the operator stack.
type pending struct {
	Token
	// base is the operand stack depth when an open bracket was pushed. The
	// bracketed subexpression must leave exactly one operand above it.
	base int
}

// evaluator holds the operand and operator stacks for a single evaluation.
type evaluator struct {
	nums []Rational
	ops  []pending
}

// Eval evaluates the expression with the shunting-yard algorithm. The first
// error aborts the evaluation; every error from a well-formed Expr is an
// InputError.
func (e *Expr) Eval() (Rational, error) {
	ev := evaluator{
		nums: make([]Rational, 0, len(e.toks)/2+1),
		ops:  make([]pending, 0, len(e.toks)/2+1),
	}
	for _, tok := range e.toks {
		switch tok.Kind {
		case TokenNum:
			r, err := ParseRational(tok.Text)
			if err != nil {
				return Rational{}, setpos(err, tok.Col)
			}
			ev.nums = append(ev.nums, r)
		case TokenOpen, TokenNegOpen, TokenPosOpen:
			ev.ops = append(ev.ops, pending{Token: tok, base: len(ev.nums)})
		case TokenClose:
			if err := ev.close(tok); err != nil {
				return Rational{}, err
			}
		case TokenAdd, TokenSub, TokenMul, TokenDiv:
			for len(ev.ops) > 0 {
				top := ev.ops[len(ev.ops)-1]
				if top.opens() || top.Precedence() < tok.Precedence() {
					break
				}
				if err := ev.reduce(); err != nil {
					return Rational{}, err
				}
			}
			ev.ops = append(ev.ops, pending{Token: tok})
		default:
			panic("calculator: invalid token " + tok.String())
		}
	}
	for len(ev.ops) > 0 {
		if err := ev.reduce(); err != nil {
			return Rational{}, err
		}
	}
	if len(ev.nums) != 1 {
		return Rational{}, &OperandError{Col: e.end}
	}
	return ev.nums[0], nil
}

// close applies operators back to the innermost open bracket and removes it,
// negating the bracketed value for -(.
func (ev *evaluator) close(tok Token) error {
	for len(ev.ops) > 0 && !ev.ops[len(ev.ops)-1].opens() {
		if err := ev.reduce(); err != nil {
			return err
		}
	}
	if len(ev.ops) == 0 {
		return &BracketError{Col: tok.Col, Right: string(CloseBracket)}
	}
	open := ev.ops[len(ev.ops)-1]
	ev.ops = ev.ops[:len(ev.ops)-1]
	if len(ev.nums) != open.base+1 {
		return &OperandError{Col: tok.Col, Operator: open.Text}
	}
	if open.Kind == TokenNegOpen {
		top := &ev.nums[len(ev.nums)-1]
		r, err := top.Neg()
		if err != nil {
			return setpos(err, open.Col)
		}
		*top = r
	}
	return nil
}

// reduce pops the top operator and its two operands and pushes the result.
func (ev *evaluator) reduce() error {
	op := ev.ops[len(ev.ops)-1]
	if op.opens() {
		return &BracketError{Col: op.Col, Left: string(OpenBracket)}
	}
	if len(ev.nums) < 2 {
		return &OperandError{Col: op.Col, Operator: op.Text}
	}
	ev.ops = ev.ops[:len(ev.ops)-1]
	right := ev.nums[len(ev.nums)-1]
	left := ev.nums[len(ev.nums)-2]
	ev.nums = ev.nums[:len(ev.nums)-2]
	var (
		r   Rational
		err error
	)
	switch op.Kind {
	case TokenAdd:
		r, err = left.Add(right)
	case TokenSub:
		r, err = left.Sub(right)
	case TokenMul:
		r, err = left.Mul(right)
	case TokenDiv:
		r, err = left.Div(right)
	default:
		panic("calculator: reduce on " + op.String())
	}
	if err != nil {
		return setpos(err, op.Col)
	}
	ev.nums = append(ev.nums, r)
	return nil
}

// Eval is a shortcut to parse an expression from src and evaluate it.
func Eval(src io.RuneScanner) (Rational, error) {
	e, err := Parse(src)
	if err != nil {
		return Rational{}, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (Rational, error) {
	return Eval(strings.NewReader(src))
}
