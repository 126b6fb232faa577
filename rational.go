package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rational is an exact fraction with 64-bit numerator and denominator.
//
// Every Rational returned by this package is in lowest terms and has a
// positive denominator, so the sign lives in the numerator and two values are
// equal exactly when they compare equal with ==. Rational has value semantics:
// arithmetic returns a new value and never modifies its operands.
//
// All arithmetic is overflow-checked. An operation whose exact result does not
// fit in 64 bits fails with an *OverflowError instead of wrapping.
//
// The zero value of Rational is 0.
type Rational struct {
	num int64
	// dm is the denominator minus one, so that the zero value is 0/1.
	dm int64
}

// den returns the denominator of r.
func (r Rational) den() int64 {
	return r.dm + 1
}

// Int returns the integer n as a Rational.
func Int(n int64) Rational {
	return Rational{num: n}
}

// Frac returns num/den in lowest terms. If den is zero, the result is a
// *DivisionByZeroError.
func Frac(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, &DivisionByZeroError{X: Int(num)}
	}
	return reduce(num, den, "/")
}

// ParseRational parses a decimal literal: an optional sign, a run of digits,
// and optionally a dot followed by another run of digits. "1.25" parses as
// 5/4. A sign applies to the whole literal, so "-1.5" is -3/2, not -1+5/10.
// Malformed literals fail with a *LiteralError. An integer literal which
// does not fit in an int64 fails with an *OverflowError.
func ParseRational(s string) (Rational, error) {
	body := s
	neg := false
	if body != "" && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	ip, fp, dec := strings.Cut(body, ".")
	if !digits(ip) || dec && !digits(fp) {
		return Rational{}, &LiteralError{Text: s}
	}
	if !dec {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Rational{}, &OverflowError{Op: s}
			}
			return Rational{}, &LiteralError{Text: s}
		}
		return Int(n), nil
	}
	// I.F is (I * 10^len(F) + F) / 10^len(F). Any overflow here means the
	// literal has more digits than we can represent.
	pow := int64(1)
	for range fp {
		var ok bool
		if pow, ok = mul64(pow, 10); !ok {
			return Rational{}, &LiteralError{Text: s}
		}
	}
	i, err := strconv.ParseInt(ip, 10, 64)
	if err != nil {
		return Rational{}, &LiteralError{Text: s}
	}
	f, err := strconv.ParseInt(fp, 10, 64)
	if err != nil {
		return Rational{}, &LiteralError{Text: s}
	}
	m, ok := mul64(i, pow)
	if ok {
		m, ok = add64(m, f)
	}
	if !ok {
		return Rational{}, &LiteralError{Text: s}
	}
	if neg {
		m = -m
	}
	return reduce(m, pow, s)
}

// digits reports whether s is a non-empty run of ASCII digits.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// gcf computes the greatest common factor of a and b with Euclid's algorithm.
// gcf(0, n) is n. The sign of the result follows the operands; callers only
// rely on its magnitude.
func gcf(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce returns num/den in lowest terms with a positive denominator. den must
// not be zero. op names the operation for overflow errors.
func reduce(num, den int64, op string) (Rational, error) {
	g := gcf(num, den)
	// A gcf of MinInt64 only happens when den is MinInt64 and num is 0 or
	// MinInt64, and dividing by it is still exact.
	if g < 0 && g != math.MinInt64 {
		g = -g
	}
	num /= g
	den /= g
	if den < 0 {
		n, ok := neg64(num)
		d, ok2 := neg64(den)
		if !ok || !ok2 {
			return Rational{}, &OverflowError{Op: op}
		}
		num, den = n, d
	}
	return Rational{num: num, dm: den - 1}, nil
}

// Num returns the numerator of r. It carries the sign of r.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator of r, which is always positive.
func (r Rational) Den() int64 {
	return r.den()
}

// IsInt reports whether r is an integer.
func (r Rational) IsInt() bool {
	return r.dm == 0
}

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Add returns r+s.
func (r Rational) Add(s Rational) (Rational, error) {
	return r.addsub(s, add64, "+")
}

// Sub returns r-s.
func (r Rational) Sub(s Rational) (Rational, error) {
	return r.addsub(s, sub64, "-")
}

// addsub brings r and s to their least common denominator and combines the
// scaled numerators with op.
func (r Rational) addsub(s Rational, op func(a, b int64) (int64, bool), name string) (Rational, error) {
	lcm, ok := mul64(r.den()/gcf(r.den(), s.den()), s.den())
	if !ok {
		return Rational{}, &OverflowError{Op: name}
	}
	x, ok := mul64(r.num, lcm/r.den())
	if !ok {
		return Rational{}, &OverflowError{Op: name}
	}
	y, ok := mul64(s.num, lcm/s.den())
	if !ok {
		return Rational{}, &OverflowError{Op: name}
	}
	n, ok := op(x, y)
	if !ok {
		return Rational{}, &OverflowError{Op: name}
	}
	return reduce(n, lcm, name)
}

// Mul returns r*s.
func (r Rational) Mul(s Rational) (Rational, error) {
	n, ok := mul64(r.num, s.num)
	if !ok {
		return Rational{}, &OverflowError{Op: "*"}
	}
	d, ok := mul64(r.den(), s.den())
	if !ok {
		return Rational{}, &OverflowError{Op: "*"}
	}
	return reduce(n, d, "*")
}

// Div returns r/s. If s is zero, the result is a *DivisionByZeroError.
func (r Rational) Div(s Rational) (Rational, error) {
	d, ok := mul64(r.den(), s.num)
	if !ok {
		return Rational{}, &OverflowError{Op: "/"}
	}
	if d == 0 {
		return Rational{}, &DivisionByZeroError{X: r}
	}
	n, ok := mul64(r.num, s.den())
	if !ok {
		return Rational{}, &OverflowError{Op: "/"}
	}
	return reduce(n, d, "/")
}

// Neg returns -r.
func (r Rational) Neg() (Rational, error) {
	n, ok := neg64(r.num)
	if !ok {
		return Rational{}, &OverflowError{Op: "-"}
	}
	return Rational{num: n, dm: r.dm}, nil
}

// Float64 returns the nearest float64 to r. It is meant for display.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.den())
}

// String returns r as "n" if it is an integer and as "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den(), 10)
}

// Display returns r as an exact fraction followed by its decimal
// approximation, e.g. "9/5 = 1.8".
func (r Rational) Display() string {
	return r.String() + " = " + strconv.FormatFloat(r.Float64(), 'g', -1, 64)
}

// Format implements fmt.Formatter. The verbs %v and %s print the exact
// fraction; the floating-point verbs print the decimal approximation with the
// given flags, width, and precision.
func (r Rational) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), r.String())
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, 'q'), r.String())
	case 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'b':
		fmt.Fprintf(f, fmt.FormatString(f, verb), r.Float64())
	default:
		fmt.Fprintf(f, "%%!%c(calculator.Rational=%s)", verb, r.String())
	}
}
