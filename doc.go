// Package calculator evaluates arithmetic expressions exactly, over fractions
// with 64-bit numerators and denominators.
//
// Expressions are written the way you'd type them into a pocket calculator:
// "1/2*-2", "(2+2)*2", "1,2 × 1.5". The operators are + - * / with the usual
// precedence, brackets group, and a + or - directly before a number or an open
// bracket is a sign. A decimal comma works like a decimal point, and several
// Unicode glyphs such as × ÷ − are accepted for the operators. A trailing =
// is allowed and ignored.
//
//	expr    = term { ("+" | "-") term }
//	term    = factor { ("*" | "/") factor }
//	factor  = [ "-" | "+" ] ( number | "(" expr ")" )
//	number  = digits [ "." digits ]
//
// Results are Rationals in lowest terms. Arithmetic which would overflow 64
// bits is an error rather than an approximation.
package calculator
