package calculator

import (
	"math"
	"math/bits"
)

// add64 returns a+b, or false if the sum does not fit in an int64.
func add64(a, b int64) (int64, bool) {
	c := a + b
	// Overflow iff both operands have the same sign and the sum's differs.
	if (a >= 0) == (b >= 0) && (c >= 0) != (a >= 0) {
		return 0, false
	}
	return c, true
}

// sub64 returns a-b, or false if the difference does not fit in an int64.
func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (a >= 0) != (b >= 0) && (c >= 0) != (a >= 0) {
		return 0, false
	}
	return c, true
}

// mul64 returns a*b, or false if the product does not fit in an int64.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		// The magnitude of MinInt64 is one more than MaxInt64.
		if lo > math.MaxInt64+1 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// neg64 returns -a, or false for math.MinInt64.
func neg64(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	return -a, true
}

// abs64 returns the magnitude of a as an unsigned integer, so that
// math.MinInt64 is representable.
func abs64(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}
