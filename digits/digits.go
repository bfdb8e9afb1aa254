// Package digits provides exact decimal digit arithmetic.
package digits

import "golang.org/x/exp/constraints"

// MaxUint64Width is the number of decimal digits in the largest uint64.
const MaxUint64Width = 20

// Width returns the number of decimal digits in n, ignoring the sign. Zero
// has a width of 1.
//
// Width counts by repeated division rather than log10, which is off by one
// for some exact powers of ten.
func Width[T constraints.Integer](n T) (w int) {
	if n == 0 {
		return 1
	}

	// Go division truncates toward zero, so negative values count the same
	// as their absolute value without risking overflow on the minimum.
	for ; n != 0; n /= 10 {
		w++
	}

	return w
}

// Pow10 returns 10^n for n in [0, 19]. It panics for any other n.
func Pow10(n int) uint64 {
	return pow10[n]
}

var pow10 = [MaxUint64Width]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}
