package core

import (
	"math"
	"math/bits"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
//
// eps is used as an absolute tolerance first and as a relative tolerance
// against the larger magnitude second.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsPowerOfTwo reports whether n is a power of two.
// 0 and 1 are accepted as the degenerate radix-2 sizes.
func IsPowerOfTwo(n int) bool {
	if n < 0 {
		return false
	}
	return n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for n > 0 and 0 otherwise.
func Log2(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// PowersOfTwo returns 2^from .. 2^to inclusive.
func PowersOfTwo(from, to int) []int {
	if from < 0 || to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for e := from; e <= to; e++ {
		out = append(out, 1<<e)
	}
	return out
}
