package transform

import "github.com/cwbudde/algo-fourier/dsp/core"

// OpCount is an engine-local cost-model unit.
type OpCount uint64

// Cost-model charges. They are accounting units, not instruction counts.
const (
	// butterflyCost is charged once per radix-2 butterfly.
	butterflyCost OpCount = 14
)

// directBinCost is charged by the direct engine for every output bin of an
// n-point transform: 4n+n+1 for each of the two accumulators.
func directBinCost(n int) OpCount {
	return OpCount(2 * (4*n + n + 1))
}

// levelCost is charged by the radix-2 engines once per combined block of
// length n, on top of its butterflies.
func levelCost(n int) OpCount {
	return OpCount(2 * n)
}

// DirectCost returns the operation count [Direct] reports for length n,
// 10n²+2n.
func DirectCost(n int) OpCount {
	if n <= 0 {
		return 0
	}
	return OpCount(n) * directBinCost(n)
}

// RecursiveCost returns the operation count [Recursive] and [Iterative]
// report for a power-of-two length n, 9·n·log2(n).
func RecursiveCost(n int) OpCount {
	if n < 2 {
		return 0
	}
	return OpCount(9 * n * core.Log2(n))
}
