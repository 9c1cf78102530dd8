package transform

import (
	"fmt"
	"math"
	"math/bits"
)

// Recursive computes the DFT by radix-2 decimation in time.
//
// Each call splits the signal into freshly allocated even- and odd-indexed
// halves, transforms them recursively and combines them with one butterfly
// per output pair. Recursion depth is log2(N).
type Recursive struct {
	cfg config
}

// NewRecursive creates a recursive engine.
func NewRecursive(opts ...Option) *Recursive {
	return &Recursive{cfg: applyOptions(opts)}
}

// Name returns "FFT".
func (r *Recursive) Name() string { return "FFT" }

// Normalization reports the configured normalization mode.
func (r *Recursive) Normalization() Normalization { return r.cfg.normalization }

// Transform returns the spectrum of signal.
//
// len(signal) must be 0 or a power of two unless WithUncheckedLength is set.
func (r *Recursive) Transform(signal []float64) (Result, error) {
	n := len(signal)
	if !r.cfg.unchecked {
		if err := validateRadix2(r.Name(), n); err != nil {
			return Result{}, err
		}
	}
	if r.cfg.maxDepth > 0 {
		if depth := recursionDepth(n); depth > r.cfg.maxDepth {
			return Result{}, fmt.Errorf("%s: %w: length %d needs depth %d, limit %d",
				r.Name(), ErrDepthExceeded, n, depth, r.cfg.maxDepth)
		}
	}

	out, ops := r.transform(signal)
	if r.cfg.normalization == NormalizeOnce {
		out.scale(n)
	}
	return Result{Spectrum: out, Ops: ops}, nil
}

func (r *Recursive) transform(x []float64) (Spectrum, OpCount) {
	n := len(x)
	switch n {
	case 0:
		return NewSpectrum(0), 0
	case 1:
		return Spectrum{Real: []float64{x[0]}, Imag: []float64{0}}, 0
	}

	even, odd := splitEvenOdd(x)
	e, evenOps := r.transform(even)
	o, oddOps := r.transform(odd)

	out := NewSpectrum(n)
	half := n / 2
	var ops OpCount
	for k := range half {
		angle := -2 * math.Pi * float64(k) / float64(n)
		wr, wi := math.Cos(angle), math.Sin(angle)

		pr := o.Real[k]*wr - o.Imag[k]*wi
		pi := o.Real[k]*wi + o.Imag[k]*wr

		out.Real[k] = e.Real[k] + pr
		out.Imag[k] = e.Imag[k] + pi
		out.Real[k+half] = e.Real[k] - pr
		out.Imag[k+half] = e.Imag[k] - pi

		ops += butterflyCost
	}

	if r.cfg.normalization == NormalizePerLevel {
		out.scale(n)
	}
	ops += evenOps + oddOps + levelCost(n)

	return out, ops
}

// splitEvenOdd copies x[0::2] and x[1::2] into two new slices.
func splitEvenOdd(x []float64) (even, odd []float64) {
	even = make([]float64, (len(x)+1)/2)
	odd = make([]float64, len(x)/2)
	for i := range even {
		even[i] = x[2*i]
	}
	for i := range odd {
		odd[i] = x[2*i+1]
	}
	return even, odd
}

// recursionDepth returns the number of split levels for length n,
// ceil(log2(n)).
func recursionDepth(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
