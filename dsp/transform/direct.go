package transform

import "math"

// Direct evaluates the DFT by summing every sample into every bin.
//
// Bin k holds (1/N)·Σ x[i]·e^{-2πiki/N}, so the imaginary part is
// (1/N)·Σ x[i]·sin(-2πki/N). A +sin sum would yield the conjugate spectrum;
// the negative sign matches the twiddles of [Recursive] and [Iterative].
//
// It accepts any length, including zero, and never fails.
type Direct struct{}

// Name returns "DFT".
func (Direct) Name() string { return "DFT" }

// Transform returns the normalized spectrum of signal.
func (Direct) Transform(signal []float64) (Result, error) {
	n := len(signal)
	out := NewSpectrum(n)
	if n == 0 {
		return Result{Spectrum: out}, nil
	}

	var ops OpCount
	inv := 1 / float64(n)
	for k := range n {
		var a, b float64
		for i, x := range signal {
			angle := 2 * math.Pi * float64(k) * float64(i) / float64(n)
			a += x * math.Cos(angle)
			b += x * math.Sin(-angle)
		}
		out.Real[k] = inv * a
		out.Imag[k] = inv * b
		ops += directBinCost(n)
	}

	return Result{Spectrum: out, Ops: ops}, nil
}
