package transform

import (
	"math"
	"math/bits"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Iterative computes the same radix-2 transform as [Recursive] with an
// in-place stage loop over a bit-reversed copy of the signal.
//
// Stack depth does not grow with N. Twiddles, butterfly order, normalization
// and operation counting follow [Recursive], so both engines produce the same
// spectrum and the same count.
type Iterative struct {
	cfg config
}

// NewIterative creates an iterative engine. Only WithNormalization applies.
func NewIterative(opts ...Option) *Iterative {
	return &Iterative{cfg: applyOptions(opts)}
}

// Name returns "FFT (iterative)".
func (it *Iterative) Name() string { return "FFT (iterative)" }

// Normalization reports the configured normalization mode.
func (it *Iterative) Normalization() Normalization { return it.cfg.normalization }

// Transform returns the spectrum of signal. len(signal) must be 0 or a power
// of two.
func (it *Iterative) Transform(signal []float64) (Result, error) {
	n := len(signal)
	if err := validateRadix2(it.Name(), n); err != nil {
		return Result{}, err
	}

	out := NewSpectrum(n)
	if n == 0 {
		return Result{Spectrum: out}, nil
	}

	logN := core.Log2(n)
	for i, x := range signal {
		out.Real[bitReverse(i, logN)] = x
	}

	var ops OpCount
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		for start := 0; start < n; start += size {
			for k := range half {
				angle := -2 * math.Pi * float64(k) / float64(size)
				wr, wi := math.Cos(angle), math.Sin(angle)

				ei, oi := start+k, start+k+half
				er, eim := out.Real[ei], out.Imag[ei]
				or, oim := out.Real[oi], out.Imag[oi]

				pr := or*wr - oim*wi
				pi := or*wi + oim*wr

				out.Real[ei] = er + pr
				out.Imag[ei] = eim + pi
				out.Real[oi] = er - pr
				out.Imag[oi] = eim - pi

				ops += butterflyCost
			}
			ops += levelCost(size)
		}
		if it.cfg.normalization == NormalizePerLevel {
			out.scale(size)
		}
	}

	if it.cfg.normalization == NormalizeOnce {
		out.scale(n)
	}
	return Result{Spectrum: out, Ops: ops}, nil
}

func bitReverse(i, width int) int {
	if width == 0 {
		return 0
	}
	return int(bits.Reverse64(uint64(i)) >> (64 - width))
}
