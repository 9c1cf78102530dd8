// Package reference wraps third-party FFT libraries as oracle engines.
//
// The oracles return spectra in the normalization and sign convention of
// package transform, so their output can be compared bin for bin with
// [transform.Direct] and [transform.Recursive]. They report zero operations.
package reference

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fourier/dsp/transform"
)

// ErrMismatch is returned by [Verify] when a deviation exceeds the tolerance.
var ErrMismatch = errors.New("reference: spectrum mismatch")

// AlgoFFT computes the spectrum with an algo-fft complex128 plan.
// Lengths above one must be powers of two.
type AlgoFFT struct{}

// Name returns "algo-fft".
func (AlgoFFT) Name() string { return "algo-fft" }

// Transform implements [transform.Engine].
func (a AlgoFFT) Transform(signal []float64) (transform.Result, error) {
	n := len(signal)
	if n <= 1 {
		return trivial(signal), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return transform.Result{}, fmt.Errorf("%s: plan for %d points: %w", a.Name(), n, err)
	}

	in := make([]complex128, n)
	for i, x := range signal {
		in[i] = complex(x, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return transform.Result{}, fmt.Errorf("%s: forward: %w", a.Name(), err)
	}

	return transform.Result{Spectrum: normalized(out)}, nil
}

// Gonum computes the spectrum with gonum's real FFT and fills the upper half
// from Hermitian symmetry. Any length is accepted.
type Gonum struct{}

// Name returns "gonum".
func (Gonum) Name() string { return "gonum" }

// Transform implements [transform.Engine].
func (Gonum) Transform(signal []float64) (transform.Result, error) {
	n := len(signal)
	if n <= 1 {
		return trivial(signal), nil
	}

	half := fourier.NewFFT(n).Coefficients(nil, signal)
	out := make([]complex128, n)
	copy(out, half)
	for k := len(half); k < n; k++ {
		out[k] = cmplx.Conj(half[n-k])
	}

	return transform.Result{Spectrum: normalized(out)}, nil
}

func trivial(signal []float64) transform.Result {
	s := transform.NewSpectrum(len(signal))
	copy(s.Real, signal)
	return transform.Result{Spectrum: s}
}

func normalized(bins []complex128) transform.Spectrum {
	s := transform.SpectrumFromComplex(bins)
	inv := 1 / float64(len(bins))
	floats.Scale(inv, s.Real)
	floats.Scale(inv, s.Imag)
	return s
}

// Compare returns the largest absolute difference between two spectra over
// both parts.
func Compare(a, b transform.Spectrum) (float64, error) {
	if a.Len() != b.Len() || len(a.Imag) != len(b.Imag) {
		return 0, fmt.Errorf("reference: bin count mismatch: %d != %d", a.Len(), b.Len())
	}
	if a.Len() == 0 {
		return 0, nil
	}
	re := floats.Distance(a.Real, b.Real, math.Inf(1))
	im := floats.Distance(a.Imag, b.Imag, math.Inf(1))
	return math.Max(re, im), nil
}

// Agree reports whether every bin of a and b is within tol, absolute or
// relative.
func Agree(a, b transform.Spectrum, tol float64) bool {
	if a.Len() != b.Len() || len(a.Imag) != len(b.Imag) {
		return false
	}
	return floats.EqualApprox(a.Real, b.Real, tol) && floats.EqualApprox(a.Imag, b.Imag, tol)
}

// Candidate is a spectrum under test.
type Candidate struct {
	Name     string
	Spectrum transform.Spectrum
}

// Deviation is the distance of one candidate from one oracle.
type Deviation struct {
	Oracle    string
	Candidate string
	N         int
	MaxAbs    float64
}

// Check runs every oracle on signal and measures each candidate against it.
func Check(signal []float64, candidates []Candidate, oracles ...transform.Engine) ([]Deviation, error) {
	devs := make([]Deviation, 0, len(candidates)*len(oracles))
	for _, o := range oracles {
		ref, err := o.Transform(signal)
		if err != nil {
			return devs, err
		}
		for _, c := range candidates {
			d, err := Compare(c.Spectrum, ref.Spectrum)
			if err != nil {
				return devs, fmt.Errorf("%s vs %s: %w", c.Name, o.Name(), err)
			}
			devs = append(devs, Deviation{
				Oracle:    o.Name(),
				Candidate: c.Name,
				N:         len(signal),
				MaxAbs:    d,
			})
		}
	}
	return devs, nil
}

// Verify returns an error wrapping [ErrMismatch] for the first deviation
// above tol.
func Verify(devs []Deviation, tol float64) error {
	for _, d := range devs {
		if d.MaxAbs > tol || math.IsNaN(d.MaxAbs) {
			return fmt.Errorf("%w: %s deviates from %s by %g at N=%d (tolerance %g)",
				ErrMismatch, d.Candidate, d.Oracle, d.MaxAbs, d.N, tol)
		}
	}
	return nil
}

var (
	_ transform.Engine = AlgoFFT{}
	_ transform.Engine = Gonum{}
)
