package transform

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Spectrum holds the real and imaginary parts of N frequency bins.
//
// Real and Imag always have the same length. Bin k corresponds to k cycles
// per N samples.
type Spectrum struct {
	Real []float64
	Imag []float64
}

// NewSpectrum allocates a zeroed spectrum with n bins.
func NewSpectrum(n int) Spectrum {
	if n <= 0 {
		return Spectrum{Real: []float64{}, Imag: []float64{}}
	}
	return Spectrum{
		Real: make([]float64, n),
		Imag: make([]float64, n),
	}
}

// SpectrumFromComplex splits complex bins into a Spectrum.
func SpectrumFromComplex(bins []complex128) Spectrum {
	s := NewSpectrum(len(bins))
	for k, c := range bins {
		s.Real[k] = real(c)
		s.Imag[k] = imag(c)
	}
	return s
}

// Len returns the bin count.
func (s Spectrum) Len() int { return len(s.Real) }

// Bin returns bin k as a complex number.
func (s Spectrum) Bin(k int) complex128 {
	return complex(s.Real[k], s.Imag[k])
}

// Complex returns all bins as complex numbers.
func (s Spectrum) Complex() []complex128 {
	out := make([]complex128, s.Len())
	for k := range out {
		out[k] = s.Bin(k)
	}
	return out
}

// Clone returns a deep copy.
func (s Spectrum) Clone() Spectrum {
	out := NewSpectrum(s.Len())
	copy(out.Real, s.Real)
	copy(out.Imag, s.Imag)
	return out
}

// Magnitude returns |X[k]| for each bin.
func (s Spectrum) Magnitude() []float64 {
	if s.Len() == 0 {
		return nil
	}
	out := make([]float64, s.Len())
	vecmath.Magnitude(out, s.Real, s.Imag)
	return out
}

// Power returns |X[k]|² for each bin.
func (s Spectrum) Power() []float64 {
	if s.Len() == 0 {
		return nil
	}
	out := make([]float64, s.Len())
	vecmath.Power(out, s.Real, s.Imag)
	return out
}

// Phase returns arg(X[k]) for each bin in radians.
func (s Spectrum) Phase() []float64 {
	if s.Len() == 0 {
		return nil
	}
	out := make([]float64, s.Len())
	for k := range out {
		out[k] = math.Atan2(s.Imag[k], s.Real[k])
	}
	return out
}

// Frequencies returns the centre frequency of every bin for sampleRate.
func (s Spectrum) Frequencies(sampleRate float64) []float64 {
	n := s.Len()
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	step := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * step
	}
	return out
}

// scale divides both parts by n in place.
func (s Spectrum) scale(n int) {
	if n <= 1 {
		return
	}
	inv := 1 / float64(n)
	vecmath.ScaleBlock(s.Real, s.Real, inv)
	vecmath.ScaleBlock(s.Imag, s.Imag, inv)
}
