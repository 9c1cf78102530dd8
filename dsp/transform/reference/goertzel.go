package reference

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/transform"
)

// Goertzel evaluates a single DFT bin with the Goertzel recurrence.
//
// The analyzer is stateful: Bin describes every sample processed
// since the last Reset. After exactly n samples Bin equals the unnormalized
// X[k] of an n-point DFT.
type Goertzel struct {
	cos, sin float64
	coeff    float64
	s0, s1   float64
}

// NewGoertzel creates an analyzer for bin k of an n-point transform.
func NewGoertzel(k, n int) (*Goertzel, error) {
	if n <= 0 {
		return nil, fmt.Errorf("goertzel: length must be > 0: %d", n)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("goertzel: bin %d outside [0, %d)", k, n)
	}

	w := 2 * math.Pi * float64(k) / float64(n)
	return &Goertzel{
		cos:   math.Cos(w),
		sin:   math.Sin(w),
		coeff: 2 * math.Cos(w),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Bin returns the complex bin value in the e^{-iθ} convention.
func (g *Goertzel) Bin() complex128 {
	return complex(g.cos*g.s0-g.s1, g.sin*g.s0)
}

// GoertzelBank computes every bin with its own [Goertzel] analyzer. It costs
// O(N²) like the direct transform but shares none of its arithmetic, and it
// accepts any length.
type GoertzelBank struct{}

// Name returns "goertzel".
func (GoertzelBank) Name() string { return "goertzel" }

// Transform implements [transform.Engine].
func (b GoertzelBank) Transform(signal []float64) (transform.Result, error) {
	n := len(signal)
	if n <= 1 {
		return trivial(signal), nil
	}

	bins := make([]complex128, n)
	for k := range bins {
		g, err := NewGoertzel(k, n)
		if err != nil {
			return transform.Result{}, fmt.Errorf("%s: %w", b.Name(), err)
		}
		g.ProcessBlock(signal)
		bins[k] = g.Bin()
	}

	return transform.Result{Spectrum: normalized(bins)}, nil
}

var _ transform.Engine = GoertzelBank{}
