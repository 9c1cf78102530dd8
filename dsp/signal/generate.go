package signal

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Generator creates signals from a shared configuration and one random stream.
//
// Unless WithSeed is given the stream is seeded from the wall clock, so two
// generators produce different noise. A Generator is not safe for concurrent use.
type Generator struct {
	cfg    core.ProcessorConfig
	seed   int64
	seeded bool
	rng    *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets a deterministic random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// NewGenerator creates a time-seeded generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg: core.ApplyProcessorOptions(coreOpts...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if !g.seeded {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the seed the random stream was started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate implements [Source] with [Generator.Uniform].
func (g *Generator) Generate(n int) ([]float64, error) {
	return g.Uniform(n)
}

// Uniform draws n samples from the uniform distribution on [0, Amplitude).
//
// Successive calls continue the same stream.
func (g *Generator) Uniform(n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.rng.Float64() * g.cfg.Amplitude
	}
	return out, nil
}

// Sine generates n samples of a sine wave at freqHz.
func (g *Generator) Sine(freqHz float64, n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, %v]: %v", g.cfg.SampleRate/2, freqHz)
	}
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = g.cfg.Amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Constant returns n samples equal to Amplitude.
func (g *Generator) Constant(n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.cfg.Amplitude
	}
	return out, nil
}

// Impulse returns n samples that are zero except for Amplitude at pos.
func (g *Generator) Impulse(n, pos int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= n {
		return nil, fmt.Errorf("impulse position must be in [0, %d): %d", n, pos)
	}
	out := make([]float64, n)
	out[pos] = g.cfg.Amplitude
	return out, nil
}
