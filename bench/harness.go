package bench

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/dsp/transform"
)

// Verifier inspects one size after both engines ran. It is called outside
// the timed regions; a non-nil error aborts the run.
type Verifier func(signal []float64, direct, recursive transform.Result) error

// Harness measures a direct and a radix-2 engine over a sequence of sizes.
type Harness struct {
	source    signal.Source
	direct    transform.Engine
	recursive transform.Engine
	out       io.Writer
	now       func() time.Time
	verify    Verifier
}

// Option configures a Harness.
type Option func(*Harness)

// WithSource replaces the time-seeded uniform generator.
func WithSource(src signal.Source) Option {
	return func(h *Harness) {
		if src != nil {
			h.source = src
		}
	}
}

// WithDirect replaces the O(N²) engine.
func WithDirect(e transform.Engine) Option {
	return func(h *Harness) {
		if e != nil {
			h.direct = e
		}
	}
}

// WithRecursive replaces the radix-2 engine.
func WithRecursive(e transform.Engine) Option {
	return func(h *Harness) {
		if e != nil {
			h.recursive = e
		}
	}
}

// WithOutput sets where the per-size summary is written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(h *Harness) {
		if w != nil {
			h.out = w
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Harness) {
		if now != nil {
			h.now = now
		}
	}
}

// WithVerifier installs a per-size check.
func WithVerifier(v Verifier) Option {
	return func(h *Harness) {
		h.verify = v
	}
}

// New creates a harness. Without options it benchmarks [transform.Direct]
// against [transform.Recursive] on uniform noise and prints to stdout.
func New(opts ...Option) *Harness {
	h := &Harness{
		direct:    transform.Direct{},
		recursive: transform.NewRecursive(),
		out:       os.Stdout,
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	if h.source == nil {
		h.source = signal.NewGenerator()
	}
	return h
}

// DefaultSizes returns 2, 4, ..., 512.
func DefaultSizes() []int {
	return core.PowersOfTwo(1, 9)
}

// Run measures every size in order.
//
// The first failure stops the run; the returned Series then holds the sizes
// measured before it.
func (h *Harness) Run(sizes []int) (Series, error) {
	s := newSeries(len(sizes))
	for _, n := range sizes {
		rec, err := h.measure(n)
		if err != nil {
			return s, fmt.Errorf("bench: N=%d: %w", n, err)
		}
		s.append(rec)
		if err := WriteSummary(h.out, rec); err != nil {
			return s, fmt.Errorf("bench: N=%d: write summary: %w", n, err)
		}
	}
	return s, nil
}

func (h *Harness) measure(n int) (Record, error) {
	x, err := h.source.Generate(n)
	if err != nil {
		return Record{}, fmt.Errorf("signal: %w", err)
	}
	if len(x) != n {
		return Record{}, fmt.Errorf("signal: source returned %d samples, want %d", len(x), n)
	}

	d, dt, err := h.timed(h.direct, x)
	if err != nil {
		return Record{}, err
	}
	r, rt, err := h.timed(h.recursive, x)
	if err != nil {
		return Record{}, err
	}

	if h.verify != nil {
		if err := h.verify(x, d, r); err != nil {
			return Record{}, fmt.Errorf("verify: %w", err)
		}
	}

	return Record{
		N:             n,
		DirectTime:    dt,
		RecursiveTime: rt,
		DirectOps:     d.Ops,
		RecursiveOps:  r.Ops,
	}, nil
}

func (h *Harness) timed(e transform.Engine, x []float64) (transform.Result, time.Duration, error) {
	start := h.now()
	res, err := e.Transform(x)
	elapsed := h.now().Sub(start)
	if err != nil {
		return transform.Result{}, 0, fmt.Errorf("%s: %w", e.Name(), err)
	}
	return res, elapsed, nil
}

// WriteSummary writes the summary block for one size.
func WriteSummary(w io.Writer, r Record) error {
	_, err := fmt.Fprintf(w, "\nN = %d:\nDFT: Time = %.6f sec, Operations = %d\nFFT: Time = %.6f sec, Operations = %d\n",
		r.N,
		r.DirectTime.Seconds(), r.DirectOps,
		r.RecursiveTime.Seconds(), r.RecursiveOps,
	)
	return err
}
