package bench

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fourier/dsp/transform"
)

var errTooFewPoints = errors.New("growth fit needs at least two sizes > 1 with non-zero counts")

// Model maps a size to its predicted cost up to a constant factor.
type Model func(n int) float64

// Quadratic is the N² model of the direct engine.
func Quadratic(n int) float64 { return float64(n) * float64(n) }

// NLogN is the N·log2(N) model of the radix-2 engines.
func NLogN(n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(n) * math.Log2(float64(n))
}

// Ratios returns ops[i]/ops[i-1] for i ≥ 1. A zero predecessor yields NaN.
func Ratios(ops []transform.OpCount) []float64 {
	if len(ops) < 2 {
		return nil
	}
	out := make([]float64, len(ops)-1)
	for i := 1; i < len(ops); i++ {
		if ops[i-1] == 0 {
			out[i-1] = math.NaN()
			continue
		}
		out[i-1] = float64(ops[i]) / float64(ops[i-1])
	}
	return out
}

// Normalized divides every count by model(size). Sizes where the model is
// zero yield NaN.
func Normalized(sizes []int, ops []transform.OpCount, model Model) ([]float64, error) {
	if len(sizes) != len(ops) {
		return nil, fmt.Errorf("growth: sizes/ops length mismatch: %d != %d", len(sizes), len(ops))
	}
	out := make([]float64, len(ops))
	for i, n := range sizes {
		m := model(n)
		if m == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(ops[i]) / m
	}
	return out, nil
}

// Exponent fits ops ≈ c·N^p by least squares in log-log space and returns p.
// Sizes ≤ 1 and zero counts are skipped.
func Exponent(sizes []int, ops []transform.OpCount) (float64, error) {
	if len(sizes) != len(ops) {
		return 0, fmt.Errorf("growth: sizes/ops length mismatch: %d != %d", len(sizes), len(ops))
	}
	xs := make([]float64, 0, len(sizes))
	ys := make([]float64, 0, len(sizes))
	for i, n := range sizes {
		if n <= 1 || ops[i] == 0 {
			continue
		}
		xs = append(xs, math.Log(float64(n)))
		ys = append(ys, math.Log(float64(ops[i])))
	}
	if len(xs) < 2 {
		return 0, errTooFewPoints
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) {
		return 0, errTooFewPoints
	}
	return slope, nil
}

// Growth holds fitted log-log exponents of both operation series.
type Growth struct {
	DirectExponent    float64
	RecursiveExponent float64
}

// Growth fits both operation series.
func (s Series) Growth() (Growth, error) {
	d, err := Exponent(s.Sizes, s.DirectOps)
	if err != nil {
		return Growth{}, fmt.Errorf("direct: %w", err)
	}
	r, err := Exponent(s.Sizes, s.RecursiveOps)
	if err != nil {
		return Growth{}, fmt.Errorf("recursive: %w", err)
	}
	return Growth{DirectExponent: d, RecursiveExponent: r}, nil
}

// Scaling holds per-size growth figures aligned with the series rows.
type Scaling struct {
	// DirectSteps and RecursiveSteps hold ops[i]/ops[i-1]; index 0 is NaN.
	DirectSteps    []float64
	RecursiveSteps []float64
	// DirectPerModel is ops/N², RecursivePerModel is ops/(N·log2 N).
	DirectPerModel    []float64
	RecursivePerModel []float64
}

// Scaling computes step ratios and model-normalized counts of both engines.
// Entries that cannot be formed are NaN.
func (s Series) Scaling() (Scaling, error) {
	dn, err := Normalized(s.Sizes, s.DirectOps, Quadratic)
	if err != nil {
		return Scaling{}, fmt.Errorf("direct: %w", err)
	}
	rn, err := Normalized(s.Sizes, s.RecursiveOps, NLogN)
	if err != nil {
		return Scaling{}, fmt.Errorf("recursive: %w", err)
	}
	return Scaling{
		DirectSteps:       steps(s.DirectOps),
		RecursiveSteps:    steps(s.RecursiveOps),
		DirectPerModel:    dn,
		RecursivePerModel: rn,
	}, nil
}

// steps aligns Ratios with the rows by leading with NaN.
func steps(ops []transform.OpCount) []float64 {
	if len(ops) == 0 {
		return nil
	}
	return append([]float64{math.NaN()}, Ratios(ops)...)
}
