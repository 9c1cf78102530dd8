package signal

import "fmt"

// Source supplies real-valued sample sequences of a requested length.
type Source interface {
	Generate(n int) ([]float64, error)
}

// SourceFunc adapts an ordinary function to [Source].
type SourceFunc func(n int) ([]float64, error)

// Generate calls f(n).
func (f SourceFunc) Generate(n int) ([]float64, error) { return f(n) }

// Fixed is a [Source] that always serves a copy of the same samples.
//
// It is the injection point for deterministic signals: Generate returns the
// first n samples and fails when more are requested than are available.
type Fixed []float64

// Generate returns a fresh copy of the first n samples.
func (f Fixed) Generate(n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if n > len(f) {
		return nil, fmt.Errorf("fixed source holds %d samples, requested %d", len(f), n)
	}
	out := make([]float64, n)
	copy(out, f[:n])
	return out, nil
}

func validateLength(n int) error {
	if n < 0 {
		return fmt.Errorf("signal length must be >= 0: %d", n)
	}
	return nil
}
