package transform

import "fmt"

// Normalization selects where the radix-2 engines divide by the length.
type Normalization int

const (
	// NormalizeOnce divides the finished spectrum by N. The output matches
	// [Direct] bin for bin.
	NormalizeOnce Normalization = iota

	// NormalizePerLevel divides every combined block by its own length at
	// every recursion level. Bin k of the result is X[k] scaled by the
	// product of all block lengths, N·N/2·…·2, instead of N. This mode
	// reproduces the classroom reference output and does not agree with
	// [Direct] for N > 2.
	NormalizePerLevel
)

// String returns the flag spelling of the mode.
func (m Normalization) String() string {
	switch m {
	case NormalizeOnce:
		return "once"
	case NormalizePerLevel:
		return "per-level"
	default:
		return fmt.Sprintf("Normalization(%d)", int(m))
	}
}

// ParseNormalization parses "once" or "per-level".
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "once", "":
		return NormalizeOnce, nil
	case "per-level", "perlevel":
		return NormalizePerLevel, nil
	default:
		return 0, fmt.Errorf("unknown normalization %q (want once or per-level)", s)
	}
}

type config struct {
	normalization Normalization
	unchecked     bool
	maxDepth      int
}

// Option configures the radix-2 engines.
type Option func(*config)

// WithNormalization selects the normalization mode.
func WithNormalization(mode Normalization) Option {
	return func(cfg *config) {
		cfg.normalization = mode
	}
}

// WithUncheckedLength disables the power-of-two check of [Recursive].
//
// Lengths that are not powers of two then run through the literal even/odd
// recursion. That never panics but the halves have unequal lengths at some
// level, so the result is the right length with misaligned bins. Intended
// only for demonstrating the precondition. [Iterative] ignores this option.
func WithUncheckedLength() Option {
	return func(cfg *config) {
		cfg.unchecked = true
	}
}

// WithMaxDepth limits the recursion depth of [Recursive]. Zero or negative
// means unlimited. [Iterative] ignores this option.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		cfg.maxDepth = depth
	}
}

func applyOptions(opts []Option) config {
	cfg := config{normalization: NormalizeOnce}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
