package transform

// Result is the outcome of one transform call.
type Result struct {
	Spectrum Spectrum
	Ops      OpCount
}

// Engine computes the spectrum of a real signal.
//
// Implementations must not retain or modify signal.
type Engine interface {
	Name() string
	Transform(signal []float64) (Result, error)
}

var (
	_ Engine = Direct{}
	_ Engine = (*Recursive)(nil)
	_ Engine = (*Iterative)(nil)
)
