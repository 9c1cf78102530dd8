// Package transform computes the Discrete Fourier Transform of real signals.
//
// Two engines are provided and both report an abstract operation count next
// to the spectrum:
//
//   - [Direct] evaluates every bin by summation, O(N²).
//   - [Recursive] applies radix-2 decimation in time (Cooley–Tukey), O(N log N).
//
// [Iterative] is a stage-based rendition of [Recursive] with constant stack
// depth that produces the same spectrum and the same operation count.
//
// Every spectrum is normalized by the signal length: bin k holds
// X[k]/N with X[k] = Σ x[i]·exp(-2πi·k·i/N).
//
// The operation counts are cost-model units private to each engine. Only the
// growth of one engine's count across sizes is meaningful; comparing absolute
// counts between engines is not.
package transform
