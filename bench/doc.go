// Package bench runs the direct and radix-2 transform engines side by side
// over a sequence of sizes and collects their run times and operation counts.
//
// The harness is single-threaded. For every size it draws one fresh signal,
// feeds the same samples to both engines and times each call on its own;
// signal generation, verification and printing fall outside the timed
// regions.
package bench
