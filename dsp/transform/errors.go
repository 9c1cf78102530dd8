package transform

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the radix-2 engines.
var (
	// ErrInvalidLength is returned when the signal length is not a power of two.
	ErrInvalidLength = errors.New("transform: length must be a power of two")

	// ErrDepthExceeded is returned when a recursive transform would recurse
	// deeper than the configured limit.
	ErrDepthExceeded = errors.New("transform: recursion depth exceeded")
)

func validateRadix2(engine string, n int) error {
	if n&(n-1) != 0 {
		return fmt.Errorf("%s: %w: %d", engine, ErrInvalidLength, n)
	}
	return nil
}
