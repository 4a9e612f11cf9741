// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid indicates an empty, non-positive, non-finite or
	// non-increasing time grid. It is a configuration error: reject the input
	// once, before any path is built.
	ErrInvalidGrid = errors.New("bridge: invalid time grid")

	// ErrDimensionMismatch indicates an input or output vector whose length
	// differs from the grid length. It is a programming error.
	ErrDimensionMismatch = errors.New("bridge: vector length does not match grid")
)

// gridErrorf wraps ErrInvalidGrid with a description of the offending point.
func gridErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidGrid, fmt.Sprintf(format, args...))
}

// lengthErrorf wraps ErrDimensionMismatch with the method and observed lengths.
func lengthErrorf(method string, in, out, n int) error {
	return fmt.Errorf("Bridge.%s: len(in)=%d len(out)=%d grid=%d: %w", method, in, out, n, ErrDimensionMismatch)
}
