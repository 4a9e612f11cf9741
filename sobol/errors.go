// SPDX-License-Identifier: MIT

package sobol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned by New when the requested dimension is
	// outside [1, MaxDimension].
	ErrInvalidDimension = errors.New("sobol: dimension out of supported range")

	// ErrSequenceExhausted is returned when a draw or skip would move the cursor
	// past the generator's length bound. The generator state is left unchanged.
	ErrSequenceExhausted = errors.New("sobol: sequence exhausted")

	// ErrRewind is returned by SkipTo when the target lies behind the cursor.
	ErrRewind = errors.New("sobol: cursor cannot move backwards")

	// ErrDimensionMismatch is returned when a destination buffer length differs
	// from the generator dimension.
	ErrDimensionMismatch = errors.New("sobol: buffer length does not match dimension")
)

// sobolErrorf attaches the operation name to a sentinel, keeping errors.Is intact.
func sobolErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("sobol.%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
