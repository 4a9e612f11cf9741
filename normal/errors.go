// SPDX-License-Identifier: MIT

package normal

import "errors"

var (
	// ErrDimensionMismatch indicates a destination length that differs from the
	// source dimension.
	ErrDimensionMismatch = errors.New("normal: buffer length does not match dimension")

	// ErrNonFinite indicates the source produced a coordinate outside (0,1), which
	// maps to ±Inf or NaN.
	ErrNonFinite = errors.New("normal: non-finite deviate")

	// ErrNilSource indicates NewSequence was given a nil source.
	ErrNilSource = errors.New("normal: nil uniform source")
)
