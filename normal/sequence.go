// SPDX-License-Identifier: MIT

package normal

import (
	"fmt"
	"math"
)

// UniformSource is the narrow contract Sequence needs from a low-discrepancy
// generator: a fixed dimension and an atomic Draw of one point in (0,1)^N.
type UniformSource interface {
	Dimension() int
	Draw(dst []float64) error
}

// Sequence turns successive uniform points into standard-normal vectors.
// It holds the source's cursor and must not be shared between goroutines.
type Sequence struct {
	src UniformSource
	buf []float64 // uniform scratch, len == dimension
}

// NewSequence wraps src. The source is owned by the Sequence from now on.
func NewSequence(src UniformSource) (*Sequence, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return &Sequence{src: src, buf: make([]float64, src.Dimension())}, nil
}

// Dimension returns the length of every produced vector.
func (s *Sequence) Dimension() int { return len(s.buf) }

// Next draws one point from the source and writes its elementwise inverse-CDF
// image into dst. On error dst is left untouched. The source is not advanced
// when the call is rejected or the draw itself fails; on ErrNonFinite the
// offending point has been consumed and the next call moves on to the one after.
//
// Errors:
//   - ErrDimensionMismatch when len(dst) != Dimension().
//   - any error returned by the source (e.g. sobol.ErrSequenceExhausted), wrapped.
//   - ErrNonFinite when the source produced a coordinate outside (0,1).
func (s *Sequence) Next(dst []float64) error {
	if len(dst) != len(s.buf) {
		return fmt.Errorf("normal.Next: len(dst)=%d, dimension=%d: %w", len(dst), len(s.buf), ErrDimensionMismatch)
	}
	if err := s.src.Draw(s.buf); err != nil {
		return fmt.Errorf("normal.Next: %w", err)
	}
	for i, u := range s.buf {
		z := InverseCDF(u)
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return fmt.Errorf("normal.Next: coordinate %d u=%g: %w", i, u, ErrNonFinite)
		}
		s.buf[i] = z
	}
	copy(dst, s.buf)

	return nil
}
