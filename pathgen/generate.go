// SPDX-License-Identifier: MIT

package pathgen

import (
	"fmt"

	"github.com/katalvlaran/qmcpaths/bridge"
	"github.com/katalvlaran/qmcpaths/normal"
)

// Writer is the narrow storage contract Generate writes through.
// *matrix.Dense and *matrix.MatrixView satisfy it.
type Writer interface {
	Rows() int
	Cols() int
	Set(i, j int, v float64) error
}

// transformFor returns the bridge method that produces mode.
func transformFor(b *bridge.Bridge, mode Output) (func(in, out []float64) error, error) {
	switch mode {
	case OutputPath:
		return b.Transform, nil
	case OutputIncrements:
		return b.Increments, nil
	case OutputNormalized:
		return b.Normalized, nil
	default:
		return nil, fmt.Errorf("pathgen.Generate: %v: %w", mode, ErrUnknownOutput)
	}
}

// Generate produces count consecutive paths from seq and writes path p into
// column col0+p of out, rows 1..N-1. Row 0 is not touched.
//
// Implementation:
//   - Stage 1: check that seq, b and out agree on N and that the column block fits.
//   - Stage 2: per path, draw N normals, run the bridge, scatter the column.
//
// Errors:
//   - bridge.ErrDimensionMismatch when the shapes disagree.
//   - sobol.ErrSequenceExhausted (wrapped) when the source runs out; paths
//     already written stay written.
//   - any error returned by out.Set.
//
// Complexity: O(count·N) time, O(N) scratch.
func Generate(seq *normal.Sequence, b *bridge.Bridge, out Writer, col0, count int, mode Output) error {
	n := b.Size()
	if seq.Dimension() != n || out.Rows() != n {
		return fmt.Errorf("pathgen.Generate: sequence=%d bridge=%d rows=%d: %w",
			seq.Dimension(), n, out.Rows(), bridge.ErrDimensionMismatch)
	}
	if col0 < 0 || count < 0 || col0+count > out.Cols() {
		return fmt.Errorf("pathgen.Generate: columns [%d,%d) of %d: %w",
			col0, col0+count, out.Cols(), bridge.ErrDimensionMismatch)
	}
	transform, err := transformFor(b, mode)
	if err != nil {
		return err
	}

	z := make([]float64, n)
	w := make([]float64, n)
	for p := 0; p < count; p++ {
		if err = seq.Next(z); err != nil {
			return fmt.Errorf("pathgen.Generate: path %d: %w", col0+p, err)
		}
		if err = transform(z, w); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = out.Set(i, col0+p, w[i]); err != nil {
				return err
			}
		}
	}

	return nil
}
