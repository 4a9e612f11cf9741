// SPDX-License-Identifier: MIT

package bridge

import "math"

// Method tags used in error wrappers.
const (
	ctxTransform  = "Transform"
	ctxIncrements = "Increments"
	ctxNormalized = "Normalized"
)

// Bridge holds the construction order and interpolation coefficients derived
// from one TimeGrid.
type Bridge struct {
	grid        TimeGrid
	sqrtdt      []float64 // sqrt(t_i - t_{i-1}), with t_{-1} = 0
	bridgeIndex []int     // draw i fills time index bridgeIndex[i]
	leftIndex   []int     // first free index of the gap; left neighbour is leftIndex-1
	rightIndex  []int     // placed right neighbour of the gap
	leftWeight  []float64
	rightWeight []float64
	stdDev      []float64
}

// New precomputes the bridge for grid.
//
// Implementation:
//   - Stage 1: reject an empty grid (zero-value TimeGrid).
//   - Stage 2: place the terminal point as draw 0.
//   - Stage 3: sweep the gaps left to right, repeatedly splitting each one at
//     its midpoint index, until every time index is assigned a draw.
//
// Errors:
//   - ErrInvalidGrid for an empty grid.
//
// Complexity: O(N) time and memory.
func New(grid TimeGrid) (*Bridge, error) {
	n := grid.Len()
	if n == 0 {
		return nil, gridErrorf("empty grid")
	}
	t := grid.times

	b := &Bridge{
		grid:        grid,
		sqrtdt:      make([]float64, n),
		bridgeIndex: make([]int, n),
		leftIndex:   make([]int, n),
		rightIndex:  make([]int, n),
		leftWeight:  make([]float64, n),
		rightWeight: make([]float64, n),
		stdDev:      make([]float64, n),
	}

	b.sqrtdt[0] = math.Sqrt(t[0])
	for i := 1; i < n; i++ {
		b.sqrtdt[i] = math.Sqrt(t[i] - t[i-1])
	}

	// placed[k] != 0 marks time index k as already assigned to some draw.
	placed := make([]int, n)
	placed[n-1] = 1
	b.bridgeIndex[0] = n - 1
	b.stdDev[0] = math.Sqrt(t[n-1])

	j := 0
	for i := 1; i < n; i++ {
		// Find the next unassigned gap [j, k) bounded by an assigned k.
		for placed[j] != 0 {
			j++
		}
		k := j
		for placed[k] == 0 {
			k++
		}
		l := j + ((k - 1 - j) >> 1) // midpoint of the gap
		placed[l] = i

		b.bridgeIndex[i] = l
		b.leftIndex[i] = j
		b.rightIndex[i] = k
		if j != 0 {
			span := t[k] - t[j-1]
			b.leftWeight[i] = (t[k] - t[l]) / span
			b.rightWeight[i] = (t[l] - t[j-1]) / span
			b.stdDev[i] = math.Sqrt((t[l] - t[j-1]) * (t[k] - t[l]) / span)
		} else {
			// Left neighbour is W(0) = 0.
			b.leftWeight[i] = (t[k] - t[l]) / t[k]
			b.rightWeight[i] = t[l] / t[k]
			b.stdDev[i] = math.Sqrt(t[l] * (t[k] - t[l]) / t[k])
		}

		j = k + 1
		if j >= n {
			j = 0
		}
	}

	return b, nil
}

// FromTimes validates times and builds the bridge in one call.
func FromTimes(times []float64) (*Bridge, error) {
	grid, err := NewTimeGrid(times)
	if err != nil {
		return nil, err
	}

	return New(grid)
}

// Size returns the number of time points (and normals consumed per path).
func (b *Bridge) Size() int { return len(b.bridgeIndex) }

// Grid returns the time grid the bridge was built for.
func (b *Bridge) Grid() TimeGrid { return b.grid }

// Order returns a copy of the draw-index → time-index map.
func (b *Bridge) Order() []int { return append([]int(nil), b.bridgeIndex...) }

// Transform maps N independent standard normals onto path values
// out[i] = W(t_i). in and out must not alias.
//
// Errors:
//   - ErrDimensionMismatch when len(in) or len(out) differs from Size().
//
// Complexity: O(N), no allocations.
func (b *Bridge) Transform(in, out []float64) error {
	n := len(b.bridgeIndex)
	if len(in) != n || len(out) != n {
		return lengthErrorf(ctxTransform, len(in), len(out), n)
	}
	b.build(in, out)

	return nil
}

// Increments maps N independent standard normals onto path increments
// out[i] = W(t_i) - W(t_{i-1}), with out[0] = W(t_0). in and out must not alias.
func (b *Bridge) Increments(in, out []float64) error {
	n := len(b.bridgeIndex)
	if len(in) != n || len(out) != n {
		return lengthErrorf(ctxIncrements, len(in), len(out), n)
	}
	b.build(in, out)
	for i := n - 1; i > 0; i-- {
		out[i] -= out[i-1]
	}

	return nil
}

// Normalized maps N independent standard normals onto increments divided by
// sqrt(t_i - t_{i-1}): again N independent standard normals, reordered so the
// leading inputs drive the coarse shape of the path.
func (b *Bridge) Normalized(in, out []float64) error {
	n := len(b.bridgeIndex)
	if len(in) != n || len(out) != n {
		return lengthErrorf(ctxNormalized, len(in), len(out), n)
	}
	b.build(in, out)
	for i := n - 1; i > 0; i-- {
		out[i] -= out[i-1]
	}
	for i := range out {
		out[i] /= b.sqrtdt[i]
	}

	return nil
}

// build runs the bridge recursion; lengths are checked by the callers.
func (b *Bridge) build(in, out []float64) {
	out[len(out)-1] = b.stdDev[0] * in[0]
	for i := 1; i < len(b.bridgeIndex); i++ {
		j, k, l := b.leftIndex[i], b.rightIndex[i], b.bridgeIndex[i]
		if j != 0 {
			out[l] = b.leftWeight[i]*out[j-1] + b.rightWeight[i]*out[k] + b.stdDev[i]*in[i]
		} else {
			out[l] = b.rightWeight[i]*out[k] + b.stdDev[i]*in[i]
		}
	}
}
