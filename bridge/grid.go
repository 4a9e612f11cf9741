// SPDX-License-Identifier: MIT

package bridge

import "math"

// TimeGrid is an immutable, strictly increasing sequence of positive times.
// The zero value is an empty grid and is rejected by New.
type TimeGrid struct {
	times []float64
}

// NewTimeGrid validates and copies times.
//
// Implementation:
//   - Stage 1: reject an empty slice.
//   - Stage 2: require every point finite, times[0] > 0 and times[i] > times[i-1].
//   - Stage 3: keep a private copy so later caller mutations cannot leak in.
//
// Errors:
//   - ErrInvalidGrid, wrapped with the offending index.
func NewTimeGrid(times []float64) (TimeGrid, error) {
	if len(times) == 0 {
		return TimeGrid{}, gridErrorf("empty grid")
	}
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return TimeGrid{}, gridErrorf("times[%d]=%g is not finite", i, t)
		}
		if i == 0 {
			if t <= 0 {
				return TimeGrid{}, gridErrorf("times[0]=%g must be > 0", t)
			}
			continue
		}
		if t <= times[i-1] {
			return TimeGrid{}, gridErrorf("times[%d]=%g <= times[%d]=%g", i, t, i-1, times[i-1])
		}
	}

	return TimeGrid{times: append([]float64(nil), times...)}, nil
}

// Len returns the number of time points.
func (g TimeGrid) Len() int { return len(g.times) }

// At returns the i-th time point. It panics on an out-of-range index, like a
// slice access.
func (g TimeGrid) At(i int) float64 { return g.times[i] }

// Terminal returns the last time point, or 0 for an empty grid.
func (g TimeGrid) Terminal() float64 {
	if len(g.times) == 0 {
		return 0
	}

	return g.times[len(g.times)-1]
}

// Times returns a copy of the time points.
func (g TimeGrid) Times() []float64 { return append([]float64(nil), g.times...) }
