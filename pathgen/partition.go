// SPDX-License-Identifier: MIT

package pathgen

import "fmt"

// Range is the half-open column interval [Start, End) owned by one worker.
type Range struct {
	Start int
	End   int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, samples) into at most workers disjoint contiguous
// ranges in ascending order. The first samples%workers ranges get one extra
// column. When workers > samples only samples single-column ranges are
// returned, so no range is ever empty.
//
// Errors (matching ErrConfiguration):
//   - ErrInvalidSamples for samples ≤ 0.
//   - ErrInvalidWorkers for workers ≤ 0.
//
// Complexity: O(min(samples, workers)).
func Partition(samples, workers int) ([]Range, error) {
	const op = "Partition"
	if samples <= 0 {
		return nil, configErrorf(op, ErrInvalidSamples, "samples=%d", samples)
	}
	if workers <= 0 {
		return nil, configErrorf(op, ErrInvalidWorkers, "workers=%d", workers)
	}
	if workers > samples {
		workers = samples
	}

	base, extra := samples/workers, samples%workers
	out := make([]Range, workers)
	start := 0
	for w := range out {
		size := base
		if w < extra {
			size++
		}
		out[w] = Range{Start: start, End: start + size}
		start += size
	}

	return out, nil
}

// String renders the range as [Start,End).
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }
