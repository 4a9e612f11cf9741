// SPDX-License-Identifier: MIT

// Package sobol generates Sobol low-discrepancy sequences for quasi-Monte-Carlo
// path generation.
//
// What & Why:
//
//	A Sobol sequence fills the unit hypercube far more evenly than a pseudo-random
//	stream, which speeds up convergence of Monte-Carlo estimators. Every point is
//	a pure function of (seed, dimension, index): two generators built with the
//	same arguments produce byte-identical streams, and a generator can jump to any
//	index without drawing the points in between.
//
// Key features:
//   - Gray-code ordering: one XOR per coordinate per draw.
//   - Skip-ahead in O(32·N) via the closed form x_k = ⊕ v_b over the bits of gray(k).
//   - Seeded digital shift (per-dimension XOR scramble) that keeps the
//     low-discrepancy structure while decorrelating seeds.
//   - A hard length bound: drawing past it returns ErrSequenceExhausted instead of
//     silently wrapping.
//
// Concurrency:
//
//	A *Generator is NOT safe for concurrent use. Give every goroutine its own
//	instance (New or Clone) and move it to a disjoint index range with Skip.
//
// Usage:
//
//	g, err := sobol.New(4, 19910405)
//	if err != nil { ... }
//	pt := make([]float64, 4)
//	if err := g.Draw(pt); err != nil { ... } // every pt[i] is in (0,1)
//
// Complexity:
//
//	New: O(32·N). Draw: O(N). Skip: O(32·N) regardless of distance.
package sobol
