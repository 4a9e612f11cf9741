// SPDX-License-Identifier: MIT

// Package pathgen generates quasi-random Brownian paths and scatters them into
// a shared results matrix under several concurrency strategies.
//
// What & Why:
//
//	One path is produced by drawing an N-dimensional Sobol point, mapping it to
//	standard normals and running the Brownian bridge over the time grid. The
//	value of path j at step i lands in cell (i, j) of an N×samples matrix.
//	Because the k-th Sobol point depends only on (seed, N, k), the matrix is a
//	pure function of the Job no matter how the columns are split across
//	goroutines.
//
// Strategies:
//   - Sequential: one goroutine, direct writes. The correctness oracle.
//   - Guarded: one goroutine, every write under a mutex.
//   - Offloaded: one spawned goroutine joined by the caller, writes under a mutex.
//   - Partitioned: W goroutines on disjoint contiguous column ranges. Each
//     worker owns a generator skipped to its first column and writes into a
//     private MatrixView. No locks.
//
// Layout:
//
//	Row 0 is left at zero; rows 1..N-1 receive the generated values.
//
// Errors:
//
//	Invalid inputs are rejected before any generation with errors matching both
//	ErrConfiguration and the specific cause (bridge.ErrInvalidGrid,
//	sobol.ErrInvalidDimension, ...). Running out of Sobol points surfaces as
//	sobol.ErrSequenceExhausted.
package pathgen
