// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage that path-generation
// runs write into.
//
// The package provides:
//
//   - Dense: an r×c float64 buffer with bounds-checked At/Set that return
//     errors instead of panicking, plus an optional finite-only numeric policy.
//   - MatrixView: a no-copy rectangular window over a Dense. Writes go straight
//     to the base buffer, which lets each worker own a disjoint block of
//     columns without locks.
//   - Comparison helpers (Equal, AllClose, MaxAbsDiff) used to check a
//     parallel run against the sequential baseline.
//
// Layout convention for path results: rows are time steps, columns are paths,
// so cell (i, j) holds the value of path j at step i.
//
// Concurrency: a Dense carries no lock. Concurrent writers are safe only when
// they touch disjoint cells, and readers must wait until all writers have
// finished.
package matrix
