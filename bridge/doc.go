// SPDX-License-Identifier: MIT

// Package bridge builds Brownian paths on a fixed time grid with the Brownian
// bridge construction.
//
// What & Why:
//
//	Instead of sampling W(t_1), W(t_2), ... in time order, the bridge places the
//	terminal value W(T) first, then fills the midpoint of every gap from its two
//	already-placed neighbours plus an independent normal draw. The first few
//	draws therefore carry most of the path variance, which is what makes the
//	construction pair well with low-discrepancy sequences whose leading
//	coordinates are the best distributed.
//
// Algorithm Outline:
//  1. Walk the grid once and record, for draw i, the time index it fills
//     (bridgeIndex), the already-placed neighbours (leftIndex-1, rightIndex) and
//     the conditional weights and standard deviation.
//  2. Transform: out[N-1] = sqrt(T)·z_0, then for i = 1..N-1
//     out[l] = wL·out[j-1] + wR·out[k] + σ·z_i (left term omitted when j == 0).
//
// Conventions:
//   - Transform writes path values: out[i] = W(t_i), so Var(out[N-1]) = t_{N-1}.
//   - Increments writes dW_i = W(t_i) - W(t_{i-1}) with W(t_{-1}) = 0.
//   - Normalized writes dW_i / sqrt(t_i - t_{i-1}): independent N(0,1) draws.
//
// Concurrency:
//
//	A *Bridge is immutable after New and safe for concurrent use; each caller
//	supplies its own input and output buffers.
//
// Complexity:
//
//	New: O(N) time and memory. Transform: O(N) time, no allocations.
package bridge
