// Package qmcpaths generates batches of quasi-random Brownian-motion paths
// for Monte-Carlo simulation and fills a shared results matrix under several
// concurrency strategies without corrupting it.
//
// What is in the box?
//
//	A deterministic pipeline, one path at a time:
//		• Sobol sequence: successive points of (0,1)^N, seeded digital shift,
//		  O(1)-per-draw Gray-code stepping and O(32·N) skip-ahead
//		• Inverse normal CDF: uniform coordinates → standard normals
//		• Brownian bridge: N normals → W(t_1..t_N), terminal value first
//		• Scatter: path j lands in column j of an N×samples matrix
//
// Why it is safe to parallelize:
//
//   - The k-th Sobol point depends only on (seed, N, k), so every worker can
//     jump straight to its first path.
//   - Columns are split into disjoint contiguous ranges; every worker writes
//     through its own view and no cell is shared.
//   - The partitioned result is bit-for-bit equal to the sequential one for
//     any worker count.
//
// Packages:
//
//	sobol/   Sobol generator, direction numbers, skip-ahead
//	normal/  InverseCDF and the normal Sequence wrapper
//	bridge/  TimeGrid and the Brownian bridge
//	matrix/  dense row-major results storage and column views
//	pathgen/ Job, Generate, strategies (sequential, guarded, offloaded, partitioned)
//	driver/  runs strategies, times them, checks them against the baseline
//
// Command:
//
//	go run ./cmd/qmcpaths --grid=long -n 4096 -w 8 --metrics
package qmcpaths
