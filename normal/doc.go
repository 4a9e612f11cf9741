// SPDX-License-Identifier: MIT

// Package normal maps uniform deviates onto standard-normal deviates.
//
// InverseCDF is a pure, monotone function and is safe for concurrent use.
// Sequence wraps a stateful uniform source (for example a *sobol.Generator) and
// turns each of its points into a vector of independent N(0,1) variates; like the
// source it wraps, a Sequence belongs to exactly one goroutine.
//
// Accuracy:
//
//	Acklam's rational approximation (relative error below 1.15e-9) followed by a
//	single Halley step against math.Erfc, which brings the result to full double
//	precision over the whole open interval (0,1).
package normal
