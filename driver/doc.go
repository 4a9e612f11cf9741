// SPDX-License-Identifier: MIT

// Package driver runs a path-generation job under each requested concurrency
// strategy, times every run, checks it against the sequential baseline and
// reports the outcome.
//
// Run is the programmatic entry point; cmd/qmcpaths is a thin flag-parsing
// shell around it. Metrics go to a caller-supplied prometheus.Registerer,
// and an optional io.Writer receives a full dump of every generated value.
package driver
