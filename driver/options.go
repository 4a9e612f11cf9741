// SPDX-License-Identifier: MIT

package driver

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures Run.
type Option func(*Options)

// Options stores the effective Run configuration.
type Options struct {
	registerer prometheus.Registerer
	dump       io.Writer
}

// WithRegisterer records metrics on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("driver: WithRegisterer: nil registerer")
	}

	return func(o *Options) { o.registerer = reg }
}

// WithDump writes every generated value of every strategy to w.
func WithDump(w io.Writer) Option {
	return func(o *Options) { o.dump = w }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.registerer == nil {
		o.registerer = prometheus.NewRegistry()
	}

	return o
}
