// SPDX-License-Identifier: MIT

package pathgen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qmcpaths/sobol"
)

// Output selects what a path writes into its column.
type Output int

const (
	// OutputPath writes path values W(t_i).
	OutputPath Output = iota
	// OutputIncrements writes increments W(t_i) - W(t_{i-1}).
	OutputIncrements
	// OutputNormalized writes increments divided by sqrt(t_i - t_{i-1}).
	OutputNormalized
)

var outputNames = [...]string{
	OutputPath:       "path",
	OutputIncrements: "increments",
	OutputNormalized: "normalized",
}

// String returns the flag spelling of o.
func (o Output) String() string {
	if o < 0 || int(o) >= len(outputNames) {
		return fmt.Sprintf("Output(%d)", int(o))
	}

	return outputNames[o]
}

// ParseOutput maps a flag spelling back to an Output. Matching ignores case.
func ParseOutput(s string) (Output, error) {
	for i, name := range outputNames {
		if strings.EqualFold(s, name) {
			return Output(i), nil
		}
	}

	return 0, fmt.Errorf("pathgen.ParseOutput: %q: %w", s, ErrUnknownOutput)
}

// DefaultOutput is the mode used when WithOutput is not given.
const DefaultOutput = OutputPath

// panicOutputInvalid is the message WithOutput panics with.
const panicOutputInvalid = "pathgen: WithOutput: unknown output mode"

// Option configures a Job.
type Option func(*Options)

// Options stores the effective Job configuration.
type Options struct {
	output    Output
	sobolOpts []sobol.Option
}

// WithOutput selects path values, increments or normalized draws.
// Panics on a value outside the declared modes.
func WithOutput(o Output) Option {
	if o < OutputPath || o > OutputNormalized {
		panic(panicOutputInvalid)
	}

	return func(opts *Options) { opts.output = o }
}

// WithSobolOptions forwards options to every generator the job creates,
// e.g. sobol.WithMaxPoints to bound the sequence length.
func WithSobolOptions(opts ...sobol.Option) Option {
	return func(o *Options) { o.sobolOpts = append(o.sobolOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{output: DefaultOutput}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
