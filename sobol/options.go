// SPDX-License-Identifier: MIT

// Package sobol: functional configuration for Generator.
//
// Contract:
//   - Options are functional (type Option func(*Options)).
//   - Option constructors validate and PANIC on meaningless inputs; New itself
//     never panics on user input and reports errors instead.
//   - Defaults below are the single source of truth for zero-value behavior.

package sobol

// MaxPointsLimit is the largest number of points a 32-bit Sobol generator can
// emit before its Gray-code index overflows the direction-number table.
const MaxPointsLimit uint64 = 1<<32 - 1

const (
	// DefaultMaxPoints bounds the number of draws a Generator serves.
	DefaultMaxPoints = MaxPointsLimit

	// DefaultScramble enables the seeded digital shift.
	DefaultScramble = true
)

const panicMaxPointsInvalid = "sobol: WithMaxPoints: n must be in [1, MaxPointsLimit]"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective Generator configuration.
type Options struct {
	maxPoints uint64 // DefaultMaxPoints
	scramble  bool   // DefaultScramble
}

// defaultOptions returns a fresh Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		maxPoints: DefaultMaxPoints,
		scramble:  DefaultScramble,
	}
}

// gatherOptions applies opts left to right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithMaxPoints lowers the length bound of the generator. Draws past n points
// fail with ErrSequenceExhausted. Panics if n is zero or above MaxPointsLimit.
func WithMaxPoints(n uint64) Option {
	if n == 0 || n > MaxPointsLimit {
		panic(panicMaxPointsInvalid)
	}

	return func(o *Options) {
		o.maxPoints = n
	}
}

// WithoutScrambling disables the seeded digital shift; the seed is then ignored
// and the generator emits the plain Sobol points offset to cell centres.
func WithoutScrambling() Option {
	return func(o *Options) {
		o.scramble = false
	}
}
