// SPDX-License-Identifier: MIT

package pathgen

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration classifies every input rejected before generation starts.
	// The returned error also matches the specific cause.
	ErrConfiguration = errors.New("pathgen: invalid configuration")

	// ErrInvalidSamples indicates a non-positive sample count.
	ErrInvalidSamples = errors.New("pathgen: samples must be > 0")

	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("pathgen: workers must be > 0")

	// ErrNilJob indicates a strategy was run without a job.
	ErrNilJob = errors.New("pathgen: nil job")

	// ErrUnknownStrategy indicates a strategy name that ByName does not know.
	ErrUnknownStrategy = errors.New("pathgen: unknown strategy")

	// ErrUnknownOutput indicates an output mode name that ParseOutput does not know.
	ErrUnknownOutput = errors.New("pathgen: unknown output mode")
)

// configErrorf marks cause as a configuration error for op.
// Both ErrConfiguration and cause match with errors.Is.
func configErrorf(op string, cause error, format string, args ...interface{}) error {
	return fmt.Errorf("pathgen.%s: %w: %w: %s", op, ErrConfiguration, cause, fmt.Sprintf(format, args...))
}

// configWrap marks an error produced by a lower layer as a configuration error.
func configWrap(op string, err error) error {
	return fmt.Errorf("pathgen.%s: %w: %w", op, ErrConfiguration, err)
}
