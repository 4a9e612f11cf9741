// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/qmcpaths/pathgen"
)

// Grid names accepted by GridByName.
const (
	GridShort = "short"
	GridLong  = "long"
)

// Defaults for a Config built by DefaultConfig.
const (
	DefaultSamples = 10
	DefaultSeed    = 19910405
	DefaultGrid    = GridShort
)

// ShortGrid returns the four-point grid {1,2,3,4}/3600.
func ShortGrid() []float64 {
	return []float64{1.0 / 3600, 2.0 / 3600, 3.0 / 3600, 4.0 / 3600}
}

// LongGrid returns the eleven-point grid {0.1,...,1.0,2.0}/3600.
func LongGrid() []float64 {
	ts := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 2.0}
	for i := range ts {
		ts[i] /= 3600
	}

	return ts
}

// GridByName returns a fresh copy of a built-in grid.
func GridByName(name string) ([]float64, error) {
	switch strings.ToLower(name) {
	case GridShort:
		return ShortGrid(), nil
	case GridLong:
		return LongGrid(), nil
	default:
		return nil, fmt.Errorf("driver: unknown grid %q (want %s or %s): %w",
			name, GridShort, GridLong, pathgen.ErrConfiguration)
	}
}

// Config describes one driver invocation.
type Config struct {
	// Times is the strictly increasing time grid, first point > 0.
	Times []float64
	// Samples is the number of paths (matrix columns).
	Samples int
	// Seed selects the Sobol digital shift.
	Seed int64
	// Workers is the goroutine count of the partitioned strategy.
	Workers int
	// Strategies lists strategy names to run. Empty means all of them.
	// The sequential baseline always runs first.
	Strategies []string
	// Output selects path values, increments or normalized draws.
	Output pathgen.Output
	// MaxPoints bounds the Sobol sequence. Zero keeps the generator default.
	MaxPoints uint64
	// NoScramble disables the seeded digital shift.
	NoScramble bool
}

// DefaultConfig returns the reference setup: short grid, 10 samples,
// seed 19910405, one worker per CPU, every strategy.
func DefaultConfig() Config {
	return Config{
		Times:   ShortGrid(),
		Samples: DefaultSamples,
		Seed:    DefaultSeed,
		Workers: runtime.NumCPU(),
		Output:  pathgen.DefaultOutput,
	}
}

// strategies resolves cfg.Strategies, putting the sequential baseline first
// and dropping duplicates.
func (cfg Config) strategies() ([]pathgen.Strategy, error) {
	names := cfg.Strategies
	if len(names) == 0 {
		for _, s := range pathgen.All(cfg.Workers) {
			names = append(names, s.Name())
		}
	}

	out := []pathgen.Strategy{pathgen.Sequential{}}
	seen := map[string]bool{pathgen.NameSequential: true}
	for _, name := range names {
		s, err := pathgen.ByName(name, cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("driver: %w: %w", pathgen.ErrConfiguration, err)
		}
		if seen[s.Name()] {
			continue
		}
		seen[s.Name()] = true
		out = append(out, s)
	}

	return out, nil
}
