// SPDX-License-Identifier: MIT

package pathgen

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/qmcpaths/bridge"
	"github.com/katalvlaran/qmcpaths/matrix"
	"github.com/katalvlaran/qmcpaths/normal"
	"github.com/katalvlaran/qmcpaths/sobol"
)

const (
	opNewJob = "NewJob"
	opRun    = "Run"
)

// Job is a validated, immutable description of one generation run: the
// bridge for the time grid, the number of paths, the seed and the output mode.
// A Job is safe to share between goroutines.
type Job struct {
	bridge  *bridge.Bridge
	samples int
	seed    int64
	opts    Options
}

// NewJob validates every input once so that strategies never fail on
// configuration mid-run.
//
// Implementation:
//   - Stage 1: build the bridge (validates the grid).
//   - Stage 2: check samples > 0.
//   - Stage 3: build a probe generator so an unsupported dimension is
//     reported here rather than by the first worker.
//
// Errors (all matching ErrConfiguration):
//   - bridge.ErrInvalidGrid for an empty, non-increasing or non-positive grid.
//   - ErrInvalidSamples for samples ≤ 0.
//   - sobol.ErrInvalidDimension when len(times) > sobol.MaxDimension.
func NewJob(times []float64, samples int, seed int64, opts ...Option) (*Job, error) {
	b, err := bridge.FromTimes(times)
	if err != nil {
		return nil, configWrap(opNewJob, err)
	}
	if samples <= 0 {
		return nil, configErrorf(opNewJob, ErrInvalidSamples, "samples=%d", samples)
	}
	o := gatherOptions(opts...)

	if _, err = sobol.New(b.Size(), seed, o.sobolOpts...); err != nil {
		return nil, configWrap(opNewJob, err)
	}

	j := &Job{bridge: b, samples: samples, seed: seed, opts: o}
	log.Debugf("New job: steps=%d samples=%d seed=%d output=%v", b.Size(), samples, seed, o.output)
	log.Tracef("Job grid: %v", newLogClosure(func() string {
		return spew.Sdump(b.Grid().Times())
	}))

	return j, nil
}

// Steps returns N, the number of grid points and matrix rows.
func (j *Job) Steps() int { return j.bridge.Size() }

// Samples returns the number of paths and matrix columns.
func (j *Job) Samples() int { return j.samples }

// Seed returns the Sobol seed.
func (j *Job) Seed() int64 { return j.seed }

// Output returns the output mode.
func (j *Job) Output() Output { return j.opts.output }

// Bridge returns the shared, read-only bridge.
func (j *Job) Bridge() *bridge.Bridge { return j.bridge }

// NewResults allocates a zeroed Steps()×Samples() matrix for one run.
func (j *Job) NewResults() (*matrix.Dense, error) {
	return matrix.NewDense(j.Steps(), j.samples)
}

// Sequence returns a fresh normal sequence whose next vector is the one that
// belongs to path start. Each call builds an independent generator, so the
// result may be handed to its own goroutine.
//
// Errors:
//   - sobol.ErrSequenceExhausted when start lies beyond the sequence bound.
func (j *Job) Sequence(start int) (*normal.Sequence, error) {
	if start < 0 {
		return nil, fmt.Errorf("pathgen.Sequence: start=%d: %w", start, matrix.ErrOutOfRange)
	}
	g, err := sobol.New(j.Steps(), j.seed, j.opts.sobolOpts...)
	if err != nil {
		return nil, err
	}
	if err = g.Skip(uint64(start)); err != nil {
		return nil, err
	}

	return normal.NewSequence(g)
}

// checkRun validates the pair (job, out) at the top of every Strategy.Run.
func checkRun(job *Job, out *matrix.Dense) error {
	if job == nil {
		return configErrorf(opRun, ErrNilJob, "job is nil")
	}
	if err := matrix.ValidateShape(out, job.Steps(), job.samples); err != nil {
		return configWrap(opRun, err)
	}

	return nil
}
