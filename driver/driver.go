// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/qmcpaths/matrix"
	"github.com/katalvlaran/qmcpaths/pathgen"
	"github.com/katalvlaran/qmcpaths/sobol"
)

// Report is the outcome of one strategy run.
type Report struct {
	Strategy string
	Elapsed  time.Duration
	Results  *matrix.Dense
	// MatchesBaseline is true when Results equals the sequential baseline
	// cell for cell. The baseline report always matches itself.
	MatchesBaseline bool
	// MaxAbsDiff is the largest cell difference from the baseline.
	MaxAbsDiff float64
}

// Summary collects the reports of one Run, baseline first.
type Summary struct {
	Steps   int
	Samples int
	Seed    int64
	Workers int
	Output  pathgen.Output
	Reports []Report
}

// Baseline returns the sequential report, or nil if it did not complete.
func (s *Summary) Baseline() *Report {
	if len(s.Reports) == 0 {
		return nil
	}

	return &s.Reports[0]
}

// AllMatch reports whether every strategy reproduced the baseline exactly.
func (s *Summary) AllMatch() bool {
	for _, r := range s.Reports {
		if !r.MatchesBaseline {
			return false
		}
	}

	return len(s.Reports) > 0
}

// jobOptions maps cfg onto pathgen and sobol options.
func (cfg Config) jobOptions() []pathgen.Option {
	var sobolOpts []sobol.Option
	if cfg.MaxPoints > 0 {
		sobolOpts = append(sobolOpts, sobol.WithMaxPoints(cfg.MaxPoints))
	}
	if cfg.NoScramble {
		sobolOpts = append(sobolOpts, sobol.WithoutScrambling())
	}

	return []pathgen.Option{pathgen.WithOutput(cfg.Output), pathgen.WithSobolOptions(sobolOpts...)}
}

// Run validates cfg, then runs the sequential baseline followed by every
// other requested strategy on a fresh results matrix each.
//
// Implementation:
//   - Stage 1: validate cfg and build the job; nothing is generated on failure.
//   - Stage 2: per strategy, allocate, time Run, record metrics.
//   - Stage 3: compare against the baseline and optionally dump the values.
//
// Errors:
//   - pathgen.ErrConfiguration (with the specific cause) for invalid input;
//     the returned Summary is nil.
//   - the first strategy error, e.g. sobol.ErrSequenceExhausted. The Summary
//     holds the reports that completed before it.
func Run(cfg Config, opts ...Option) (*Summary, error) {
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("driver: workers=%d: %w: %w", cfg.Workers, pathgen.ErrConfiguration, pathgen.ErrInvalidWorkers)
	}
	if cfg.MaxPoints > sobol.MaxPointsLimit {
		return nil, fmt.Errorf("driver: maxpoints=%d above %d: %w", cfg.MaxPoints, sobol.MaxPointsLimit, pathgen.ErrConfiguration)
	}
	if _, err := pathgen.ParseOutput(cfg.Output.String()); err != nil {
		return nil, fmt.Errorf("driver: %w: %w", pathgen.ErrConfiguration, err)
	}
	strategies, err := cfg.strategies()
	if err != nil {
		return nil, err
	}
	job, err := pathgen.NewJob(cfg.Times, cfg.Samples, cfg.Seed, cfg.jobOptions()...)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	metrics, err := initMetrics(o.registerer)
	if err != nil {
		return nil, err
	}
	log.Debugf("Config: %v", newLogClosure(func() string { return spew.Sdump(cfg) }))

	sum := &Summary{
		Steps:   job.Steps(),
		Samples: job.Samples(),
		Seed:    job.Seed(),
		Workers: cfg.Workers,
		Output:  job.Output(),
	}
	for _, s := range strategies {
		rep, err := runOne(job, s, metrics)
		if err != nil {
			return sum, err
		}
		if base := sum.Baseline(); base != nil {
			if err = compareToBaseline(&rep, base); err != nil {
				return sum, err
			}
		} else {
			rep.MatchesBaseline = true
		}
		if !rep.MatchesBaseline {
			metrics.mismatches.WithLabelValues(rep.Strategy).Inc()
			log.Warnf("Strategy %s differs from baseline: max |diff| = %g", rep.Strategy, rep.MaxAbsDiff)
		}
		log.Infof("Strategy %s: %d paths in %d µs, matches baseline: %v",
			rep.Strategy, sum.Samples, rep.Elapsed.Microseconds(), rep.MatchesBaseline)

		if o.dump != nil {
			if err = Dump(o.dump, rep.Strategy, rep.Results); err != nil {
				return sum, fmt.Errorf("driver: dump %s: %w", rep.Strategy, err)
			}
		}
		sum.Reports = append(sum.Reports, rep)
	}

	return sum, nil
}

// runOne times a single strategy on a fresh matrix.
func runOne(job *pathgen.Job, s pathgen.Strategy, m *runMetrics) (Report, error) {
	out, err := job.NewResults()
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	err = s.Run(job, out)
	elapsed := time.Since(start)
	if err != nil {
		m.failures.WithLabelValues(s.Name()).Inc()
		log.Errorf("Strategy %s failed after %v: %v", s.Name(), elapsed, err)

		return Report{}, fmt.Errorf("driver: strategy %s: %w", s.Name(), err)
	}
	m.duration.WithLabelValues(s.Name()).Observe(elapsed.Seconds())
	m.paths.WithLabelValues(s.Name()).Add(float64(job.Samples()))

	return Report{Strategy: s.Name(), Elapsed: elapsed, Results: out}, nil
}

func compareToBaseline(rep, base *Report) error {
	eq, err := matrix.Equal(base.Results, rep.Results)
	if err != nil {
		return err
	}
	diff, err := matrix.MaxAbsDiff(base.Results, rep.Results)
	if err != nil {
		return err
	}
	rep.MatchesBaseline, rep.MaxAbsDiff = eq, diff

	return nil
}
