// SPDX-License-Identifier: MIT

package pathgen

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/qmcpaths/matrix"
)

// Strategy names as accepted by ByName.
const (
	NameSequential  = "sequential"
	NameGuarded     = "guarded"
	NameOffloaded   = "offloaded"
	NamePartitioned = "partitioned"
)

// Strategy fills a results matrix for a Job. Run returns only after every
// goroutine it started has finished; out must not be read before that.
type Strategy interface {
	Name() string
	Run(job *Job, out *matrix.Dense) error
}

var (
	_ Strategy = Sequential{}
	_ Strategy = Guarded{}
	_ Strategy = Offloaded{}
	_ Strategy = Partitioned{}
)

// Sequential generates every path on the calling goroutine with direct writes.
// It is the baseline every other strategy is compared against.
type Sequential struct{}

// Name implements Strategy.
func (Sequential) Name() string { return NameSequential }

// Run implements Strategy.
func (Sequential) Run(job *Job, out *matrix.Dense) error {
	if err := checkRun(job, out); err != nil {
		return err
	}
	seq, err := job.Sequence(0)
	if err != nil {
		return err
	}

	return Generate(seq, job.bridge, out, 0, job.samples, job.opts.output)
}

// lockedWriter serializes every Set behind one mutex.
type lockedWriter struct {
	mu *sync.Mutex
	w  Writer
}

func (l lockedWriter) Rows() int { return l.w.Rows() }
func (l lockedWriter) Cols() int { return l.w.Cols() }

func (l lockedWriter) Set(i, j int, v float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.w.Set(i, j, v)
}

// Guarded is Sequential with a mutex around every cell write. The result is
// identical; the difference is the locking cost.
type Guarded struct{}

// Name implements Strategy.
func (Guarded) Name() string { return NameGuarded }

// Run implements Strategy.
func (Guarded) Run(job *Job, out *matrix.Dense) error {
	if err := checkRun(job, out); err != nil {
		return err
	}
	seq, err := job.Sequence(0)
	if err != nil {
		return err
	}

	return Generate(seq, job.bridge, lockedWriter{mu: new(sync.Mutex), w: out}, 0, job.samples, job.opts.output)
}

// Offloaded runs the guarded loop on exactly one spawned goroutine and waits
// for it.
type Offloaded struct{}

// Name implements Strategy.
func (Offloaded) Name() string { return NameOffloaded }

// Run implements Strategy.
func (Offloaded) Run(job *Job, out *matrix.Dense) error {
	if err := checkRun(job, out); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- Guarded{}.Run(job, out)
	}()

	return <-done
}

// Partitioned splits the columns into Workers contiguous ranges and runs one
// goroutine per range. Each worker skips its own generator to the first path
// of its range and writes through a private column view, so no two workers
// share any mutable state.
type Partitioned struct {
	Workers int
}

// Name implements Strategy.
func (Partitioned) Name() string { return NamePartitioned }

// Run implements Strategy.
//
// Implementation:
//   - Stage 1: validate the job, the matrix shape and the worker count.
//   - Stage 2: partition the columns and spawn one goroutine per range.
//   - Stage 3: wait for every worker, then join their errors in range order.
func (p Partitioned) Run(job *Job, out *matrix.Dense) error {
	if err := checkRun(job, out); err != nil {
		return err
	}

	return p.fanOut(job, func(r Range) (Writer, error) {
		view, err := out.Columns(r.Start, r.Len())
		if err != nil {
			return nil, err
		}

		return view, nil
	})
}

// fanOut runs one goroutine per range of the partition. viewOf hands each
// worker the sink for its own columns, indexed from 0.
func (p Partitioned) fanOut(job *Job, viewOf func(r Range) (Writer, error)) error {
	ranges, err := Partition(job.samples, p.Workers)
	if err != nil {
		return err
	}
	log.Debugf("Partitioned run: workers=%d ranges=%d", p.Workers, len(ranges))
	log.Tracef("Ranges: %v", newLogClosure(func() string { return spew.Sdump(ranges) }))

	errs := make([]error, len(ranges))
	var wg sync.WaitGroup
	for w, r := range ranges {
		wg.Add(1)
		go func(w int, r Range) {
			defer wg.Done()
			errs[w] = runRange(job, viewOf, r)
			if errs[w] != nil {
				log.Errorf("Worker %d on columns %v: %v", w, r, errs[w])
			}
		}(w, r)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// runRange generates the paths of r into the view viewOf returns for r.
func runRange(job *Job, viewOf func(r Range) (Writer, error), r Range) error {
	view, err := viewOf(r)
	if err != nil {
		return err
	}
	seq, err := job.Sequence(r.Start)
	if err != nil {
		return fmt.Errorf("pathgen: columns %v: %w", r, err)
	}

	return Generate(seq, job.bridge, view, 0, r.Len(), job.opts.output)
}

// All returns every shipped strategy, baseline first.
func All(workers int) []Strategy {
	return []Strategy{Sequential{}, Guarded{}, Offloaded{}, Partitioned{Workers: workers}}
}

// ByName resolves a strategy name; workers only matters for partitioned.
func ByName(name string, workers int) (Strategy, error) {
	switch strings.ToLower(name) {
	case NameSequential:
		return Sequential{}, nil
	case NameGuarded:
		return Guarded{}, nil
	case NameOffloaded:
		return Offloaded{}, nil
	case NamePartitioned:
		return Partitioned{Workers: workers}, nil
	default:
		return nil, fmt.Errorf("pathgen.ByName: %q: %w", name, ErrUnknownStrategy)
	}
}
