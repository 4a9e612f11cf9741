// SPDX-License-Identifier: MIT

package driver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/qmcpaths/matrix"
)

// Dump writes one "path j step i value" line per generated cell of m, path by
// path, under a "# strategy <name>" header. Row 0 is not generated and is
// skipped.
func Dump(w io.Writer, strategy string, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# strategy %s\n", strategy)
	for j := 0; j < m.Cols(); j++ {
		for i := 1; i < m.Rows(); i++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "path %d step %d %s\n", j, i, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}

	return bw.Flush()
}

// WriteTable prints one aligned row per report: strategy, elapsed
// microseconds, baseline match and the largest deviation.
func (s *Summary) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "steps=%d\tsamples=%d\tseed=%d\tworkers=%d\toutput=%v\n",
		s.Steps, s.Samples, s.Seed, s.Workers, s.Output)
	fmt.Fprintln(tw, "STRATEGY\tELAPSED(µs)\tBASELINE\tMAX|DIFF|")
	for _, r := range s.Reports {
		match := "match"
		if !r.MatchesBaseline {
			match = "MISMATCH"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%g\n", r.Strategy, r.Elapsed.Microseconds(), match, r.MaxAbsDiff)
	}

	return tw.Flush()
}
