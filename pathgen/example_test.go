package pathgen_test

import (
	"fmt"

	"github.com/katalvlaran/qmcpaths/matrix"
	"github.com/katalvlaran/qmcpaths/pathgen"
)

// ExamplePartitioned_Run fills the same matrix sequentially and with four
// workers and compares the two.
func ExamplePartitioned_Run() {
	times := []float64{1.0 / 3600, 2.0 / 3600, 3.0 / 3600, 4.0 / 3600}
	job, err := pathgen.NewJob(times, 10, 19910405)
	if err != nil {
		fmt.Println(err)
		return
	}

	base, _ := job.NewResults()
	par, _ := job.NewResults()
	_ = pathgen.Sequential{}.Run(job, base)
	_ = pathgen.Partitioned{Workers: 4}.Run(job, par)

	same, _ := matrix.Equal(base, par)
	fmt.Println(par.Rows(), par.Cols(), same)
	// Output: 4 10 true
}

// ExamplePartition shows the balanced split of 10 columns over 4 workers.
func ExamplePartition() {
	ranges, _ := pathgen.Partition(10, 4)
	fmt.Println(ranges)
	// Output: [[0,3) [3,6) [6,8) [8,10)]
}
