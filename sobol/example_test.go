package sobol_test

import (
	"fmt"

	"github.com/katalvlaran/qmcpaths/sobol"
)

// ExampleGenerator_Draw prints the first points of the plain two-dimensional
// Sobol sequence in Gray-code order.
func ExampleGenerator_Draw() {
	g, err := sobol.New(2, 0, sobol.WithoutScrambling())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pt := make([]float64, 2)
	for i := 0; i < 3; i++ {
		if err = g.Draw(pt); err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%.4f %.4f\n", pt[0], pt[1])
	}
	// Output:
	// 0.5000 0.5000
	// 0.7500 0.2500
	// 0.2500 0.7500
}

// ExampleGenerator_Skip shows a worker jumping straight to its first column.
func ExampleGenerator_Skip() {
	g, _ := sobol.New(4, 19910405)
	worker := g.Clone()
	if err := worker.Skip(250); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(worker.Position(), g.Position())
	// Output:
	// 250 0
}
